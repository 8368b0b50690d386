package royalty

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/agreement"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/lock"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/messaging"
	"github.com/feral-file/ff-royalty-ledger/internal/snapshot"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// State is a step of the split update protocol
type State string

const (
	StateValidating   State = "validating"
	StateDiffing      State = "diffing"
	StateSnapshotting State = "snapshotting"
	StateClosing      State = "closing"
	StateOpening      State = "opening"
	StateProjecting   State = "projecting"
	StateDone         State = "done"
	StateAborted      State = "aborted"
)

// UpdateSplitInput represents a request to change the fee split of an asset
type UpdateSplitInput struct {
	AssetID string
	Split   domain.Split
	Actor   string
	Reason  string
}

// EarnerResult is one earner of the new split with its display percentage
type EarnerResult struct {
	Identity   string
	Bps        int
	Percentage float64
}

// UpdateSplitResult is the outcome of a successful split update
type UpdateSplitResult struct {
	VersionID               uint64
	PlatformBps             int
	PlatformPercentage      float64
	Earners                 []EarnerResult
	BoundarySnapshotCreated bool
	BoundarySnapshotID      uint64
	EffectiveFrom           time.Time
}

// Service runs the split update protocol
//
//go:generate mockgen -source=royalty.go -destination=../mocks/royalty.go -package=mocks -mock_names=Service=MockRoyaltyService
type Service interface {
	// UpdateSplit validates, diffs, snapshots, rotates the agreement and projects the view.
	// Returns ValidationError, NoChangeError or ConflictError without writing anything.
	UpdateSplit(ctx context.Context, input UpdateSplitInput) (*UpdateSplitResult, error)
}

type service struct {
	store       store.Store
	versioner   agreement.Versioner
	snapshotter snapshot.Snapshotter
	sideWriter  SideWriter
	locker      lock.Locker
	publisher   messaging.Publisher
	scheduler   RepairScheduler
	clock       adapter.Clock
}

// NewService creates the split update service. scheduler may be nil, in which case
// failed side writes are only logged.
func NewService(
	st store.Store,
	versioner agreement.Versioner,
	snapshotter snapshot.Snapshotter,
	sideWriter SideWriter,
	locker lock.Locker,
	publisher messaging.Publisher,
	scheduler RepairScheduler,
	clock adapter.Clock,
) Service {
	return &service{
		store:       st,
		versioner:   versioner,
		snapshotter: snapshotter,
		sideWriter:  sideWriter,
		locker:      locker,
		publisher:   publisher,
		scheduler:   scheduler,
		clock:       clock,
	}
}

func (s *service) UpdateSplit(ctx context.Context, input UpdateSplitInput) (*UpdateSplitResult, error) {
	ctx = logger.WithFields(ctx, zap.String("assetID", input.AssetID))

	transition(ctx, StateValidating)
	if err := validateInput(input); err != nil {
		return nil, abort(ctx, err)
	}

	asset, err := s.store.GetAsset(ctx, input.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if asset == nil {
		return nil, abort(ctx, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, input.AssetID))
	}

	var result *UpdateSplitResult
	err = s.locker.WithAssetLock(ctx, input.AssetID, func(ctx context.Context) error {
		var err error
		result, err = s.updateLocked(ctx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// updateLocked runs the protocol from Diffing on; the caller holds the asset lock
func (s *service) updateLocked(ctx context.Context, input UpdateSplitInput) (*UpdateSplitResult, error) {
	split := input.Split.Normalized()

	transition(ctx, StateDiffing)
	current, err := s.versioner.GetCurrentAgreement(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	hash, err := split.Fingerprint()
	if err != nil {
		return nil, err
	}
	if current != nil && current.SplitHash == hash {
		return nil, abort(ctx, &domain.NoChangeError{AssetID: input.AssetID, VersionID: current.VersionID})
	}

	if err := ctx.Err(); err != nil {
		return nil, abort(ctx, err)
	}

	transition(ctx, StateSnapshotting)
	boundary, created, err := s.snapshotter.EnsureBoundarySnapshot(ctx, input.AssetID)
	if err != nil {
		return nil, err
	}

	// Last point where cancellation is honoured; a boundary snapshot created above is
	// reused by the next attempt.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	writeCtx := context.WithoutCancel(ctx)
	now := s.clock.Now()

	var previousVersionID *uint64
	var previous *domain.Split
	if current != nil {
		transition(writeCtx, StateClosing, zap.Uint64("versionID", current.VersionID))
		previousVersionID = &current.VersionID
		previous = &current.Split
	}

	transition(writeCtx, StateOpening)
	opened, err := s.versioner.Rotate(writeCtx, agreement.RotateInput{
		AssetID:           input.AssetID,
		PreviousVersionID: previousVersionID,
		Split:             split,
		Actor:             input.Actor,
		At:                now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrConflict) {
			logger.ErrorCtx(writeCtx, fmt.Errorf("agreement rotation failed: %w", err))
		}
		return nil, err
	}

	transition(writeCtx, StateProjecting, zap.Uint64("versionID", opened.VersionID))
	s.writeSideEffects(writeCtx, domain.SideWriteRepair{
		AssetID:      input.AssetID,
		VersionID:    opened.VersionID,
		Actor:        input.Actor,
		Reason:       input.Reason,
		LifetimeFees: boundary.CumulativeFees,
		ChangedAt:    now,
		Previous:     previous,
		Next:         opened.Split,
	})

	transition(writeCtx, StateDone, zap.Uint64("versionID", opened.VersionID))
	s.publish(writeCtx, input, opened.VersionID, now)

	return buildResult(opened, boundary.ID, created), nil
}

// writeSideEffects rebuilds the view and records history.
// Failures never unwind the rotation; they are handed to the repair scheduler.
func (s *service) writeSideEffects(ctx context.Context, repair domain.SideWriteRepair) {
	if err := s.sideWriter.RebuildView(ctx, repair.AssetID); err != nil {
		logger.WarnCtx(ctx, "Ownership view rebuild failed", zap.Error(err))
		repair.RebuildView = true
	}
	if err := s.sideWriter.RecordHistory(ctx, repair); err != nil {
		logger.WarnCtx(ctx, "Change history write failed", zap.Error(err))
		repair.RecordHistory = true
	}

	if !repair.RebuildView && !repair.RecordHistory {
		return
	}

	if s.scheduler == nil {
		logger.ErrorCtx(ctx, errors.New("side writes failed and no repair scheduler is configured"),
			zap.Uint64("versionID", repair.VersionID),
			zap.Bool("rebuildView", repair.RebuildView),
			zap.Bool("recordHistory", repair.RecordHistory),
		)
		return
	}

	if err := s.scheduler.ScheduleRepair(ctx, repair); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to schedule side write repair: %w", err),
			zap.Uint64("versionID", repair.VersionID),
		)
	}
}

func (s *service) publish(ctx context.Context, input UpdateSplitInput, versionID uint64, at time.Time) {
	event := messaging.NewEvent(domain.LedgerEventSplitUpdated, input.AssetID, at)
	event.VersionID = &versionID
	event.Actor = input.Actor
	event.Reason = input.Reason

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish split updated event", zap.Error(err))
	}
}

func buildResult(opened *domain.Agreement, snapshotID uint64, created bool) *UpdateSplitResult {
	earners := make([]EarnerResult, len(opened.Split.Shares))
	for i, share := range opened.Split.Shares {
		earners[i] = EarnerResult{
			Identity:   share.Identity,
			Bps:        share.Bps,
			Percentage: domain.Percentage(share.Bps),
		}
	}

	return &UpdateSplitResult{
		VersionID:               opened.VersionID,
		PlatformBps:             opened.Split.PlatformBps,
		PlatformPercentage:      domain.Percentage(opened.Split.PlatformBps),
		Earners:                 earners,
		BoundarySnapshotCreated: created,
		BoundarySnapshotID:      snapshotID,
		EffectiveFrom:           opened.EffectiveFrom,
	}
}

func validateInput(input UpdateSplitInput) error {
	if strings.TrimSpace(input.AssetID) == "" {
		return domain.NewValidationError("asset_id", "asset id is required")
	}
	if strings.TrimSpace(input.Actor) == "" {
		return domain.NewValidationError("actor", "actor is required")
	}
	return input.Split.Validate()
}

func transition(ctx context.Context, state State, fields ...zap.Field) {
	logger.InfoCtx(ctx, "Split update transition", append([]zap.Field{zap.String("state", string(state))}, fields...)...)
}

func abort(ctx context.Context, err error) error {
	logger.InfoCtx(ctx, "Split update transition", zap.String("state", string(StateAborted)), zap.Error(err))
	return err
}
