package accrual

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/lock"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/messaging"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/feesource"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

// Skip reasons reported by Ingest
const (
	SkipReasonNoAgreement = "no_agreement"
	SkipReasonNoFeeData   = "no_fee_data"
)

// IngestResult is the outcome of one fee snapshot job for an asset
type IngestResult struct {
	AssetID string
	// Skipped is set when no snapshot was written
	Skipped    bool
	SkipReason string
	// Previous is the cumulative total of the snapshot the delta was computed against
	Previous       int64
	CumulativeFees int64
	Delta          int64
	JobRunID       string
	SnapshotID     uint64
	Entries        int
}

// Ingester records fee accruals from the external fee source
//
//go:generate mockgen -source=accrual.go -destination=../mocks/accrual.go -package=mocks -mock_names=Ingester=MockIngester
type Ingester interface {
	// Ingest snapshots the asset's lifetime fees and accrues the delta since the last snapshot
	Ingest(ctx context.Context, assetID string) (*IngestResult, error)
}

type ingester struct {
	store     store.Store
	feeSource feesource.Client
	locker    lock.Locker
	projector projector.Projector
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewIngester creates a new accrual ingester
func NewIngester(
	st store.Store,
	feeSource feesource.Client,
	locker lock.Locker,
	proj projector.Projector,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Ingester {
	return &ingester{
		store:     st,
		feeSource: feeSource,
		locker:    locker,
		projector: proj,
		publisher: publisher,
		clock:     clock,
	}
}

// Plan splits the growth of the lifetime total between the platform and the earners.
// The allocations sum exactly to total - previous; a shrinking total is rejected.
func Plan(previous, total int64, split domain.Split) ([]domain.Allocation, error) {
	if total < previous {
		return nil, &domain.ValidationError{
			Field:    "total_fees",
			Message:  fmt.Sprintf("lifetime fees decreased from %d to %d", previous, total),
			Expected: previous,
			Actual:   total,
		}
	}
	return split.Allocate(total-previous, domain.PLATFORM_BENEFICIARY_ID), nil
}

func (i *ingester) Ingest(ctx context.Context, assetID string) (*IngestResult, error) {
	ctx = logger.WithFields(ctx, zap.String("assetID", assetID))

	var result *IngestResult
	err := i.locker.WithAssetLock(ctx, assetID, func(ctx context.Context) error {
		var err error
		result, err = i.ingestLocked(ctx, assetID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if result.Delta > 0 {
		if _, err := i.projector.Rebuild(ctx, assetID); err != nil {
			logger.WarnCtx(ctx, "Failed to rebuild ownership view after accrual", zap.Error(err))
		}

		event := messaging.NewEvent(domain.LedgerEventFeesAccrued, assetID, i.clock.Now())
		event.Amount = result.Delta
		if err := i.publisher.PublishEvent(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish fees accrued event", zap.Error(err))
		}
	}

	return result, nil
}

func (i *ingester) ingestLocked(ctx context.Context, assetID string) (*IngestResult, error) {
	startedAt := i.clock.Now()

	version, err := i.store.GetCurrentAgreement(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current agreement: %w", err)
	}
	if version == nil {
		// Without an agreement the delta cannot be attributed; leave it for the first version
		logger.InfoCtx(ctx, "Skipping fee ingestion, asset has no agreement")
		return &IngestResult{AssetID: assetID, Skipped: true, SkipReason: SkipReasonNoAgreement}, nil
	}
	current := types.AgreementVersionToAgreement(version)

	total, err := i.feeSource.GetTotalFees(ctx, assetID)
	if err != nil {
		if errors.Is(err, domain.ErrFeeDataUnavailable) {
			logger.InfoCtx(ctx, "Skipping fee ingestion, no fee data yet")
			return &IngestResult{AssetID: assetID, Skipped: true, SkipReason: SkipReasonNoFeeData}, nil
		}
		i.recordFailure(ctx, assetID, startedAt)
		return nil, fmt.Errorf("failed to get total fees: %w", err)
	}

	latest, err := i.store.GetLatestFeeSnapshot(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest fee snapshot: %w", err)
	}
	var previous int64
	if latest != nil {
		previous = latest.CumulativeFees
	}

	allocations, err := Plan(previous, total, current.Split)
	if err != nil {
		i.recordFailure(ctx, assetID, startedAt)
		logger.ErrorCtx(ctx, err, zap.Int64("previous", previous), zap.Int64("total", total))
		return nil, err
	}

	recorded, err := i.store.RecordFeeAccrual(ctx, store.RecordFeeAccrualInput{
		AssetID:        assetID,
		CumulativeFees: total,
		StartedAt:      startedAt,
		TakenAt:        i.clock.Now(),
		VersionID:      &current.VersionID,
		Allocations:    allocations,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record fee accrual: %w", err)
	}

	logger.InfoCtx(ctx, "Ingested fee snapshot",
		zap.Int64("previous", previous),
		zap.Int64("total", total),
		zap.Int("entries", len(recorded.Entries)),
		zap.Uint64("versionID", current.VersionID),
	)

	return &IngestResult{
		AssetID:        assetID,
		Previous:       previous,
		CumulativeFees: total,
		Delta:          total - previous,
		JobRunID:       recorded.JobRun.ID,
		SnapshotID:     recorded.Snapshot.ID,
		Entries:        len(recorded.Entries),
	}, nil
}

// recordFailure writes a FAILED job run for operators; its own failure is only logged
func (i *ingester) recordFailure(ctx context.Context, assetID string, startedAt time.Time) {
	_, err := i.store.CreateJobRun(context.WithoutCancel(ctx), store.CreateJobRunInput{
		AssetID:    assetID,
		Kind:       domain.JobKindFeeSnapshot,
		Status:     domain.JobStatusFailed,
		StartedAt:  startedAt,
		FinishedAt: i.clock.Now(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to record failed job run", zap.Error(err))
	}
}
