package royalty

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// RepairScheduler hands failed side writes to a durable retry mechanism
//
//go:generate mockgen -source=sidewrites.go -destination=../mocks/sidewrites.go -package=mocks -mock_names=RepairScheduler=MockRepairScheduler,SideWriter=MockSideWriter
type RepairScheduler interface {
	// ScheduleRepair enqueues the repair; it must be safe to schedule the same repair twice
	ScheduleRepair(ctx context.Context, repair domain.SideWriteRepair) error
}

// SideWriter performs the idempotent writes that follow a split update
type SideWriter interface {
	// RebuildView rebuilds the ownership view from the current agreement
	RebuildView(ctx context.Context, assetID string) error

	// RecordHistory appends the change history record of the update; a second call is a no-op
	RecordHistory(ctx context.Context, repair domain.SideWriteRepair) error
}

// historyMeta is the JSON stored in change_history.meta
type historyMeta struct {
	Previous *domain.Split `json:"previous"`
	Next     domain.Split  `json:"new"`
}

type sideWriter struct {
	store     store.Store
	projector projector.Projector
	json      adapter.JSON
}

// NewSideWriter creates the side writer shared by the split update and its retry workflow
func NewSideWriter(st store.Store, proj projector.Projector, json adapter.JSON) SideWriter {
	return &sideWriter{
		store:     st,
		projector: proj,
		json:      json,
	}
}

func (w *sideWriter) RebuildView(ctx context.Context, assetID string) error {
	if _, err := w.projector.Rebuild(ctx, assetID); err != nil {
		return fmt.Errorf("failed to rebuild ownership view: %w", err)
	}
	return nil
}

func (w *sideWriter) RecordHistory(ctx context.Context, repair domain.SideWriteRepair) error {
	meta, err := w.json.MarshalCanonical(historyMeta{Previous: repair.Previous, Next: repair.Next})
	if err != nil {
		return fmt.Errorf("failed to marshal change history meta: %w", err)
	}

	_, err = w.store.CreateChangeHistory(ctx, store.CreateChangeHistoryInput{
		AssetID:      repair.AssetID,
		VersionID:    repair.VersionID,
		Actor:        repair.Actor,
		Reason:       repair.Reason,
		LifetimeFees: repair.LifetimeFees,
		ChangedAt:    repair.ChangedAt,
		Meta:         meta,
	})
	if err != nil {
		return fmt.Errorf("failed to create change history: %w", err)
	}

	return nil
}
