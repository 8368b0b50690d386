package snapshot

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

// Snapshotter guarantees a fee snapshot exists before a split change
//
//go:generate mockgen -source=snapshot.go -destination=../mocks/snapshot.go -package=mocks -mock_names=Snapshotter=MockSnapshotter
type Snapshotter interface {
	// EnsureBoundarySnapshot returns the latest snapshot of the asset, creating a boundary
	// snapshot when none exists. The bool reports whether a snapshot was created.
	EnsureBoundarySnapshot(ctx context.Context, assetID string) (*schema.FeeSnapshot, bool, error)
}

type snapshotter struct {
	store store.Store
	clock adapter.Clock
}

// NewSnapshotter creates a boundary snapshotter
func NewSnapshotter(st store.Store, clock adapter.Clock) Snapshotter {
	return &snapshotter{
		store: st,
		clock: clock,
	}
}

// EnsureBoundarySnapshot writes the first snapshot of an asset at zero. Fees earned before the
// first agreement are still unaccrued at that point, so the next ingest attributes them from zero
// to the opening version.
func (s *snapshotter) EnsureBoundarySnapshot(ctx context.Context, assetID string) (*schema.FeeSnapshot, bool, error) {
	latest, err := s.store.GetLatestFeeSnapshot(ctx, assetID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get latest fee snapshot: %w", err)
	}
	if latest != nil {
		return latest, false, nil
	}

	snapshot, err := s.store.CreateBoundarySnapshot(ctx, store.CreateBoundarySnapshotInput{
		AssetID:        assetID,
		CumulativeFees: 0,
		TakenAt:        s.clock.Now(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create boundary snapshot: %w", err)
	}

	logger.InfoCtx(ctx, "Created boundary snapshot",
		zap.String("assetID", assetID),
		zap.Uint64("snapshotID", snapshot.ID),
	)

	return snapshot, true, nil
}
