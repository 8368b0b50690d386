package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/accrual"
	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// FeeAccrualSweeperConfig holds configuration for the fee accrual sweeper
type FeeAccrualSweeperConfig struct {
	Schedule       cron.Schedule
	WorkerPoolSize int  // Assets ingested concurrently
	RunOnStart     bool // Run a cycle before waiting for the first tick
}

// FeeAccrualStats counts the outcome of one sweep cycle
type FeeAccrualStats struct {
	Total     int
	Accrued   int32
	Unchanged int32
	Skipped   int32
	Locked    int32
	Failed    int32
}

type feeAccrualSweeper struct {
	*cronLoop
	config   *FeeAccrualSweeperConfig
	store    store.Store
	ingester accrual.Ingester
	clock    adapter.Clock
}

// NewFeeAccrualSweeper creates a sweeper that ingests the lifetime fees of every asset on a schedule
func NewFeeAccrualSweeper(config *FeeAccrualSweeperConfig, st store.Store, ingester accrual.Ingester, clock adapter.Clock) Sweeper {
	s := &feeAccrualSweeper{
		config:   config,
		store:    st,
		ingester: ingester,
		clock:    clock,
	}
	s.cronLoop = newCronLoop("fee-accrual-sweeper", config.Schedule, config.RunOnStart, clock, s.runSweepCycle)
	return s
}

func (s *feeAccrualSweeper) runSweepCycle(ctx context.Context) error {
	_, err := s.sweep(ctx)
	return err
}

func (s *feeAccrualSweeper) sweep(ctx context.Context) (*FeeAccrualStats, error) {
	startTime := s.clock.Now()

	assetIDs, err := s.store.ListAssetIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	stats := &FeeAccrualStats{Total: len(assetIDs)}
	if len(assetIDs) == 0 {
		logger.InfoCtx(ctx, "No assets to ingest")
		return stats, nil
	}

	poolSize := s.config.WorkerPoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	pool := pond.NewPool(poolSize, pond.WithContext(ctx))

	var accrued, unchanged, skipped, locked, failed atomic.Int32
	for _, assetID := range assetIDs {
		pool.Submit(func() {
			result, err := s.ingester.Ingest(ctx, assetID)
			switch {
			case errors.Is(err, domain.ErrLockNotAcquired):
				// Another operation holds the asset; the next cycle picks up the delta
				locked.Add(1)
			case err != nil:
				failed.Add(1)
				logger.ErrorCtx(ctx, fmt.Errorf("failed to ingest fees: %w", err), zap.String("assetID", assetID))
			case result.Skipped:
				skipped.Add(1)
			case result.Delta > 0:
				accrued.Add(1)
			default:
				unchanged.Add(1)
			}
		})
	}
	pool.StopAndWait()

	stats.Accrued = accrued.Load()
	stats.Unchanged = unchanged.Load()
	stats.Skipped = skipped.Load()
	stats.Locked = locked.Load()
	stats.Failed = failed.Load()

	logger.InfoCtx(ctx, "Fee accrual sweep completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("assets", stats.Total),
		zap.Int32("accrued", stats.Accrued),
		zap.Int32("unchanged", stats.Unchanged),
		zap.Int32("skipped", stats.Skipped),
		zap.Int32("locked", stats.Locked),
		zap.Int32("failed", stats.Failed),
	)

	if stats.Failed > 0 {
		return stats, fmt.Errorf("fee ingestion failed for %d of %d assets", stats.Failed, stats.Total)
	}
	return stats, nil
}
