package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/reconcile"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// ReconcileSweeperConfig holds configuration for the reconciliation sweeper
type ReconcileSweeperConfig struct {
	Schedule   cron.Schedule
	RunOnStart bool
	// MaxRecordElapsed bounds the retries of recording one asset's outcome
	MaxRecordElapsed time.Duration
}

type reconcileSweeper struct {
	*cronLoop
	config   *ReconcileSweeperConfig
	store    store.Store
	verifier reconcile.Verifier
	json     adapter.JSON
	clock    adapter.Clock
}

// NewReconcileSweeper creates a sweeper that reconciles every asset and records each outcome
func NewReconcileSweeper(
	config *ReconcileSweeperConfig,
	st store.Store,
	verifier reconcile.Verifier,
	json adapter.JSON,
	clock adapter.Clock,
) Sweeper {
	if config.MaxRecordElapsed == 0 {
		config.MaxRecordElapsed = 30 * time.Second
	}
	s := &reconcileSweeper{
		config:   config,
		store:    st,
		verifier: verifier,
		json:     json,
		clock:    clock,
	}
	s.cronLoop = newCronLoop("reconcile-sweeper", config.Schedule, config.RunOnStart, clock, s.runSweepCycle)
	return s
}

func (s *reconcileSweeper) runSweepCycle(ctx context.Context) error {
	report, err := s.verifier.ReconcileAll(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to reconcile assets: %w", err)
	}

	var failed int
	for _, asset := range report.Assets {
		status := reconcile.SweepStatus{Passed: asset.Passed, CheckedAt: report.GeneratedAt}
		for _, check := range asset.Checks {
			if !check.Passed {
				status.FailedChecks = append(status.FailedChecks, check.Name)
			}
		}

		if !asset.Passed {
			failed++
			logger.ErrorCtx(ctx, fmt.Errorf("reconciliation invariants violated for asset %s", asset.AssetID),
				zap.String("assetID", asset.AssetID),
				zap.Strings("failedChecks", status.FailedChecks),
				zap.Int64("lifetimeTotal", asset.Totals.LifetimeTotal),
				zap.Int64("platformAccrual", asset.Totals.PlatformAccrual),
				zap.Int64("earnersAccrual", asset.Totals.EarnersAccrual),
				zap.Int64("payouts", asset.Totals.Payouts),
			)
		}

		if err := s.recordStatusWithRetry(ctx, asset.AssetID, status); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to record reconcile status: %w", err), zap.String("assetID", asset.AssetID))
		}
	}

	logger.InfoCtx(ctx, "Reconcile sweep completed",
		zap.Int("assets", len(report.Assets)),
		zap.Int("failed", failed),
		zap.Bool("hasFailures", report.HasFailures),
	)

	return nil
}

// recordStatusWithRetry writes the status with exponential backoff
func (s *reconcileSweeper) recordStatusWithRetry(ctx context.Context, assetID string, status reconcile.SweepStatus) error {
	value, err := s.json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal reconcile status: %w", err)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = s.config.MaxRecordElapsed

	operation := func() error {
		return s.store.SetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+assetID, string(value))
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Recording reconcile status failed, retrying",
			zap.String("assetID", assetID),
			zap.Error(err),
			zap.Duration("nextRetryIn", next))
	}

	return backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)
}
