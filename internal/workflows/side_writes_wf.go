package workflows

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
)

// RetrySideWrites redoes the side writes a split update could not complete inline.
// Both writes are idempotent, so the workflow may run more than once for the same version.
func (w *workerCore) RetrySideWrites(ctx workflow.Context, repair domain.SideWriteRepair) error {
	logger.InfoWf(ctx, "Starting side write repair",
		zap.String("executionID", w.temporalWorkflow.GetExecutionID(ctx)),
		zap.Int32("attempt", w.temporalWorkflow.GetAttempt(ctx)),
		zap.String("assetID", repair.AssetID),
		zap.Uint64("versionID", repair.VersionID),
		zap.Bool("rebuildView", repair.RebuildView),
		zap.Bool("recordHistory", repair.RecordHistory))

	if !repair.RebuildView && !repair.RecordHistory {
		logger.InfoWf(ctx, "Nothing to repair")
		return nil
	}

	lookupCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	})

	var exists bool
	err := workflow.ExecuteActivity(lookupCtx, w.executor.CheckAgreementVersionExists, repair.VersionID).Get(lookupCtx, &exists)
	if err != nil {
		return err
	}
	if !exists {
		logger.WarnWf(ctx, "Agreement version not found, skipping repair",
			zap.Uint64("versionID", repair.VersionID))
		return nil
	}

	// Exponential backoff: 5s, 10s, 20s, ... capped at the maximum interval
	writeCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.config.ActivityStartToCloseTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        w.config.RetryInitialInterval,
			BackoffCoefficient:     2.0,
			MaximumInterval:        w.config.RetryMaximumInterval,
			MaximumAttempts:        w.config.RetryMaximumAttempts,
			NonRetryableErrorTypes: []string{"validation"},
		},
	})

	var errs []error

	if repair.RecordHistory {
		err := workflow.ExecuteActivity(writeCtx, w.executor.RecordChangeHistory, repair).Get(writeCtx, nil)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to record change history: %w", err),
				zap.Uint64("versionID", repair.VersionID))
			errs = append(errs, err)
		}
	}

	if repair.RebuildView {
		err := workflow.ExecuteActivity(writeCtx, w.executor.RebuildOwnershipView, repair.AssetID).Get(writeCtx, nil)
		if err != nil {
			logger.ErrorWf(ctx, fmt.Errorf("failed to rebuild ownership view: %w", err),
				zap.String("assetID", repair.AssetID))
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.InfoWf(ctx, "Side write repair completed",
		zap.String("assetID", repair.AssetID),
		zap.Uint64("versionID", repair.VersionID))

	return nil
}
