package workflows

import (
	"context"
	"fmt"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/temporal"
	"github.com/feral-file/ff-royalty-ledger/internal/royalty"
)

// RepairWorkflowID is the workflow ID of the repair of a split update.
// One ID per version makes scheduling the same repair twice a no-op while it runs.
func RepairWorkflowID(assetID string, versionID uint64) string {
	return fmt.Sprintf("retry-side-writes-%s-%d", assetID, versionID)
}

type repairScheduler struct {
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
}

// NewRepairScheduler creates a repair scheduler that starts RetrySideWrites on the core worker
func NewRepairScheduler(orchestrator temporal.TemporalOrchestrator, taskQueue string) royalty.RepairScheduler {
	return &repairScheduler{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

func (s *repairScheduler) ScheduleRepair(ctx context.Context, repair domain.SideWriteRepair) error {
	options := client.StartWorkflowOptions{
		ID:                    RepairWorkflowID(repair.AssetID, repair.VersionID),
		TaskQueue:             s.taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}

	_, err := s.orchestrator.ExecuteWorkflow(ctx, options, RETRY_SIDE_WRITES_WORKFLOW, repair)
	if err != nil {
		return fmt.Errorf("failed to start side write repair workflow: %w", err)
	}

	logger.InfoCtx(ctx, "Scheduled side write repair",
		zap.String("workflowID", options.ID),
		zap.String("assetID", repair.AssetID),
		zap.Uint64("versionID", repair.VersionID))

	return nil
}
