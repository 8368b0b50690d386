package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/workflows"
)

func TestRepairScheduler_ScheduleRepair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	scheduler := workflows.NewRepairScheduler(orchestrator, "royalty-core")
	repair := domain.SideWriteRepair{AssetID: "mint-1", VersionID: 7, RebuildView: true}

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), workflows.RETRY_SIDE_WRITES_WORKFLOW, repair).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "retry-side-writes-mint-1-7", options.ID)
			assert.Equal(t, "royalty-core", options.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, options.WorkflowIDReusePolicy)
			return client.WorkflowRun(nil), nil
		})

	assert.NoError(t, scheduler.ScheduleRepair(context.Background(), repair))
}

func TestRepairScheduler_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	scheduler := workflows.NewRepairScheduler(orchestrator, "royalty-core")

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(client.WorkflowRun(nil), errors.New("temporal unavailable"))

	err := scheduler.ScheduleRepair(context.Background(), domain.SideWriteRepair{AssetID: "mint-1", VersionID: 7})
	assert.ErrorContains(t, err, "temporal unavailable")
}
