package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// RETRY_SIDE_WRITES_WORKFLOW is the registered name of the side write repair workflow
const RETRY_SIDE_WRITES_WORKFLOW = "RetrySideWrites"

// WorkerCore defines the workflows run by the core worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockCoreWorker
type WorkerCore interface {
	// RetrySideWrites redoes the ownership view rebuild and change history write of a split update
	RetrySideWrites(ctx workflow.Context, repair domain.SideWriteRepair) error
}

type WorkerCoreConfig struct {
	// ActivityStartToCloseTimeout bounds a single side write attempt
	ActivityStartToCloseTimeout time.Duration
	// RetryInitialInterval is the delay before the first retry
	RetryInitialInterval time.Duration
	// RetryMaximumInterval caps the exponential backoff between attempts
	RetryMaximumInterval time.Duration
	// RetryMaximumAttempts bounds the attempts per side write, 0 means unlimited
	RetryMaximumAttempts int32
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config           WorkerCoreConfig
	executor         Executor
	temporalWorkflow adapter.Workflow
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig, temporalWorkflow adapter.Workflow) WorkerCore {
	if config.ActivityStartToCloseTimeout == 0 {
		config.ActivityStartToCloseTimeout = 30 * time.Second
	}
	if config.RetryInitialInterval == 0 {
		config.RetryInitialInterval = 5 * time.Second
	}
	if config.RetryMaximumInterval == 0 {
		config.RetryMaximumInterval = 10 * time.Minute
	}

	return &workerCore{
		executor:         executor,
		config:           config,
		temporalWorkflow: temporalWorkflow,
	}
}
