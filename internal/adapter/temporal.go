package adapter

import (
	"go.temporal.io/sdk/workflow"
)

// Workflow defines an interface for workflow operations
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Workflow=MockWorkflow
type Workflow interface {
	// GetExecutionID returns the workflow execution ID
	GetExecutionID(ctx workflow.Context) string

	// GetAttempt returns the attempt number of the current workflow run
	GetAttempt(ctx workflow.Context) int32
}

// RealWorkflow implements Workflow using the standard workflow package
type RealWorkflow struct{}

// NewWorkflow creates a new real workflow implementation
func NewWorkflow() Workflow {
	return &RealWorkflow{}
}

// GetExecutionID returns the workflow execution ID
func (w *RealWorkflow) GetExecutionID(ctx workflow.Context) string {
	return workflow.GetInfo(ctx).WorkflowExecution.ID
}

// GetAttempt returns the attempt number of the current workflow run
func (w *RealWorkflow) GetAttempt(ctx workflow.Context) int32 {
	return workflow.GetInfo(ctx).Attempt
}
