package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/royalty"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// CheckAgreementVersionExists reports whether the agreement version a repair refers to was committed
	CheckAgreementVersionExists(ctx context.Context, versionID uint64) (bool, error)

	// RebuildOwnershipView rebuilds the ownership view of an asset from its current agreement
	RebuildOwnershipView(ctx context.Context, assetID string) error

	// RecordChangeHistory appends the change history record of a split update; a recorded version is a no-op
	RecordChangeHistory(ctx context.Context, repair domain.SideWriteRepair) error
}

// executor is the concrete implementation of Executor
type executor struct {
	store      store.Store
	sideWriter royalty.SideWriter
}

// NewExecutor creates a new executor instance
func NewExecutor(store store.Store, sideWriter royalty.SideWriter) Executor {
	return &executor{
		store:      store,
		sideWriter: sideWriter,
	}
}

func (e *executor) CheckAgreementVersionExists(ctx context.Context, versionID uint64) (bool, error) {
	version, err := e.store.GetAgreementVersion(ctx, versionID)
	if err != nil {
		return false, fmt.Errorf("failed to get agreement version: %w", err)
	}
	return version != nil, nil
}

func (e *executor) RebuildOwnershipView(ctx context.Context, assetID string) error {
	if err := e.sideWriter.RebuildView(ctx, assetID); err != nil {
		logger.WarnCtx(ctx, "Ownership view rebuild attempt failed", zap.String("assetID", assetID), zap.Error(err))
		return err
	}
	logger.InfoCtx(ctx, "Ownership view rebuilt", zap.String("assetID", assetID))
	return nil
}

func (e *executor) RecordChangeHistory(ctx context.Context, repair domain.SideWriteRepair) error {
	if err := e.sideWriter.RecordHistory(ctx, repair); err != nil {
		logger.WarnCtx(ctx, "Change history attempt failed",
			zap.String("assetID", repair.AssetID),
			zap.Uint64("versionID", repair.VersionID),
			zap.Error(err))

		// A history record that references an unknown version can never be written
		if errors.Is(err, domain.ErrValidation) {
			return temporal.NewNonRetryableApplicationError(err.Error(), "validation", err)
		}
		return err
	}
	logger.InfoCtx(ctx, "Change history recorded",
		zap.String("assetID", repair.AssetID),
		zap.Uint64("versionID", repair.VersionID))
	return nil
}
