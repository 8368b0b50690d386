package executor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/agreement"
	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-royalty-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/payout"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/reconcile"
	"github.com/feral-file/ff-royalty-ledger/internal/royalty"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateAsset registers an asset; registering an existing asset returns it unchanged
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)

	// UpdateSplit changes the fee split of an asset on behalf of actor
	UpdateSplit(ctx context.Context, assetID string, actor string, req dto.UpdateSplitRequest) (*dto.UpdateSplitResponse, error)

	// GetSplit retrieves the current agreement of an asset
	GetSplit(ctx context.Context, assetID string) (*dto.AgreementResponse, error)

	// GetSplitHistory retrieves every agreement version and a page of change history of an asset
	GetSplitHistory(ctx context.Context, assetID string, limit *int, offset *uint64) (*dto.SplitHistoryResponse, error)

	// Claim pays an earner everything they are owed on an asset
	Claim(ctx context.Context, assetID string, actor string, req dto.ClaimRequest) (*dto.ClaimResponse, error)

	// WithdrawPlatform pays out part or all of the platform's share of an asset
	WithdrawPlatform(ctx context.Context, assetID string, actor string, req dto.WithdrawRequest) (*dto.WithdrawalResponse, error)

	// GetOwnership retrieves the legacy ownership view of an asset, building it when missing
	GetOwnership(ctx context.Context, assetID string) (*dto.OwnershipResponse, error)

	// GetReconciliation verifies the ledger invariants of one asset, or of every asset when assetID is empty
	GetReconciliation(ctx context.Context, assetID string) (*reconcile.Report, error)
}

type executor struct {
	store     store.Store
	royalty   royalty.Service
	payout    payout.Handler
	versioner agreement.Versioner
	projector projector.Projector
	verifier  reconcile.Verifier
}

func NewExecutor(
	st store.Store,
	royaltyService royalty.Service,
	payoutHandler payout.Handler,
	versioner agreement.Versioner,
	proj projector.Projector,
	verifier reconcile.Verifier,
) Executor {
	return &executor{
		store:     st,
		royalty:   royaltyService,
		payout:    payoutHandler,
		versioner: versioner,
		projector: proj,
		verifier:  verifier,
	}
}

func (e *executor) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := e.store.CreateAsset(ctx, store.CreateAssetInput{
		ID:     strings.TrimSpace(req.AssetID),
		Name:   strings.TrimSpace(req.Name),
		Symbol: strings.TrimSpace(req.Symbol),
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create asset: %v", err))
	}
	return dto.MapAssetToDTO(asset), nil
}

func (e *executor) UpdateSplit(ctx context.Context, assetID string, actor string, req dto.UpdateSplitRequest) (*dto.UpdateSplitResponse, error) {
	result, err := e.royalty.UpdateSplit(ctx, royalty.UpdateSplitInput{
		AssetID: assetID,
		Split:   req.ToSplit(),
		Actor:   actor,
		Reason:  req.Reason,
	})
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to update split")
	}
	return dto.MapUpdateSplitResultToDTO(result), nil
}

func (e *executor) GetSplit(ctx context.Context, assetID string) (*dto.AgreementResponse, error) {
	if err := e.ensureAsset(ctx, assetID); err != nil {
		return nil, err
	}

	current, err := e.versioner.GetCurrentAgreement(ctx, assetID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get agreement: %v", err))
	}
	if current == nil {
		return nil, apierrors.NewNotFoundError("Agreement not found", assetID)
	}

	return dto.MapAgreementToDTO(current), nil
}

func (e *executor) GetSplitHistory(ctx context.Context, assetID string, limit *int, offset *uint64) (*dto.SplitHistoryResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_HISTORY_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	if err := e.ensureAsset(ctx, assetID); err != nil {
		return nil, err
	}

	versions, err := e.versioner.ListVersions(ctx, assetID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list agreement versions: %v", err))
	}

	changes, total, err := e.store.ListChangeHistory(ctx, assetID, *limit, *offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list change history: %v", err))
	}

	resp := &dto.SplitHistoryResponse{
		Versions: make([]dto.AgreementResponse, len(versions)),
		Changes:  make([]dto.ChangeHistoryResponse, len(changes)),
		Total:    total,
	}
	for i := range versions {
		resp.Versions[i] = *dto.MapAgreementToDTO(&versions[i])
	}
	for i := range changes {
		resp.Changes[i] = *dto.MapChangeHistoryToDTO(&changes[i])
	}

	if *offset+uint64(len(changes)) < total { //nolint:gosec,G115
		nextOffset := *offset + uint64(len(changes)) //nolint:gosec,G115
		resp.NextOffset = &nextOffset
	}

	return resp, nil
}

func (e *executor) Claim(ctx context.Context, assetID string, actor string, req dto.ClaimRequest) (*dto.ClaimResponse, error) {
	result, err := e.payout.Claim(ctx, payout.ClaimInput{
		AssetID: assetID,
		Earner:  strings.TrimSpace(req.Earner),
		Reason:  req.Reason,
		Actor:   actor,
	})
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to claim payout")
	}
	return dto.MapClaimResultToDTO(result), nil
}

func (e *executor) WithdrawPlatform(ctx context.Context, assetID string, actor string, req dto.WithdrawRequest) (*dto.WithdrawalResponse, error) {
	result, err := e.payout.WithdrawPlatform(ctx, payout.WithdrawInput{
		AssetID:     assetID,
		Amount:      req.Amount,
		Destination: strings.TrimSpace(req.Destination),
		Reason:      req.Reason,
		Actor:       actor,
	})
	if err != nil {
		return nil, apierrors.FromError(err, "Failed to withdraw platform fees")
	}
	return dto.MapWithdrawalResultToDTO(result), nil
}

func (e *executor) GetOwnership(ctx context.Context, assetID string) (*dto.OwnershipResponse, error) {
	view, err := e.store.GetOwnershipView(ctx, assetID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get ownership view: %v", err))
	}

	if view == nil {
		if err := e.ensureAsset(ctx, assetID); err != nil {
			return nil, err
		}

		// The view is missing until the first rebuild succeeds
		view, err = e.projector.Rebuild(ctx, assetID)
		if err != nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to build ownership view: %v", err))
		}
		if view == nil {
			return nil, apierrors.NewNotFoundError("Agreement not found", assetID)
		}
	}

	resp, err := dto.MapOwnershipViewToDTO(view)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to read ownership view", err.Error())
	}
	return resp, nil
}

func (e *executor) GetReconciliation(ctx context.Context, assetID string) (*reconcile.Report, error) {
	var assetIDs []string
	if assetID != "" {
		assetIDs = []string{assetID}
	}

	report, err := e.verifier.ReconcileAll(ctx, assetIDs)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to reconcile ledger: %v", err))
	}
	if assetID != "" && len(report.Assets) == 0 {
		return nil, apierrors.NewNotFoundError("Asset not found", assetID)
	}

	e.attachLastSweeps(ctx, report, assetID)

	return report, nil
}

// attachLastSweeps adds the outcome recorded by the reconcile sweeper to each asset report.
// The recorded outcome is informational, so read or decode failures only drop it.
func (e *executor) attachLastSweeps(ctx context.Context, report *reconcile.Report, assetID string) {
	var statuses map[string]string
	if assetID != "" {
		value, err := e.store.GetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+assetID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read last reconcile sweep", zap.String("assetID", assetID), zap.Error(err))
			return
		}
		statuses = map[string]string{domain.RECONCILE_STATUS_KEY_PREFIX + assetID: value}
	} else {
		var err error
		statuses, err = e.store.GetAllKeyValuesByPrefix(ctx, domain.RECONCILE_STATUS_KEY_PREFIX)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read last reconcile sweeps", zap.Error(err))
			return
		}
	}

	for i := range report.Assets {
		value := statuses[domain.RECONCILE_STATUS_KEY_PREFIX+report.Assets[i].AssetID]
		if value == "" {
			continue
		}
		status, err := dto.ParseSweepStatus(value)
		if err != nil {
			logger.WarnCtx(ctx, "Ignoring malformed reconcile sweep status",
				zap.String("assetID", report.Assets[i].AssetID), zap.Error(err))
			continue
		}
		report.Assets[i].LastSweep = status
	}
}

// ensureAsset returns a not found error when the asset is not registered
func (e *executor) ensureAsset(ctx context.Context, assetID string) error {
	asset, err := e.store.GetAsset(ctx, assetID)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get asset: %v", err))
	}
	if asset == nil {
		return apierrors.NewNotFoundError("Asset not found", assetID)
	}
	return nil
}
