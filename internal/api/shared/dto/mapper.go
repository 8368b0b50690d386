package dto

import (
	"encoding/json"
	"fmt"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/payout"
	"github.com/feral-file/ff-royalty-ledger/internal/reconcile"
	"github.com/feral-file/ff-royalty-ledger/internal/royalty"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

// MapAssetToDTO maps a schema.Asset to an AssetResponse
func MapAssetToDTO(asset *schema.Asset) *AssetResponse {
	return &AssetResponse{
		AssetID:   asset.ID,
		Name:      asset.Name,
		Symbol:    asset.Symbol,
		CreatedAt: asset.CreatedAt,
	}
}

// MapSharesToDTO maps domain shares to earner responses
func MapSharesToDTO(shares []domain.Share) []EarnerResponse {
	earners := make([]EarnerResponse, len(shares))
	for i, share := range shares {
		earners[i] = EarnerResponse{
			Identity:   share.Identity,
			Bps:        share.Bps,
			Percentage: domain.Percentage(share.Bps),
		}
	}
	return earners
}

// MapUpdateSplitResultToDTO maps the outcome of a split update to its response
func MapUpdateSplitResultToDTO(result *royalty.UpdateSplitResult) *UpdateSplitResponse {
	earners := make([]EarnerResponse, len(result.Earners))
	for i, earner := range result.Earners {
		earners[i] = EarnerResponse{
			Identity:   earner.Identity,
			Bps:        earner.Bps,
			Percentage: earner.Percentage,
		}
	}
	return &UpdateSplitResponse{
		VersionID:               result.VersionID,
		PlatformBps:             result.PlatformBps,
		PlatformPercentage:      result.PlatformPercentage,
		Earners:                 earners,
		BoundarySnapshotCreated: result.BoundarySnapshotCreated,
		EffectiveFrom:           result.EffectiveFrom,
	}
}

// MapAgreementToDTO maps a domain.Agreement to an AgreementResponse
func MapAgreementToDTO(agreement *domain.Agreement) *AgreementResponse {
	return &AgreementResponse{
		VersionID:          agreement.VersionID,
		AssetID:            agreement.AssetID,
		PlatformBps:        agreement.Split.PlatformBps,
		PlatformPercentage: domain.Percentage(agreement.Split.PlatformBps),
		Earners:            MapSharesToDTO(agreement.Split.Shares),
		SplitHash:          agreement.SplitHash,
		EffectiveFrom:      agreement.EffectiveFrom,
		EffectiveTo:        agreement.EffectiveTo,
		CreatedBy:          agreement.CreatedBy,
	}
}

// MapChangeHistoryToDTO maps a schema.ChangeHistory to a ChangeHistoryResponse
func MapChangeHistoryToDTO(change *schema.ChangeHistory) *ChangeHistoryResponse {
	resp := &ChangeHistoryResponse{
		ID:                  change.ID,
		VersionID:           change.VersionID,
		Actor:               change.Actor,
		Reason:              change.Reason,
		LifetimeFees:        change.LifetimeFees,
		LifetimeFeesDisplay: domain.FormatSOL(change.LifetimeFees),
		ChangedAt:           change.ChangedAt,
	}
	if len(change.Meta) > 0 {
		resp.Meta = json.RawMessage(change.Meta)
	}
	return resp
}

// MapClaimResultToDTO maps a payout result to a ClaimResponse
func MapClaimResultToDTO(result *payout.Result) *ClaimResponse {
	return &ClaimResponse{
		AmountClaimed:        result.AmountRaw,
		AmountClaimedDisplay: result.AmountDisplay,
		TransferRef:          result.TransferRef,
	}
}

// MapWithdrawalResultToDTO maps a payout result to a WithdrawalResponse
func MapWithdrawalResultToDTO(result *payout.Result) *WithdrawalResponse {
	return &WithdrawalResponse{
		AmountWithdrawn:        result.AmountRaw,
		AmountWithdrawnDisplay: result.AmountDisplay,
		TransferRef:            result.TransferRef,
	}
}

// MapOwnershipViewToDTO maps a schema.OwnershipView to an OwnershipResponse
func MapOwnershipViewToDTO(view *schema.OwnershipView) (*OwnershipResponse, error) {
	earners := []OwnershipEarner{}
	if len(view.Earners) > 0 {
		if err := json.Unmarshal(view.Earners, &earners); err != nil {
			return nil, fmt.Errorf("failed to decode ownership view earners: %w", err)
		}
	}

	return &OwnershipResponse{
		AssetID:                view.AssetID,
		VersionID:              view.VersionID,
		PlatformBps:            view.PlatformBps,
		PlatformPercentage:     view.PlatformPercentage,
		Earners:                earners,
		LifetimeAccrued:        view.LifetimeAccrued,
		LifetimeAccruedDisplay: domain.FormatSOL(view.LifetimeAccrued),
		LifetimeClaimed:        view.LifetimeClaimed,
		LifetimeClaimedDisplay: domain.FormatSOL(view.LifetimeClaimed),
		RebuiltAt:              view.RebuiltAt,
	}, nil
}

// ParseSweepStatus decodes a reconcile sweep outcome stored in the key-value store
func ParseSweepStatus(value string) (*reconcile.SweepStatus, error) {
	var status reconcile.SweepStatus
	if err := json.Unmarshal([]byte(value), &status); err != nil {
		return nil, fmt.Errorf("failed to decode reconcile sweep status: %w", err)
	}
	return &status, nil
}
