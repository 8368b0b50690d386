package dto

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-royalty-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

// CreateAssetRequest represents the request body for registering an asset
type CreateAssetRequest struct {
	AssetID string `json:"asset_id"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Validate validates the request body
func (r *CreateAssetRequest) Validate() error {
	if !types.IsSolanaAddress(r.AssetID) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid asset_id: %s. Must be a token mint address", r.AssetID))
	}
	if strings.TrimSpace(r.Name) == "" {
		return apierrors.NewValidationError("name is required")
	}
	if len(r.Name) > constants.MAX_ASSET_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_ASSET_NAME_LENGTH))
	}
	if strings.TrimSpace(r.Symbol) == "" {
		return apierrors.NewValidationError("symbol is required")
	}
	if len(r.Symbol) > constants.MAX_ASSET_SYMBOL_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("symbol must be at most %d characters", constants.MAX_ASSET_SYMBOL_LENGTH))
	}
	return nil
}

// EarnerRequest is one earner of a submitted split
type EarnerRequest struct {
	Identity string `json:"identity"`
	Bps      int    `json:"bps"`
}

// UpdateSplitRequest represents the request body for changing the fee split of an asset
type UpdateSplitRequest struct {
	PlatformFeeBps *int            `json:"platform_fee_bps"`
	Earners        []EarnerRequest `json:"earners"`
	Reason         string          `json:"reason"`
}

// Validate checks the shape of the request; sums are checked by the split itself
func (r *UpdateSplitRequest) Validate() error {
	if r.PlatformFeeBps == nil {
		return apierrors.NewValidationError("platform_fee_bps is required")
	}
	if len(r.Earners) == 0 {
		return apierrors.NewValidationError("earners is required")
	}
	if len(r.Earners) > constants.MAX_EARNERS_PER_SPLIT {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d earners allowed", constants.MAX_EARNERS_PER_SPLIT))
	}
	for i, earner := range r.Earners {
		if !types.IsSolanaAddress(earner.Identity) {
			return apierrors.NewValidationError(fmt.Sprintf("earners[%d].identity: invalid address %s", i, earner.Identity))
		}
	}
	if len(r.Reason) > constants.MAX_REASON_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("reason must be at most %d characters", constants.MAX_REASON_LENGTH))
	}
	return nil
}

// ToSplit converts the request into a domain split
func (r *UpdateSplitRequest) ToSplit() domain.Split {
	split := domain.Split{Shares: make([]domain.Share, len(r.Earners))}
	if r.PlatformFeeBps != nil {
		split.PlatformBps = *r.PlatformFeeBps
	}
	for i, earner := range r.Earners {
		split.Shares[i] = domain.Share{Identity: earner.Identity, Bps: earner.Bps}
	}
	return split
}

// ClaimRequest represents the request body for an earner claim
type ClaimRequest struct {
	Earner string `json:"earner"`
	Reason string `json:"reason"`
}

// Validate validates the request body
func (r *ClaimRequest) Validate() error {
	if !types.IsSolanaAddress(r.Earner) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid earner: %s. Must be a Solana address", r.Earner))
	}
	if len(r.Reason) > constants.MAX_REASON_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("reason must be at most %d characters", constants.MAX_REASON_LENGTH))
	}
	return nil
}

// WithdrawRequest represents the request body for a platform withdrawal.
// An omitted or zero amount withdraws everything the platform is owed.
type WithdrawRequest struct {
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
	Reason      string `json:"reason"`
}

// Validate validates the request body
func (r *WithdrawRequest) Validate() error {
	if r.Amount < 0 {
		return apierrors.NewValidationError("amount cannot be negative")
	}
	if !types.IsSolanaAddress(r.Destination) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid destination: %s. Must be a Solana address", r.Destination))
	}
	if len(r.Reason) > constants.MAX_REASON_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("reason must be at most %d characters", constants.MAX_REASON_LENGTH))
	}
	return nil
}
