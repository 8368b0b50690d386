package dto

import (
	"encoding/json"
	"time"
)

// AssetResponse represents a registered asset
type AssetResponse struct {
	AssetID   string    `json:"asset_id"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	CreatedAt time.Time `json:"created_at"`
}

// EarnerResponse is one earner of a split with its display percentage
type EarnerResponse struct {
	Identity   string  `json:"identity"`
	Bps        int     `json:"bps"`
	Percentage float64 `json:"percentage"`
}

// UpdateSplitResponse represents the outcome of a split update
type UpdateSplitResponse struct {
	VersionID               uint64           `json:"version_id"`
	PlatformBps             int              `json:"platform_bps"`
	PlatformPercentage      float64          `json:"platform_percentage"`
	Earners                 []EarnerResponse `json:"earners"`
	BoundarySnapshotCreated bool             `json:"boundary_snapshot_created"`
	EffectiveFrom           time.Time        `json:"effective_from"`
}

// AgreementResponse represents an agreement version
type AgreementResponse struct {
	VersionID          uint64           `json:"version_id"`
	AssetID            string           `json:"asset_id"`
	PlatformBps        int              `json:"platform_bps"`
	PlatformPercentage float64          `json:"platform_percentage"`
	Earners            []EarnerResponse `json:"earners"`
	SplitHash          string           `json:"split_hash"`
	EffectiveFrom      time.Time        `json:"effective_from"`
	EffectiveTo        *time.Time       `json:"effective_to,omitempty"`
	CreatedBy          string           `json:"created_by"`
}

// ChangeHistoryResponse represents an audit record of a split update
type ChangeHistoryResponse struct {
	ID                  uint64          `json:"id"`
	VersionID           uint64          `json:"version_id"`
	Actor               string          `json:"actor"`
	Reason              string          `json:"reason"`
	LifetimeFees        int64           `json:"lifetime_fees"`
	LifetimeFeesDisplay string          `json:"lifetime_fees_display"`
	ChangedAt           time.Time       `json:"changed_at"`
	Meta                json.RawMessage `json:"meta,omitempty"`
}

// SplitHistoryResponse lists every version of an asset and a page of its change history
type SplitHistoryResponse struct {
	Versions   []AgreementResponse     `json:"versions"`
	Changes    []ChangeHistoryResponse `json:"changes"`
	Total      uint64                  `json:"total"`
	NextOffset *uint64                 `json:"next_offset,omitempty"`
}

// ClaimResponse represents a successful earner claim
type ClaimResponse struct {
	AmountClaimed        int64  `json:"amount_claimed"`
	AmountClaimedDisplay string `json:"amount_claimed_display"`
	TransferRef          string `json:"transfer_ref"`
}

// WithdrawalResponse represents a successful platform withdrawal
type WithdrawalResponse struct {
	AmountWithdrawn        int64  `json:"amount_withdrawn"`
	AmountWithdrawnDisplay string `json:"amount_withdrawn_display"`
	TransferRef            string `json:"transfer_ref"`
}

// OwnershipEarner is one earner row of the legacy ownership view
type OwnershipEarner struct {
	Identity   string  `json:"identity"`
	Bps        int     `json:"bps"`
	Percentage float64 `json:"percentage"`
	Accrued    int64   `json:"accrued"`
	Claimed    int64   `json:"claimed"`
	Owed       int64   `json:"owed"`
}

// OwnershipResponse represents the legacy ownership view of an asset
type OwnershipResponse struct {
	AssetID                string            `json:"asset_id"`
	VersionID              uint64            `json:"version_id"`
	PlatformBps            int               `json:"platform_bps"`
	PlatformPercentage     float64           `json:"platform_percentage"`
	Earners                []OwnershipEarner `json:"earners"`
	LifetimeAccrued        int64             `json:"lifetime_accrued"`
	LifetimeAccruedDisplay string            `json:"lifetime_accrued_display"`
	LifetimeClaimed        int64             `json:"lifetime_claimed"`
	LifetimeClaimedDisplay string            `json:"lifetime_claimed_display"`
	RebuiltAt              time.Time         `json:"rebuilt_at"`
}
