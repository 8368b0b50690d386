package schema

import "time"

// RoyaltyAgreementVersion represents the royalty_agreement_versions table - an effective-dated, immutable fee split
// At most one version per asset has a NULL effective_to (enforced by the uniq_agreement_current partial index)
type RoyaltyAgreementVersion struct {
	// ID is the internal database primary key, also the version number exposed by the API
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the asset this agreement applies to
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// PlatformBps is the platform's share of fees in basis points (0-10000)
	PlatformBps int `gorm:"column:platform_bps;not null"`
	// SplitHash is the sha256 of the canonical split, used to detect no-op updates
	SplitHash string `gorm:"column:split_hash;not null;type:text"`
	// EffectiveFrom is the instant the split starts applying
	EffectiveFrom time.Time `gorm:"column:effective_from;not null;type:timestamptz"`
	// EffectiveTo is the instant the split stopped applying
	// NULL means the version is current
	EffectiveTo *time.Time `gorm:"column:effective_to;type:timestamptz"`
	// CreatedBy is the identity of the operator who opened the version
	CreatedBy string `gorm:"column:created_by;not null;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Shares []RoyaltyShare `gorm:"foreignKey:VersionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the RoyaltyAgreementVersion model
func (RoyaltyAgreementVersion) TableName() string {
	return "royalty_agreement_versions"
}

// RoyaltyShare represents the royalty_shares table - one earner's portion of an agreement version
type RoyaltyShare struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// VersionID references the agreement version this share belongs to
	VersionID uint64 `gorm:"column:version_id;not null"`
	// EarnerIdentity identifies the earner (a wallet address)
	EarnerIdentity string `gorm:"column:earner_identity;not null;type:text"`
	// Bps is the earner's share in basis points
	Bps int `gorm:"column:bps;not null"`
	// Position keeps the order the shares were submitted in
	Position int `gorm:"column:position;not null;default:0"`
}

// TableName specifies the table name for the RoyaltyShare model
func (RoyaltyShare) TableName() string {
	return "royalty_shares"
}
