package schema

import (
	"time"

	"gorm.io/datatypes"
)

// OwnershipView represents the ownership_views table - a denormalized read model rebuilt after every mutation
type OwnershipView struct {
	// AssetID is the asset this view describes
	AssetID string `gorm:"column:asset_id;primaryKey;type:text"`
	// VersionID is the agreement version the view was built from
	VersionID uint64 `gorm:"column:version_id;not null"`
	// PlatformBps is the platform's share in basis points
	PlatformBps int `gorm:"column:platform_bps;not null"`
	// PlatformPercentage is PlatformBps / 100
	PlatformPercentage float64 `gorm:"column:platform_percentage;not null;type:numeric(5,2)"`
	// Earners is a JSON array of {identity, bps, percentage, accrued, claimed, owed}
	Earners datatypes.JSON `gorm:"column:earners;not null;type:jsonb"`
	// LifetimeAccrued is the sum of every accrual on the asset
	LifetimeAccrued int64 `gorm:"column:lifetime_accrued;not null;default:0"`
	// LifetimeClaimed is the sum of every earner claim, as a positive amount
	LifetimeClaimed int64 `gorm:"column:lifetime_claimed;not null;default:0"`
	// RebuiltAt is the timestamp of the last rebuild
	RebuiltAt time.Time `gorm:"column:rebuilt_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OwnershipView model
func (OwnershipView) TableName() string {
	return "ownership_views"
}
