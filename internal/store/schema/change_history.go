package schema

import (
	"time"

	"gorm.io/datatypes"
)

// ChangeHistory represents the change_history table - audit log of split updates, one row per version opened by an update
type ChangeHistory struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the asset whose split changed
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// VersionID is the agreement version opened by the update
	VersionID uint64 `gorm:"column:version_id;not null;uniqueIndex"`
	// Actor is the authenticated identity that performed the update
	Actor string `gorm:"column:actor;not null;type:text"`
	// Reason is the free-form justification given by the actor
	Reason string `gorm:"column:reason;not null;default:'';type:text"`
	// LifetimeFees is the boundary snapshot value at the time of the change
	LifetimeFees int64 `gorm:"column:lifetime_fees;not null;default:0"`
	// ChangedAt is the effective time of the change
	ChangedAt time.Time `gorm:"column:changed_at;not null;default:now();type:timestamptz"`
	// Meta contains the previous and new split as JSON
	Meta datatypes.JSON `gorm:"column:meta;type:jsonb"`
}

// TableName specifies the table name for the ChangeHistory model
func (ChangeHistory) TableName() string {
	return "change_history"
}
