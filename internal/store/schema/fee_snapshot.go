package schema

import "time"

// FeeSnapshot represents the fee_snapshots table - the lifetime fee total of an asset at an instant
type FeeSnapshot struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the asset
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// JobRunID references the job run that took the snapshot
	JobRunID string `gorm:"column:job_run_id;not null;type:uuid"`
	// CumulativeFees is the lifetime fee total in lamports
	CumulativeFees int64 `gorm:"column:cumulative_fees;not null"`
	// TakenAt is the instant the total was observed
	TakenAt time.Time `gorm:"column:taken_at;not null;type:timestamptz"`
	// IsBoundary marks snapshots forced by a split update
	IsBoundary bool `gorm:"column:is_boundary;not null;default:false"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the FeeSnapshot model
func (FeeSnapshot) TableName() string {
	return "fee_snapshots"
}
