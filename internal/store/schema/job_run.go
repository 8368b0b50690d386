package schema

import (
	"time"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// JobRun represents the job_runs table - one execution of a fee snapshot or boundary job
type JobRun struct {
	// ID is the job run UUID
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// AssetID references the asset the job ran for
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// Kind is FEE_SNAPSHOT or BOUNDARY
	Kind domain.JobKind `gorm:"column:kind;not null;type:text"`
	// Status is SUCCEEDED or FAILED
	Status domain.JobStatus `gorm:"column:status;not null;type:text"`
	// StartedAt is the timestamp when the job started
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz"`
	// FinishedAt is the timestamp when the job finished
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
}

// TableName specifies the table name for the JobRun model
func (JobRun) TableName() string {
	return "job_runs"
}
