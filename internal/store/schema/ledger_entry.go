package schema

import (
	"time"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// LedgerEntry represents the ledger_entries table - the append-only record of every fee movement
// Rows are never updated or deleted; corrections are offsetting entries
type LedgerEntry struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the asset that generated the fees
	AssetID string `gorm:"column:asset_id;not null;type:text"`
	// BeneficiaryKind identifies whether the entry belongs to the platform or an earner
	BeneficiaryKind domain.BeneficiaryKind `gorm:"column:beneficiary_kind;not null;type:text"`
	// BeneficiaryID is the earner identity, or the platform beneficiary id
	BeneficiaryID string `gorm:"column:beneficiary_id;not null;type:text"`
	// Amount is the signed amount in lamports: positive for accruals, negative for claims and withdrawals
	Amount int64 `gorm:"column:amount;not null"`
	// EventKind is ACCRUAL, CLAIM or PLATFORM_WITHDRAWAL
	EventKind domain.EventKind `gorm:"column:event_kind;not null;type:text"`
	// OccurredAt is the timestamp of the underlying event
	OccurredAt time.Time `gorm:"column:occurred_at;not null;type:timestamptz"`
	// JobRunID references the job run that produced an accrual
	JobRunID *string `gorm:"column:job_run_id;type:uuid"`
	// TransferRef is the on-chain transaction signature of a payout
	TransferRef *string `gorm:"column:transfer_ref;type:text"`
	// VersionID is the agreement version an accrual was split with
	VersionID *uint64 `gorm:"column:version_id"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
