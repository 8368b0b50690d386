package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

// CreateAssetInput represents the input for registering an asset
type CreateAssetInput struct {
	ID     string
	Name   string
	Symbol string
}

// OpenAgreementInput represents the input for opening a new agreement version
type OpenAgreementInput struct {
	AssetID       string
	PlatformBps   int
	Shares        []domain.Share
	SplitHash     string
	EffectiveFrom time.Time
	CreatedBy     string
}

// RotateAgreementInput represents the input for closing the current version and opening the next one atomically
type RotateAgreementInput struct {
	// PreviousVersionID is the version expected to be current, nil when the asset has no agreement yet
	PreviousVersionID *uint64
	// Next is the version to open; its EffectiveFrom is also the close time of the previous version
	Next OpenAgreementInput
}

// CreateBoundarySnapshotInput represents the input for a forced snapshot taken by a split update
type CreateBoundarySnapshotInput struct {
	AssetID        string
	CumulativeFees int64
	TakenAt        time.Time
}

// CreateJobRunInput represents the input for recording a standalone job run
type CreateJobRunInput struct {
	AssetID    string
	Kind       domain.JobKind
	Status     domain.JobStatus
	StartedAt  time.Time
	FinishedAt time.Time
}

// RecordFeeAccrualInput represents the input for ingesting a fee snapshot and its accruals
type RecordFeeAccrualInput struct {
	AssetID        string
	CumulativeFees int64
	StartedAt      time.Time
	TakenAt        time.Time
	// VersionID is the agreement version the allocations were computed with
	VersionID *uint64
	// Allocations become one ACCRUAL entry each; empty for a snapshot without delta
	Allocations []domain.Allocation
}

// RecordFeeAccrualResult is the outcome of a fee accrual ingestion
type RecordFeeAccrualResult struct {
	JobRun   schema.JobRun
	Snapshot schema.FeeSnapshot
	Entries  []schema.LedgerEntry
}

// AppendLedgerEntryInput represents a single ledger entry to append
type AppendLedgerEntryInput struct {
	AssetID         string
	BeneficiaryKind domain.BeneficiaryKind
	BeneficiaryID   string
	Amount          int64
	EventKind       domain.EventKind
	OccurredAt      time.Time
	JobRunID        *string
	TransferRef     *string
	VersionID       *uint64
}

// BeneficiaryBalance aggregates the ledger entries of a single beneficiary on an asset
type BeneficiaryBalance struct {
	BeneficiaryKind domain.BeneficiaryKind
	BeneficiaryID   string
	// Accrued is the sum of ACCRUAL entries
	Accrued int64
	// Paid is the magnitude of CLAIM and PLATFORM_WITHDRAWAL entries
	Paid int64
	// Balance is the signed sum of all entries, i.e. what is still owed
	Balance int64
}

// ReconcileSnapshot is a consistent read of an asset's ledger totals and lifetime fees
type ReconcileSnapshot struct {
	AssetID string
	// LifetimeTotal is the cumulative fees of the latest snapshot, 0 when none exists
	LifetimeTotal int64
	HasSnapshot   bool
	Balances      []BeneficiaryBalance
}

// CreateChangeHistoryInput represents the input for recording a split update
type CreateChangeHistoryInput struct {
	AssetID      string
	VersionID    uint64
	Actor        string
	Reason       string
	LifetimeFees int64
	ChangedAt    time.Time
	Meta         []byte
}

// UpsertOwnershipViewInput represents a full rebuild of an asset's ownership view
type UpsertOwnershipViewInput struct {
	AssetID            string
	VersionID          uint64
	PlatformBps        int
	PlatformPercentage float64
	Earners            []byte
	LifetimeAccrued    int64
	LifetimeClaimed    int64
	RebuiltAt          time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Assets
	// =============================================================================

	// CreateAsset registers an asset; registering an existing asset is a no-op
	CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error)
	// GetAsset retrieves an asset by ID, nil when not found
	GetAsset(ctx context.Context, assetID string) (*schema.Asset, error)
	// ListAssetIDs lists every asset ID in creation order
	ListAssetIDs(ctx context.Context) ([]string, error)

	// =============================================================================
	// Agreement versions
	// =============================================================================

	// GetCurrentAgreement retrieves the open agreement version of an asset with its shares, nil when none
	GetCurrentAgreement(ctx context.Context, assetID string) (*schema.RoyaltyAgreementVersion, error)
	// GetAgreementVersion retrieves an agreement version with its shares, nil when not found
	GetAgreementVersion(ctx context.Context, versionID uint64) (*schema.RoyaltyAgreementVersion, error)
	// ListAgreementVersions lists every version of an asset, newest first
	ListAgreementVersions(ctx context.Context, assetID string) ([]schema.RoyaltyAgreementVersion, error)
	// OpenAgreementVersion inserts a version and its shares in one transaction
	OpenAgreementVersion(ctx context.Context, input OpenAgreementInput) (*schema.RoyaltyAgreementVersion, error)
	// CloseAgreementVersion sets effective_to on an open version; a closed version yields a ConflictError
	CloseAgreementVersion(ctx context.Context, versionID uint64, at time.Time) error
	// RotateAgreement closes the previous version and opens the next one in one transaction
	RotateAgreement(ctx context.Context, input RotateAgreementInput) (*schema.RoyaltyAgreementVersion, error)

	// =============================================================================
	// Job runs and fee snapshots
	// =============================================================================

	// GetLatestFeeSnapshot retrieves the most recent snapshot of an asset, nil when none
	GetLatestFeeSnapshot(ctx context.Context, assetID string) (*schema.FeeSnapshot, error)
	// CreateBoundarySnapshot writes a BOUNDARY job run and its snapshot in one transaction
	CreateBoundarySnapshot(ctx context.Context, input CreateBoundarySnapshotInput) (*schema.FeeSnapshot, error)
	// CreateJobRun records a job run without a snapshot, used for failed runs
	CreateJobRun(ctx context.Context, input CreateJobRunInput) (*schema.JobRun, error)
	// RecordFeeAccrual writes a FEE_SNAPSHOT job run, its snapshot and the accrual entries in one transaction
	RecordFeeAccrual(ctx context.Context, input RecordFeeAccrualInput) (*RecordFeeAccrualResult, error)

	// =============================================================================
	// Ledger
	// =============================================================================

	// AppendLedgerEntry appends a single entry; the sign of the amount must match the event kind
	AppendLedgerEntry(ctx context.Context, input AppendLedgerEntryInput) (*schema.LedgerEntry, error)
	// GetBeneficiaryBalance aggregates the entries of one beneficiary, read from the primary
	GetBeneficiaryBalance(ctx context.Context, assetID string, kind domain.BeneficiaryKind, beneficiaryID string) (*BeneficiaryBalance, error)
	// GetBeneficiaryBalances aggregates the entries of every beneficiary of an asset
	GetBeneficiaryBalances(ctx context.Context, assetID string) ([]BeneficiaryBalance, error)
	// GetReconcileSnapshots reads ledger totals and lifetime fees of the given registered assets (all
	// when empty) inside a single repeatable read, read only transaction. Unknown ids are omitted.
	GetReconcileSnapshots(ctx context.Context, assetIDs []string) ([]ReconcileSnapshot, error)

	// =============================================================================
	// Read models and audit
	// =============================================================================

	// UpsertOwnershipView overwrites the ownership view of an asset
	UpsertOwnershipView(ctx context.Context, input UpsertOwnershipViewInput) (*schema.OwnershipView, error)
	// GetOwnershipView retrieves the ownership view of an asset, nil when not built yet
	GetOwnershipView(ctx context.Context, assetID string) (*schema.OwnershipView, error)
	// CreateChangeHistory appends a change history record; a second record for the same version is ignored
	CreateChangeHistory(ctx context.Context, input CreateChangeHistoryInput) (*schema.ChangeHistory, error)
	// ListChangeHistory lists the change history of an asset, newest first
	ListChangeHistory(ctx context.Context, assetID string, limit int, offset uint64) ([]schema.ChangeHistory, uint64, error)

	// =============================================================================
	// Key-value store
	// =============================================================================

	// SetKeyValue sets a key-value pair in the key-value store
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue retrieves a value by key, empty when not found
	GetKeyValue(ctx context.Context, key string) (string, error)
	// GetAllKeyValuesByPrefix retrieves all key-value pairs with a specific prefix
	GetAllKeyValuesByPrefix(ctx context.Context, prefix string) (map[string]string, error)
}
