package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// RegisterReadReplica routes plain reads to the replica while writes and transactions stay on the primary
func RegisterReadReplica(db *gorm.DB, replicaDSN string, dialector func(dsn string) gorm.Dialector) error {
	if replicaDSN == "" {
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas:          []gorm.Dialector{dialector(replicaDSN)},
		Policy:            dbresolver.RandomPolicy{},
		TraceResolverMode: false,
	}))
	if err != nil {
		return fmt.Errorf("failed to register read replica: %w", err)
	}

	return nil
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays below
// PostgreSQL's limit of 65535 parameters per statement, keeping 1000 parameters of headroom
// for GORM-added columns and conflict clauses.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// primary pins a query to the primary when a read replica is registered.
// Reads that decide a subsequent write must not observe replica lag.
func (s *pgStore) primary(ctx context.Context) *gorm.DB {
	if hasDBResolver(s.db) {
		return s.db.WithContext(ctx).Clauses(dbresolver.Write)
	}
	return s.db.WithContext(ctx)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func isCheckViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}

func orderedShares(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// =============================================================================
// Assets
// =============================================================================

// CreateAsset registers an asset; registering an existing asset returns the stored row unchanged
func (s *pgStore) CreateAsset(ctx context.Context, input CreateAssetInput) (*schema.Asset, error) {
	asset := schema.Asset{
		ID:     input.ID,
		Name:   input.Name,
		Symbol: input.Symbol,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&asset).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	var stored schema.Asset
	if err := s.primary(ctx).Where("id = ?", input.ID).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to load asset: %w", err)
	}

	return &stored, nil
}

// GetAsset retrieves an asset by ID
func (s *pgStore) GetAsset(ctx context.Context, assetID string) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("id = ?", assetID).First(&asset).Error
	if err == nil {
		return &asset, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	err = s.primary(ctx).Where("id = ?", assetID).First(&asset).Error
	if err == nil {
		return &asset, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get asset: %w", err)
}

// ListAssetIDs lists every asset ID in creation order
func (s *pgStore) ListAssetIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Order("created_at ASC, id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return ids, nil
}

// =============================================================================
// Agreement versions
// =============================================================================

// GetCurrentAgreement retrieves the open agreement version of an asset
func (s *pgStore) GetCurrentAgreement(ctx context.Context, assetID string) (*schema.RoyaltyAgreementVersion, error) {
	var version schema.RoyaltyAgreementVersion
	err := s.primary(ctx).
		Preload("Shares", orderedShares).
		Where("asset_id = ? AND effective_to IS NULL", assetID).
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current agreement: %w", err)
	}

	return &version, nil
}

// GetAgreementVersion retrieves an agreement version by ID
func (s *pgStore) GetAgreementVersion(ctx context.Context, versionID uint64) (*schema.RoyaltyAgreementVersion, error) {
	var version schema.RoyaltyAgreementVersion
	err := s.primary(ctx).
		Preload("Shares", orderedShares).
		Where("id = ?", versionID).
		First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agreement version: %w", err)
	}

	return &version, nil
}

// ListAgreementVersions lists every version of an asset, newest first
func (s *pgStore) ListAgreementVersions(ctx context.Context, assetID string) ([]schema.RoyaltyAgreementVersion, error) {
	var versions []schema.RoyaltyAgreementVersion
	err := s.db.WithContext(ctx).
		Preload("Shares", orderedShares).
		Where("asset_id = ?", assetID).
		Order("effective_from DESC, id DESC").
		Find(&versions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list agreement versions: %w", err)
	}

	return versions, nil
}

// OpenAgreementVersion inserts a version and its shares in one transaction
// The partial unique index rejects a second open version for the same asset
func (s *pgStore) OpenAgreementVersion(ctx context.Context, input OpenAgreementInput) (*schema.RoyaltyAgreementVersion, error) {
	var version *schema.RoyaltyAgreementVersion
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		version, err = createAgreementVersion(tx, input)
		return err
	})
	if err != nil {
		return nil, err
	}

	return version, nil
}

// CloseAgreementVersion sets effective_to on an open version
func (s *pgStore) CloseAgreementVersion(ctx context.Context, versionID uint64, at time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&schema.RoyaltyAgreementVersion{}).
		Where("id = ? AND effective_to IS NULL", versionID).
		Update("effective_to", at)
	if result.Error != nil {
		return fmt.Errorf("failed to close agreement version: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	err := s.primary(ctx).
		Model(&schema.RoyaltyAgreementVersion{}).
		Where("id = ?", versionID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check agreement version: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: version %d", domain.ErrAgreementNotFound, versionID)
	}

	return &domain.ConflictError{
		Entity: "agreement_version",
		ID:     fmt.Sprintf("%d", versionID),
		Reason: "version is already closed",
	}
}

// RotateAgreement closes the previous version and opens the next one in one transaction.
// The close only matches a version that is still current, so two concurrent rotations of
// the same asset cannot both succeed.
func (s *pgStore) RotateAgreement(ctx context.Context, input RotateAgreementInput) (*schema.RoyaltyAgreementVersion, error) {
	var version *schema.RoyaltyAgreementVersion
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.PreviousVersionID != nil {
			result := tx.Model(&schema.RoyaltyAgreementVersion{}).
				Where("id = ? AND asset_id = ? AND effective_to IS NULL", *input.PreviousVersionID, input.Next.AssetID).
				Update("effective_to", input.Next.EffectiveFrom)
			if result.Error != nil {
				return fmt.Errorf("failed to close agreement version: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return &domain.ConflictError{
					Entity: "agreement_version",
					ID:     fmt.Sprintf("%d", *input.PreviousVersionID),
					Reason: "version is no longer current",
				}
			}
		}

		var err error
		version, err = createAgreementVersion(tx, input.Next)
		return err
	})
	if err != nil {
		return nil, err
	}

	return version, nil
}

func createAgreementVersion(tx *gorm.DB, input OpenAgreementInput) (*schema.RoyaltyAgreementVersion, error) {
	version := schema.RoyaltyAgreementVersion{
		AssetID:       input.AssetID,
		PlatformBps:   input.PlatformBps,
		SplitHash:     input.SplitHash,
		EffectiveFrom: input.EffectiveFrom,
		CreatedBy:     input.CreatedBy,
	}

	if err := tx.Omit(clause.Associations).Create(&version).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.ConflictError{
				Entity: "agreement_version",
				ID:     input.AssetID,
				Reason: "asset already has a current agreement",
			}
		}
		if isCheckViolation(err) {
			return nil, domain.NewValidationError("platform_fee_bps", err.Error())
		}
		return nil, fmt.Errorf("failed to create agreement version: %w", err)
	}

	if len(input.Shares) > 0 {
		shares := make([]schema.RoyaltyShare, len(input.Shares))
		for i, share := range input.Shares {
			shares[i] = schema.RoyaltyShare{
				VersionID:      version.ID,
				EarnerIdentity: share.Identity,
				Bps:            share.Bps,
				Position:       i,
			}
		}

		if err := tx.Create(&shares).Error; err != nil {
			if isUniqueViolation(err) {
				return nil, domain.NewValidationError("earners", "duplicate earner identity")
			}
			if isCheckViolation(err) {
				return nil, domain.NewValidationError("earners", err.Error())
			}
			return nil, fmt.Errorf("failed to create royalty shares: %w", err)
		}
		version.Shares = shares
	}

	return &version, nil
}

// =============================================================================
// Job runs and fee snapshots
// =============================================================================

// GetLatestFeeSnapshot retrieves the most recent snapshot of an asset
func (s *pgStore) GetLatestFeeSnapshot(ctx context.Context, assetID string) (*schema.FeeSnapshot, error) {
	var snapshot schema.FeeSnapshot
	err := s.primary(ctx).
		Where("asset_id = ?", assetID).
		Order("taken_at DESC, id DESC").
		First(&snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest fee snapshot: %w", err)
	}

	return &snapshot, nil
}

// CreateBoundarySnapshot writes a BOUNDARY job run and its snapshot in one transaction
func (s *pgStore) CreateBoundarySnapshot(ctx context.Context, input CreateBoundarySnapshotInput) (*schema.FeeSnapshot, error) {
	var snapshot schema.FeeSnapshot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		finishedAt := input.TakenAt
		jobRun := schema.JobRun{
			ID:         uuid.NewString(),
			AssetID:    input.AssetID,
			Kind:       domain.JobKindBoundary,
			Status:     domain.JobStatusSucceeded,
			StartedAt:  input.TakenAt,
			FinishedAt: &finishedAt,
		}
		if err := tx.Create(&jobRun).Error; err != nil {
			return fmt.Errorf("failed to create boundary job run: %w", err)
		}

		snapshot = schema.FeeSnapshot{
			AssetID:        input.AssetID,
			JobRunID:       jobRun.ID,
			CumulativeFees: input.CumulativeFees,
			TakenAt:        input.TakenAt,
			IsBoundary:     true,
		}
		if err := tx.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to create boundary snapshot: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// CreateJobRun records a job run without a snapshot
func (s *pgStore) CreateJobRun(ctx context.Context, input CreateJobRunInput) (*schema.JobRun, error) {
	finishedAt := input.FinishedAt
	jobRun := schema.JobRun{
		ID:         uuid.NewString(),
		AssetID:    input.AssetID,
		Kind:       input.Kind,
		Status:     input.Status,
		StartedAt:  input.StartedAt,
		FinishedAt: &finishedAt,
	}

	if err := s.db.WithContext(ctx).Create(&jobRun).Error; err != nil {
		return nil, fmt.Errorf("failed to create job run: %w", err)
	}

	return &jobRun, nil
}

// RecordFeeAccrual writes a FEE_SNAPSHOT job run, its snapshot and the accrual entries in one transaction
func (s *pgStore) RecordFeeAccrual(ctx context.Context, input RecordFeeAccrualInput) (*RecordFeeAccrualResult, error) {
	for i, allocation := range input.Allocations {
		if !domain.EventKindAccrual.ValidAmount(allocation.Amount) {
			return nil, domain.NewValidationError(fmt.Sprintf("allocations[%d].amount", i), "accrual amount must be positive")
		}
		if !allocation.Kind.Valid() {
			return nil, domain.NewValidationError(fmt.Sprintf("allocations[%d].kind", i), "unknown beneficiary kind")
		}
	}

	var result RecordFeeAccrualResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		finishedAt := input.TakenAt
		result.JobRun = schema.JobRun{
			ID:         uuid.NewString(),
			AssetID:    input.AssetID,
			Kind:       domain.JobKindFeeSnapshot,
			Status:     domain.JobStatusSucceeded,
			StartedAt:  input.StartedAt,
			FinishedAt: &finishedAt,
		}
		if err := tx.Create(&result.JobRun).Error; err != nil {
			return fmt.Errorf("failed to create job run: %w", err)
		}

		result.Snapshot = schema.FeeSnapshot{
			AssetID:        input.AssetID,
			JobRunID:       result.JobRun.ID,
			CumulativeFees: input.CumulativeFees,
			TakenAt:        input.TakenAt,
		}
		if err := tx.Create(&result.Snapshot).Error; err != nil {
			return fmt.Errorf("failed to create fee snapshot: %w", err)
		}

		if len(input.Allocations) == 0 {
			return nil
		}

		jobRunID := result.JobRun.ID
		entries := make([]schema.LedgerEntry, len(input.Allocations))
		for i, allocation := range input.Allocations {
			entries[i] = schema.LedgerEntry{
				AssetID:         input.AssetID,
				BeneficiaryKind: allocation.Kind,
				BeneficiaryID:   allocation.Identity,
				Amount:          allocation.Amount,
				EventKind:       domain.EventKindAccrual,
				OccurredAt:      input.TakenAt,
				JobRunID:        &jobRunID,
				VersionID:       input.VersionID,
			}
		}

		// 9 columns per entry
		batchSize := calculateSafeBatchSize(len(entries), 9)
		if err := tx.CreateInBatches(&entries, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create accrual entries: %w", err)
		}
		result.Entries = entries

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// =============================================================================
// Ledger
// =============================================================================

// AppendLedgerEntry appends a single entry to the ledger
func (s *pgStore) AppendLedgerEntry(ctx context.Context, input AppendLedgerEntryInput) (*schema.LedgerEntry, error) {
	if !input.BeneficiaryKind.Valid() {
		return nil, domain.NewValidationError("beneficiary_kind", fmt.Sprintf("unknown beneficiary kind %q", input.BeneficiaryKind))
	}
	if !input.EventKind.ValidAmount(input.Amount) {
		return nil, domain.NewValidationError("amount",
			fmt.Sprintf("amount %d does not match the sign rule of %s", input.Amount, input.EventKind))
	}

	entry := schema.LedgerEntry{
		AssetID:         input.AssetID,
		BeneficiaryKind: input.BeneficiaryKind,
		BeneficiaryID:   input.BeneficiaryID,
		Amount:          input.Amount,
		EventKind:       input.EventKind,
		OccurredAt:      input.OccurredAt,
		JobRunID:        input.JobRunID,
		TransferRef:     input.TransferRef,
		VersionID:       input.VersionID,
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		if isUniqueViolation(err) && input.TransferRef != nil {
			return nil, &domain.ConflictError{
				Entity: "ledger_entry",
				ID:     *input.TransferRef,
				Reason: "transfer is already recorded",
			}
		}
		if isCheckViolation(err) {
			return nil, domain.NewValidationError("ledger_entry", err.Error())
		}
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	return &entry, nil
}

const balanceColumns = `
	beneficiary_kind,
	beneficiary_id,
	COALESCE(SUM(amount) FILTER (WHERE event_kind = 'ACCRUAL'), 0)::bigint AS accrued,
	COALESCE(-SUM(amount) FILTER (WHERE event_kind <> 'ACCRUAL'), 0)::bigint AS paid,
	COALESCE(SUM(amount), 0)::bigint AS balance`

// GetBeneficiaryBalance aggregates the entries of one beneficiary
func (s *pgStore) GetBeneficiaryBalance(ctx context.Context, assetID string, kind domain.BeneficiaryKind, beneficiaryID string) (*BeneficiaryBalance, error) {
	var balances []BeneficiaryBalance
	err := s.primary(ctx).
		Raw(`SELECT `+balanceColumns+`
			FROM ledger_entries
			WHERE asset_id = ? AND beneficiary_kind = ? AND beneficiary_id = ?
			GROUP BY beneficiary_kind, beneficiary_id`, assetID, kind, beneficiaryID).
		Scan(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary balance: %w", err)
	}

	if len(balances) == 0 {
		return &BeneficiaryBalance{BeneficiaryKind: kind, BeneficiaryID: beneficiaryID}, nil
	}

	return &balances[0], nil
}

// GetBeneficiaryBalances aggregates the entries of every beneficiary of an asset
func (s *pgStore) GetBeneficiaryBalances(ctx context.Context, assetID string) ([]BeneficiaryBalance, error) {
	var balances []BeneficiaryBalance
	err := s.primary(ctx).
		Raw(`SELECT `+balanceColumns+`
			FROM ledger_entries
			WHERE asset_id = ?
			GROUP BY beneficiary_kind, beneficiary_id
			ORDER BY beneficiary_kind, beneficiary_id`, assetID).
		Scan(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary balances: %w", err)
	}

	return balances, nil
}

type assetBalanceRow struct {
	AssetID string
	BeneficiaryBalance
}

type assetLifetimeRow struct {
	AssetID        string
	CumulativeFees int64
}

// GetReconcileSnapshots reads ledger totals and lifetime fees inside one repeatable read,
// read only transaction so every asset is observed at the same instant
func (s *pgStore) GetReconcileSnapshots(ctx context.Context, assetIDs []string) ([]ReconcileSnapshot, error) {
	var snapshots []ReconcileSnapshot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Unregistered ids are dropped so callers can report them as not found
		query := tx.Model(&schema.Asset{})
		if len(assetIDs) > 0 {
			query = query.Where("id IN ?", assetIDs)
		}
		var ids []string
		if err := query.Order("created_at ASC, id ASC").Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to list assets: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		var balanceRows []assetBalanceRow
		err := tx.Raw(`SELECT asset_id, `+balanceColumns+`
			FROM ledger_entries
			WHERE asset_id IN ?
			GROUP BY asset_id, beneficiary_kind, beneficiary_id
			ORDER BY asset_id, beneficiary_kind, beneficiary_id`, ids).
			Scan(&balanceRows).Error
		if err != nil {
			return fmt.Errorf("failed to aggregate ledger entries: %w", err)
		}

		var lifetimeRows []assetLifetimeRow
		err = tx.Raw(`SELECT DISTINCT ON (asset_id) asset_id, cumulative_fees
			FROM fee_snapshots
			WHERE asset_id IN ?
			ORDER BY asset_id, taken_at DESC, id DESC`, ids).
			Scan(&lifetimeRows).Error
		if err != nil {
			return fmt.Errorf("failed to get latest fee snapshots: %w", err)
		}

		byAsset := make(map[string]*ReconcileSnapshot, len(ids))
		snapshots = make([]ReconcileSnapshot, len(ids))
		for i, id := range ids {
			snapshots[i] = ReconcileSnapshot{AssetID: id}
			byAsset[id] = &snapshots[i]
		}
		for _, row := range lifetimeRows {
			if snapshot, ok := byAsset[row.AssetID]; ok {
				snapshot.LifetimeTotal = row.CumulativeFees
				snapshot.HasSnapshot = true
			}
		}
		for _, row := range balanceRows {
			if snapshot, ok := byAsset[row.AssetID]; ok {
				snapshot.Balances = append(snapshot.Balances, row.BeneficiaryBalance)
			}
		}

		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}

	return snapshots, nil
}

// =============================================================================
// Read models and audit
// =============================================================================

// UpsertOwnershipView overwrites the ownership view of an asset
func (s *pgStore) UpsertOwnershipView(ctx context.Context, input UpsertOwnershipViewInput) (*schema.OwnershipView, error) {
	view := schema.OwnershipView{
		AssetID:            input.AssetID,
		VersionID:          input.VersionID,
		PlatformBps:        input.PlatformBps,
		PlatformPercentage: input.PlatformPercentage,
		Earners:            datatypes.JSON(input.Earners),
		LifetimeAccrued:    input.LifetimeAccrued,
		LifetimeClaimed:    input.LifetimeClaimed,
		RebuiltAt:          input.RebuiltAt,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asset_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"version_id",
				"platform_bps",
				"platform_percentage",
				"earners",
				"lifetime_accrued",
				"lifetime_claimed",
				"rebuilt_at",
			}),
		}).
		Create(&view).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert ownership view: %w", err)
	}

	return &view, nil
}

// GetOwnershipView retrieves the ownership view of an asset
func (s *pgStore) GetOwnershipView(ctx context.Context, assetID string) (*schema.OwnershipView, error) {
	var view schema.OwnershipView
	err := s.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ownership view: %w", err)
	}

	return &view, nil
}

// CreateChangeHistory appends a change history record, returning the stored record when the version already has one
func (s *pgStore) CreateChangeHistory(ctx context.Context, input CreateChangeHistoryInput) (*schema.ChangeHistory, error) {
	record := schema.ChangeHistory{
		AssetID:      input.AssetID,
		VersionID:    input.VersionID,
		Actor:        input.Actor,
		Reason:       input.Reason,
		LifetimeFees: input.LifetimeFees,
		ChangedAt:    input.ChangedAt,
		Meta:         datatypes.JSON(input.Meta),
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "version_id"}},
			DoNothing: true,
		}).
		Create(&record)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create change history: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return &record, nil
	}

	logger.InfoCtx(ctx, "Change history already recorded for version",
		zap.String("assetID", input.AssetID),
		zap.Uint64("versionID", input.VersionID))

	var existing schema.ChangeHistory
	if err := s.primary(ctx).Where("version_id = ?", input.VersionID).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load change history: %w", err)
	}

	return &existing, nil
}

// ListChangeHistory lists the change history of an asset, newest first
func (s *pgStore) ListChangeHistory(ctx context.Context, assetID string, limit int, offset uint64) ([]schema.ChangeHistory, uint64, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&schema.ChangeHistory{}).
		Where("asset_id = ?", assetID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count change history: %w", err)
	}

	var records []schema.ChangeHistory
	err = s.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("changed_at DESC, id DESC").
		Limit(limit).
		Offset(int(offset)). //nolint:gosec,G115
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list change history: %w", err)
	}

	return records, uint64(total), nil //nolint:gosec,G115
}

// =============================================================================
// Key-value store
// =============================================================================

// SetKeyValue sets a key-value pair in the key-value store
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}

// GetAllKeyValuesByPrefix retrieves all key-value pairs with a specific prefix
func (s *pgStore) GetAllKeyValuesByPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	var kvs []schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key LIKE ?", prefix+"%").Find(&kvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get key-values by prefix: %w", err)
	}

	result := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		result[kv.Key] = kv.Value
	}

	return result, nil
}
