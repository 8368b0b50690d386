package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func testTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// buildTestAsset creates a test asset input
func buildTestAsset(id string) CreateAssetInput {
	return CreateAssetInput{
		ID:     id,
		Name:   "Token " + id,
		Symbol: "TKN",
	}
}

// buildTestAgreement creates an agreement input with a platform share and equal earner shares
func buildTestAgreement(assetID string, platformBps int, earners ...string) OpenAgreementInput {
	remaining := domain.TOTAL_BASIS_POINTS - platformBps
	shares := make([]domain.Share, len(earners))
	for i, earner := range earners {
		shares[i] = domain.Share{Identity: earner, Bps: remaining / len(earners)}
	}
	if len(shares) > 0 {
		shares[len(shares)-1].Bps += remaining % len(earners)
	}

	split := domain.Split{PlatformBps: platformBps, Shares: shares}
	hash, _ := split.Fingerprint()

	return OpenAgreementInput{
		AssetID:       assetID,
		PlatformBps:   platformBps,
		Shares:        shares,
		SplitHash:     hash,
		EffectiveFrom: testTime(),
		CreatedBy:     "admin",
	}
}

// buildTestAccrual creates a fee accrual input that splits the delta with the given agreement
func buildTestAccrual(assetID string, cumulative, delta int64, agreement OpenAgreementInput, versionID uint64) RecordFeeAccrualInput {
	split := domain.Split{PlatformBps: agreement.PlatformBps, Shares: agreement.Shares}
	now := testTime()
	return RecordFeeAccrualInput{
		AssetID:        assetID,
		CumulativeFees: cumulative,
		StartedAt:      now,
		TakenAt:        now,
		VersionID:      &versionID,
		Allocations:    split.Allocate(delta, domain.PLATFORM_BENEFICIARY_ID),
	}
}

func mustCreateAsset(t *testing.T, store Store, id string) {
	_, err := store.CreateAsset(context.Background(), buildTestAsset(id))
	require.NoError(t, err)
}

// =============================================================================
// Tests
// =============================================================================

func testAssets(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		asset, err := store.CreateAsset(ctx, buildTestAsset("mint-assets-1"))
		require.NoError(t, err)
		assert.Equal(t, "mint-assets-1", asset.ID)
		assert.Equal(t, "TKN", asset.Symbol)

		got, err := store.GetAsset(ctx, "mint-assets-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Token mint-assets-1", got.Name)
	})

	t.Run("create is idempotent", func(t *testing.T) {
		_, err := store.CreateAsset(ctx, CreateAssetInput{ID: "mint-assets-1", Name: "Renamed", Symbol: "NEW"})
		require.NoError(t, err)

		got, err := store.GetAsset(ctx, "mint-assets-1")
		require.NoError(t, err)
		assert.Equal(t, "Token mint-assets-1", got.Name)
	})

	t.Run("missing asset", func(t *testing.T) {
		got, err := store.GetAsset(ctx, "mint-missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list ids", func(t *testing.T) {
		mustCreateAsset(t, store, "mint-assets-2")

		ids, err := store.ListAssetIDs(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, "mint-assets-1")
		assert.Contains(t, ids, "mint-assets-2")
	})
}

func testAgreementVersions(t *testing.T, store Store) {
	ctx := context.Background()
	assetID := "mint-agreement"
	mustCreateAsset(t, store, assetID)

	var first uint64

	t.Run("no current agreement", func(t *testing.T) {
		current, err := store.GetCurrentAgreement(ctx, assetID)
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("open first version", func(t *testing.T) {
		input := buildTestAgreement(assetID, 1000, "E2", "E1")
		version, err := store.OpenAgreementVersion(ctx, input)
		require.NoError(t, err)
		require.NotZero(t, version.ID)
		require.Len(t, version.Shares, 2)
		first = version.ID

		current, err := store.GetCurrentAgreement(ctx, assetID)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, first, current.ID)
		assert.Nil(t, current.EffectiveTo)
		assert.Equal(t, 1000, current.PlatformBps)
		assert.Equal(t, input.SplitHash, current.SplitHash)
		// request order is preserved
		require.Len(t, current.Shares, 2)
		assert.Equal(t, "E2", current.Shares[0].EarnerIdentity)
		assert.Equal(t, "E1", current.Shares[1].EarnerIdentity)
		assert.Equal(t, 9000, current.Shares[0].Bps+current.Shares[1].Bps)
	})

	t.Run("second open version is rejected", func(t *testing.T) {
		_, err := store.OpenAgreementVersion(ctx, buildTestAgreement(assetID, 2000, "E1"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("rotate closes previous and opens next", func(t *testing.T) {
		next := buildTestAgreement(assetID, 500, "E1", "E2", "E3")
		version, err := store.RotateAgreement(ctx, RotateAgreementInput{
			PreviousVersionID: &first,
			Next:              next,
		})
		require.NoError(t, err)
		assert.Greater(t, version.ID, first)

		previous, err := store.GetAgreementVersion(ctx, first)
		require.NoError(t, err)
		require.NotNil(t, previous.EffectiveTo)
		assert.True(t, previous.EffectiveTo.Equal(next.EffectiveFrom))

		current, err := store.GetCurrentAgreement(ctx, assetID)
		require.NoError(t, err)
		assert.Equal(t, version.ID, current.ID)
		assert.Len(t, current.Shares, 3)

		versions, err := store.ListAgreementVersions(ctx, assetID)
		require.NoError(t, err)
		require.Len(t, versions, 2)
		assert.Equal(t, version.ID, versions[0].ID)
	})

	t.Run("rotate with stale previous version conflicts", func(t *testing.T) {
		_, err := store.RotateAgreement(ctx, RotateAgreementInput{
			PreviousVersionID: &first,
			Next:              buildTestAgreement(assetID, 3000, "E9"),
		})
		require.Error(t, err)

		var conflict *domain.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, fmt.Sprintf("%d", first), conflict.ID)

		// the failed rotation must not leave a version behind
		versions, err := store.ListAgreementVersions(ctx, assetID)
		require.NoError(t, err)
		assert.Len(t, versions, 2)
	})

	t.Run("rotate without previous while one is current conflicts", func(t *testing.T) {
		_, err := store.RotateAgreement(ctx, RotateAgreementInput{
			Next: buildTestAgreement(assetID, 3000, "E9"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("close closed version conflicts", func(t *testing.T) {
		err := store.CloseAgreementVersion(ctx, first, testTime())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("close unknown version", func(t *testing.T) {
		err := store.CloseAgreementVersion(ctx, 987654321, testTime())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAgreementNotFound))
	})

	t.Run("close current version", func(t *testing.T) {
		current, err := store.GetCurrentAgreement(ctx, assetID)
		require.NoError(t, err)

		require.NoError(t, store.CloseAgreementVersion(ctx, current.ID, testTime()))

		current, err = store.GetCurrentAgreement(ctx, assetID)
		require.NoError(t, err)
		assert.Nil(t, current)
	})
}

func testFeeSnapshots(t *testing.T, store Store) {
	ctx := context.Background()
	assetID := "mint-snapshots"
	mustCreateAsset(t, store, assetID)

	t.Run("no snapshot", func(t *testing.T) {
		snapshot, err := store.GetLatestFeeSnapshot(ctx, assetID)
		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("boundary snapshot", func(t *testing.T) {
		takenAt := testTime()
		snapshot, err := store.CreateBoundarySnapshot(ctx, CreateBoundarySnapshotInput{
			AssetID:        assetID,
			CumulativeFees: 0,
			TakenAt:        takenAt,
		})
		require.NoError(t, err)
		assert.True(t, snapshot.IsBoundary)
		assert.NotEmpty(t, snapshot.JobRunID)

		latest, err := store.GetLatestFeeSnapshot(ctx, assetID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, snapshot.ID, latest.ID)
		assert.Equal(t, int64(0), latest.CumulativeFees)
	})

	t.Run("later snapshot wins", func(t *testing.T) {
		agreement := buildTestAgreement(assetID, 1000, "E1")
		version, err := store.OpenAgreementVersion(ctx, agreement)
		require.NoError(t, err)

		input := buildTestAccrual(assetID, 5000, 5000, agreement, version.ID)
		input.TakenAt = input.TakenAt.Add(time.Second)
		result, err := store.RecordFeeAccrual(ctx, input)
		require.NoError(t, err)

		latest, err := store.GetLatestFeeSnapshot(ctx, assetID)
		require.NoError(t, err)
		assert.Equal(t, result.Snapshot.ID, latest.ID)
		assert.Equal(t, int64(5000), latest.CumulativeFees)
		assert.False(t, latest.IsBoundary)
	})

	t.Run("failed job run", func(t *testing.T) {
		now := testTime()
		jobRun, err := store.CreateJobRun(ctx, CreateJobRunInput{
			AssetID:    assetID,
			Kind:       domain.JobKindFeeSnapshot,
			Status:     domain.JobStatusFailed,
			StartedAt:  now,
			FinishedAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.JobStatusFailed, jobRun.Status)
		require.NotNil(t, jobRun.FinishedAt)
	})
}

func testRecordFeeAccrual(t *testing.T, store Store) {
	ctx := context.Background()
	assetID := "mint-accrual"
	mustCreateAsset(t, store, assetID)

	agreement := buildTestAgreement(assetID, 1000, "E1", "E2")
	version, err := store.OpenAgreementVersion(ctx, agreement)
	require.NoError(t, err)

	t.Run("entries sum to delta", func(t *testing.T) {
		result, err := store.RecordFeeAccrual(ctx, buildTestAccrual(assetID, 1001, 1001, agreement, version.ID))
		require.NoError(t, err)
		require.Len(t, result.Entries, 3)

		var total int64
		for _, entry := range result.Entries {
			assert.Equal(t, domain.EventKindAccrual, entry.EventKind)
			require.NotNil(t, entry.JobRunID)
			assert.Equal(t, result.JobRun.ID, *entry.JobRunID)
			require.NotNil(t, entry.VersionID)
			assert.Equal(t, version.ID, *entry.VersionID)
			total += entry.Amount
		}
		assert.Equal(t, int64(1001), total)
		assert.Equal(t, domain.JobKindFeeSnapshot, result.JobRun.Kind)
	})

	t.Run("snapshot without delta", func(t *testing.T) {
		input := buildTestAccrual(assetID, 1001, 0, agreement, version.ID)
		result, err := store.RecordFeeAccrual(ctx, input)
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Equal(t, int64(1001), result.Snapshot.CumulativeFees)
	})

	t.Run("non positive allocation is rejected", func(t *testing.T) {
		input := buildTestAccrual(assetID, 2000, 0, agreement, version.ID)
		input.Allocations = []domain.Allocation{{Kind: domain.BeneficiaryEarner, Identity: "E1", Amount: -5}}
		_, err := store.RecordFeeAccrual(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("balances", func(t *testing.T) {
		balances, err := store.GetBeneficiaryBalances(ctx, assetID)
		require.NoError(t, err)
		require.Len(t, balances, 3)

		byID := make(map[string]BeneficiaryBalance)
		for _, b := range balances {
			byID[b.BeneficiaryID] = b
		}
		// 1001 split 10/45/45: E1 450, E2 450, platform 100 + 1 remainder
		assert.Equal(t, int64(450), byID["E1"].Accrued)
		assert.Equal(t, int64(450), byID["E2"].Balance)
		assert.Equal(t, int64(101), byID[domain.PLATFORM_BENEFICIARY_ID].Accrued)
		assert.Equal(t, domain.BeneficiaryPlatform, byID[domain.PLATFORM_BENEFICIARY_ID].BeneficiaryKind)
	})
}

func testLedgerEntries(t *testing.T, store Store) {
	ctx := context.Background()
	assetID := "mint-ledger"
	mustCreateAsset(t, store, assetID)

	agreement := buildTestAgreement(assetID, 1000, "E1")
	version, err := store.OpenAgreementVersion(ctx, agreement)
	require.NoError(t, err)
	_, err = store.RecordFeeAccrual(ctx, buildTestAccrual(assetID, 10000, 10000, agreement, version.ID))
	require.NoError(t, err)

	t.Run("sign rules", func(t *testing.T) {
		_, err := store.AppendLedgerEntry(ctx, AppendLedgerEntryInput{
			AssetID:         assetID,
			BeneficiaryKind: domain.BeneficiaryEarner,
			BeneficiaryID:   "E1",
			Amount:          100,
			EventKind:       domain.EventKindClaim,
			OccurredAt:      testTime(),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		_, err = store.AppendLedgerEntry(ctx, AppendLedgerEntryInput{
			AssetID:         assetID,
			BeneficiaryKind: "TREASURY",
			BeneficiaryID:   "E1",
			Amount:          -100,
			EventKind:       domain.EventKindClaim,
			OccurredAt:      testTime(),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("claim reduces balance", func(t *testing.T) {
		ref := "sig-claim-1"
		entry, err := store.AppendLedgerEntry(ctx, AppendLedgerEntryInput{
			AssetID:         assetID,
			BeneficiaryKind: domain.BeneficiaryEarner,
			BeneficiaryID:   "E1",
			Amount:          -9000,
			EventKind:       domain.EventKindClaim,
			OccurredAt:      testTime(),
			TransferRef:     &ref,
		})
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)

		balance, err := store.GetBeneficiaryBalance(ctx, assetID, domain.BeneficiaryEarner, "E1")
		require.NoError(t, err)
		assert.Equal(t, int64(9000), balance.Accrued)
		assert.Equal(t, int64(9000), balance.Paid)
		assert.Equal(t, int64(0), balance.Balance)
	})

	t.Run("platform withdrawal", func(t *testing.T) {
		ref := "sig-withdraw-1"
		_, err := store.AppendLedgerEntry(ctx, AppendLedgerEntryInput{
			AssetID:         assetID,
			BeneficiaryKind: domain.BeneficiaryPlatform,
			BeneficiaryID:   domain.PLATFORM_BENEFICIARY_ID,
			Amount:          -400,
			EventKind:       domain.EventKindPlatformWithdrawal,
			OccurredAt:      testTime(),
			TransferRef:     &ref,
		})
		require.NoError(t, err)

		balance, err := store.GetBeneficiaryBalance(ctx, assetID, domain.BeneficiaryPlatform, domain.PLATFORM_BENEFICIARY_ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), balance.Accrued)
		assert.Equal(t, int64(600), balance.Balance)
	})

	t.Run("unknown beneficiary has zero balance", func(t *testing.T) {
		balance, err := store.GetBeneficiaryBalance(ctx, assetID, domain.BeneficiaryEarner, "E404")
		require.NoError(t, err)
		assert.Equal(t, "E404", balance.BeneficiaryID)
		assert.Zero(t, balance.Balance)
	})

	// Must run last: the unique violation aborts the surrounding test transaction
	t.Run("duplicate transfer reference conflicts", func(t *testing.T) {
		ref := "sig-claim-1"
		_, err := store.AppendLedgerEntry(ctx, AppendLedgerEntryInput{
			AssetID:         assetID,
			BeneficiaryKind: domain.BeneficiaryEarner,
			BeneficiaryID:   "E1",
			Amount:          -1,
			EventKind:       domain.EventKindClaim,
			OccurredAt:      testTime(),
			TransferRef:     &ref,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})
}

func testReconcileSnapshots(t *testing.T, store Store) {
	ctx := context.Background()
	mustCreateAsset(t, store, "mint-reconcile-a")
	mustCreateAsset(t, store, "mint-reconcile-b")

	agreement := buildTestAgreement("mint-reconcile-a", 2000, "E1", "E2")
	version, err := store.OpenAgreementVersion(ctx, agreement)
	require.NoError(t, err)
	_, err = store.RecordFeeAccrual(ctx, buildTestAccrual("mint-reconcile-a", 5000, 5000, agreement, version.ID))
	require.NoError(t, err)

	t.Run("selected assets", func(t *testing.T) {
		snapshots, err := store.GetReconcileSnapshots(ctx, []string{"mint-reconcile-a", "mint-reconcile-b"})
		require.NoError(t, err)
		require.Len(t, snapshots, 2)

		a := snapshots[0]
		assert.Equal(t, "mint-reconcile-a", a.AssetID)
		assert.True(t, a.HasSnapshot)
		assert.Equal(t, int64(5000), a.LifetimeTotal)
		require.Len(t, a.Balances, 3)

		var accrued int64
		for _, b := range a.Balances {
			accrued += b.Accrued
		}
		assert.Equal(t, int64(5000), accrued)

		b := snapshots[1]
		assert.False(t, b.HasSnapshot)
		assert.Zero(t, b.LifetimeTotal)
		assert.Empty(t, b.Balances)
	})

	t.Run("unregistered asset is omitted", func(t *testing.T) {
		snapshots, err := store.GetReconcileSnapshots(ctx, []string{"mint-unregistered"})
		require.NoError(t, err)
		assert.Empty(t, snapshots)

		snapshots, err = store.GetReconcileSnapshots(ctx, []string{"mint-unregistered", "mint-reconcile-a"})
		require.NoError(t, err)
		require.Len(t, snapshots, 1)
		assert.Equal(t, "mint-reconcile-a", snapshots[0].AssetID)
	})

	t.Run("all assets", func(t *testing.T) {
		snapshots, err := store.GetReconcileSnapshots(ctx, nil)
		require.NoError(t, err)

		ids := make([]string, len(snapshots))
		for i, s := range snapshots {
			ids[i] = s.AssetID
		}
		assert.Contains(t, ids, "mint-reconcile-a")
		assert.Contains(t, ids, "mint-reconcile-b")
	})
}

func testOwnershipView(t *testing.T, store Store) {
	ctx := context.Background()
	assetID := "mint-view"
	mustCreateAsset(t, store, assetID)

	earners, err := json.Marshal([]map[string]any{{"identity": "E1", "bps": 9000, "percentage": 90.0}})
	require.NoError(t, err)

	t.Run("missing view", func(t *testing.T) {
		view, err := store.GetOwnershipView(ctx, assetID)
		require.NoError(t, err)
		assert.Nil(t, view)
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		_, err := store.UpsertOwnershipView(ctx, UpsertOwnershipViewInput{
			AssetID:            assetID,
			VersionID:          1,
			PlatformBps:        1000,
			PlatformPercentage: 10,
			Earners:            earners,
			RebuiltAt:          testTime(),
		})
		require.NoError(t, err)

		_, err = store.UpsertOwnershipView(ctx, UpsertOwnershipViewInput{
			AssetID:            assetID,
			VersionID:          2,
			PlatformBps:        2500,
			PlatformPercentage: 25,
			Earners:            earners,
			LifetimeAccrued:    700,
			LifetimeClaimed:    300,
			RebuiltAt:          testTime(),
		})
		require.NoError(t, err)

		view, err := store.GetOwnershipView(ctx, assetID)
		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, uint64(2), view.VersionID)
		assert.Equal(t, 2500, view.PlatformBps)
		assert.InDelta(t, 25.0, view.PlatformPercentage, 0.001)
		assert.Equal(t, int64(700), view.LifetimeAccrued)
		assert.JSONEq(t, string(earners), string(view.Earners))
	})
}

func testChangeHistory(t *testing.T, store Store) {
	ctx := context.Background()
	assetID := "mint-history"
	mustCreateAsset(t, store, assetID)

	version, err := store.OpenAgreementVersion(ctx, buildTestAgreement(assetID, 1000, "E1"))
	require.NoError(t, err)

	input := CreateChangeHistoryInput{
		AssetID:      assetID,
		VersionID:    version.ID,
		Actor:        "admin",
		Reason:       "launch",
		LifetimeFees: 0,
		ChangedAt:    testTime(),
		Meta:         []byte(`{"next":{"platform_bps":1000}}`),
	}

	t.Run("create", func(t *testing.T) {
		record, err := store.CreateChangeHistory(ctx, input)
		require.NoError(t, err)
		assert.NotZero(t, record.ID)
		assert.Equal(t, "launch", record.Reason)
	})

	t.Run("retried write is idempotent", func(t *testing.T) {
		retry := input
		retry.Reason = "retry"
		record, err := store.CreateChangeHistory(ctx, retry)
		require.NoError(t, err)
		assert.Equal(t, "launch", record.Reason)

		records, total, err := store.ListChangeHistory(ctx, assetID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, records, 1)
		assert.Equal(t, version.ID, records[0].VersionID)
	})
}

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+"mint-a", `{"ok":true}`))

		value, err := store.GetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+"mint-a")
		require.NoError(t, err)
		assert.Equal(t, `{"ok":true}`, value)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+"mint-a", `{"ok":false}`))

		value, err := store.GetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+"mint-a")
		require.NoError(t, err)
		assert.Equal(t, `{"ok":false}`, value)
	})

	t.Run("missing key", func(t *testing.T) {
		value, err := store.GetKeyValue(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, value)
	})

	t.Run("prefix", func(t *testing.T) {
		require.NoError(t, store.SetKeyValue(ctx, domain.RECONCILE_STATUS_KEY_PREFIX+"mint-b", `{"ok":true}`))
		require.NoError(t, store.SetKeyValue(ctx, "other", "x"))

		values, err := store.GetAllKeyValuesByPrefix(ctx, domain.RECONCILE_STATUS_KEY_PREFIX)
		require.NoError(t, err)
		assert.Len(t, values, 2)
	})
}

// RunStoreTests runs all store tests against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Assets", testAssets},
		{"AgreementVersions", testAgreementVersions},
		{"FeeSnapshots", testFeeSnapshots},
		{"RecordFeeAccrual", testRecordFeeAccrual},
		{"LedgerEntries", testLedgerEntries},
		{"ReconcileSnapshots", testReconcileSnapshots},
		{"OwnershipView", testOwnershipView},
		{"ChangeHistory", testChangeHistory},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
