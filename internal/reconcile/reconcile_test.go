package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/reconcile"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testReconcileMocks struct {
	store    *mocks.MockStore
	clock    *mocks.MockClock
	verifier reconcile.Verifier
}

func setupTestReconcile(t *testing.T) *testReconcileMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &testReconcileMocks{
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	m.verifier = reconcile.NewVerifier(m.store, m.clock)
	return m
}

func platform(accrued, paid int64) store.BeneficiaryBalance {
	return store.BeneficiaryBalance{
		BeneficiaryKind: domain.BeneficiaryPlatform,
		BeneficiaryID:   domain.PLATFORM_BENEFICIARY_ID,
		Accrued:         accrued,
		Paid:            paid,
		Balance:         accrued - paid,
	}
}

func earner(id string, accrued, paid int64) store.BeneficiaryBalance {
	return store.BeneficiaryBalance{
		BeneficiaryKind: domain.BeneficiaryEarner,
		BeneficiaryID:   id,
		Accrued:         accrued,
		Paid:            paid,
		Balance:         accrued - paid,
	}
}

func findCheck(t *testing.T, report reconcile.AssetReport, name string) reconcile.CheckResult {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %s not found", name)
	return reconcile.CheckResult{}
}

func TestReconcile_AccrualsMatchLifetime(t *testing.T) {
	m := setupTestReconcile(t)

	m.store.EXPECT().
		GetReconcileSnapshots(gomock.Any(), []string{"mint-1"}).
		Return([]store.ReconcileSnapshot{{
			AssetID:       "mint-1",
			LifetimeTotal: 1000,
			HasSnapshot:   true,
			Balances:      []store.BeneficiaryBalance{platform(700, 0), earner("E1", 300, 0)},
		}}, nil)

	report, err := m.verifier.Reconcile(context.Background(), "mint-1")
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, int64(700), report.Totals.PlatformAccrual)
	assert.Equal(t, int64(300), report.Totals.EarnersAccrual)
	assert.Len(t, report.Checks, 3)
	for _, c := range report.Checks {
		assert.True(t, c.Passed, c.Name)
	}
}

func TestReconcile_ReportsGap(t *testing.T) {
	m := setupTestReconcile(t)

	m.store.EXPECT().
		GetReconcileSnapshots(gomock.Any(), []string{"mint-1"}).
		Return([]store.ReconcileSnapshot{{
			AssetID:       "mint-1",
			LifetimeTotal: 1000,
			HasSnapshot:   true,
			Balances:      []store.BeneficiaryBalance{platform(650, 0), earner("E1", 300, 0)},
		}}, nil)

	report, err := m.verifier.Reconcile(context.Background(), "mint-1")
	require.NoError(t, err)
	assert.False(t, report.Passed)

	check := findCheck(t, *report, reconcile.InvariantAccrualEqualsLifetime)
	assert.False(t, check.Passed)
	assert.Equal(t, int64(50), check.Gap)
	assert.Contains(t, check.Detail, "gap 50")

	assert.True(t, findCheck(t, *report, reconcile.InvariantOwedNonNegative).Passed)
	assert.True(t, findCheck(t, *report, reconcile.InvariantTreasuryNonNegative).Passed)
}

func TestReconcile_UnknownAsset(t *testing.T) {
	m := setupTestReconcile(t)

	m.store.EXPECT().GetReconcileSnapshots(gomock.Any(), []string{"missing"}).Return(nil, nil)

	_, err := m.verifier.Reconcile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestReconcileAll(t *testing.T) {
	m := setupTestReconcile(t)

	m.store.EXPECT().
		GetReconcileSnapshots(gomock.Any(), gomock.Nil()).
		Return([]store.ReconcileSnapshot{
			{AssetID: "mint-b", LifetimeTotal: 100, HasSnapshot: true, Balances: []store.BeneficiaryBalance{platform(100, 0)}},
			{AssetID: "mint-a"},
		}, nil)

	report, err := m.verifier.ReconcileAll(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, report.HasFailures)
	assert.Equal(t, testNow, report.GeneratedAt)
	require.Len(t, report.Assets, 2)
	assert.Equal(t, "mint-a", report.Assets[0].AssetID)
	assert.False(t, report.Assets[0].HasSnapshot)
	assert.True(t, report.Assets[0].Passed)
}

func TestReconcileAll_StoreError(t *testing.T) {
	m := setupTestReconcile(t)

	m.store.EXPECT().GetReconcileSnapshots(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := m.verifier.ReconcileAll(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestCheck_NegativeBalances(t *testing.T) {
	report := reconcile.Check(store.ReconcileSnapshot{
		AssetID:       "mint-1",
		LifetimeTotal: 1000,
		Balances: []store.BeneficiaryBalance{
			platform(100, 1000),
			earner("E2", 450, 500),
			earner("E1", 450, 0),
		},
	})

	assert.False(t, report.Passed)
	assert.Equal(t, int64(1500), report.Totals.Payouts)

	owed := findCheck(t, report, reconcile.InvariantOwedNonNegative)
	assert.False(t, owed.Passed)
	require.Len(t, owed.Offenders, 1)
	assert.Equal(t, "E2", owed.Offenders[0].Identity)
	assert.Equal(t, int64(-50), owed.Offenders[0].Owed)

	treasury := findCheck(t, report, reconcile.InvariantTreasuryNonNegative)
	assert.False(t, treasury.Passed)
	assert.Equal(t, int64(500), treasury.Gap)

	assert.False(t, findCheck(t, report, reconcile.InvariantAccrualEqualsLifetime).Passed)
}

func TestCheck_IsDeterministic(t *testing.T) {
	snapshot := store.ReconcileSnapshot{
		AssetID:       "mint-1",
		LifetimeTotal: 900,
		Balances:      []store.BeneficiaryBalance{earner("E2", 10, 20), earner("E1", 5, 30), platform(100, 0)},
	}
	reversed := store.ReconcileSnapshot{
		AssetID:       "mint-1",
		LifetimeTotal: 900,
		Balances:      []store.BeneficiaryBalance{platform(100, 0), earner("E1", 5, 30), earner("E2", 10, 20)},
	}

	first := reconcile.Check(snapshot)
	assert.Equal(t, first, reconcile.Check(snapshot))
	assert.Equal(t, first, reconcile.Check(reversed))
}
