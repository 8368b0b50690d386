package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
)

// Invariant names
const (
	InvariantAccrualEqualsLifetime = "accrual_equals_lifetime"
	InvariantOwedNonNegative       = "owed_non_negative"
	InvariantTreasuryNonNegative   = "treasury_non_negative"
)

// Totals are the ledger aggregates an asset is checked against
type Totals struct {
	PlatformAccrual     int64 `json:"platform_accrual"`
	EarnersAccrual      int64 `json:"earners_accrual"`
	ClaimedTotal        int64 `json:"claimed_total"`
	PlatformWithdrawals int64 `json:"platform_withdrawals"`
	Payouts             int64 `json:"payouts"`
	LifetimeTotal       int64 `json:"lifetime_total"`
}

// OwedShortfall is an earner whose claims exceed their accruals
type OwedShortfall struct {
	Identity string `json:"identity"`
	Accrued  int64  `json:"accrued"`
	Claimed  int64  `json:"claimed"`
	Owed     int64  `json:"owed"`
}

// CheckResult is the outcome of one invariant
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
	// Gap is lifetime minus accrued for accrual_equals_lifetime, the deficit for treasury_non_negative
	Gap       int64           `json:"gap,omitempty"`
	Offenders []OwedShortfall `json:"offenders,omitempty"`
}

// AssetReport is the reconciliation outcome of a single asset
type AssetReport struct {
	AssetID     string        `json:"asset_id"`
	HasSnapshot bool          `json:"has_snapshot"`
	Totals      Totals        `json:"totals"`
	Checks      []CheckResult `json:"checks"`
	Passed      bool          `json:"passed"`
	// LastSweep is the outcome recorded by the most recent reconcile sweep, nil before the first one
	LastSweep *SweepStatus `json:"last_sweep,omitempty"`
}

// SweepStatus is the reconciliation outcome the sweeper records per asset in the key-value store
// under domain.RECONCILE_STATUS_KEY_PREFIX
type SweepStatus struct {
	Passed       bool      `json:"passed"`
	FailedChecks []string  `json:"failed_checks,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

// Report is the reconciliation outcome of a set of assets
type Report struct {
	Assets      []AssetReport `json:"assets"`
	HasFailures bool          `json:"has_failures"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Verifier checks the ledger of assets against their lifetime fees. It never writes.
//
//go:generate mockgen -source=reconcile.go -destination=../mocks/reconcile.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// Reconcile checks a single asset
	Reconcile(ctx context.Context, assetID string) (*AssetReport, error)
	// ReconcileAll checks the given assets, every asset when the filter is empty
	ReconcileAll(ctx context.Context, assetIDs []string) (*Report, error)
}

type verifier struct {
	store store.Store
	clock adapter.Clock
}

// NewVerifier creates a new reconciliation verifier
func NewVerifier(st store.Store, clock adapter.Clock) Verifier {
	return &verifier{store: st, clock: clock}
}

func (v *verifier) Reconcile(ctx context.Context, assetID string) (*AssetReport, error) {
	report, err := v.ReconcileAll(ctx, []string{assetID})
	if err != nil {
		return nil, err
	}
	if len(report.Assets) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrAssetNotFound, assetID)
	}
	return &report.Assets[0], nil
}

func (v *verifier) ReconcileAll(ctx context.Context, assetIDs []string) (*Report, error) {
	snapshots, err := v.store.GetReconcileSnapshots(ctx, assetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read reconcile snapshots: %w", err)
	}

	report := &Report{
		Assets:      make([]AssetReport, 0, len(snapshots)),
		GeneratedAt: v.clock.Now(),
	}
	for _, snapshot := range snapshots {
		assetReport := Check(snapshot)
		if !assetReport.Passed {
			report.HasFailures = true
			logger.WarnCtx(ctx, "Reconciliation failed",
				zap.String("assetID", assetReport.AssetID),
				zap.Int64("lifetimeTotal", assetReport.Totals.LifetimeTotal),
				zap.Int64("accrued", assetReport.Totals.PlatformAccrual+assetReport.Totals.EarnersAccrual),
			)
		}
		report.Assets = append(report.Assets, assetReport)
	}

	sort.Slice(report.Assets, func(i, j int) bool {
		return report.Assets[i].AssetID < report.Assets[j].AssetID
	})

	return report, nil
}

// Check evaluates the invariants over a consistent read of an asset's ledger.
// It is a pure function of the snapshot.
func Check(snapshot store.ReconcileSnapshot) AssetReport {
	totals := Totals{LifetimeTotal: snapshot.LifetimeTotal}

	balances := make([]store.BeneficiaryBalance, len(snapshot.Balances))
	copy(balances, snapshot.Balances)
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].BeneficiaryKind != balances[j].BeneficiaryKind {
			return balances[i].BeneficiaryKind < balances[j].BeneficiaryKind
		}
		return balances[i].BeneficiaryID < balances[j].BeneficiaryID
	})

	var offenders []OwedShortfall
	for _, b := range balances {
		switch b.BeneficiaryKind {
		case domain.BeneficiaryPlatform:
			totals.PlatformAccrual += b.Accrued
			totals.PlatformWithdrawals += b.Paid
		case domain.BeneficiaryEarner:
			totals.EarnersAccrual += b.Accrued
			totals.ClaimedTotal += b.Paid
			if owed := b.Accrued - b.Paid; owed < 0 {
				offenders = append(offenders, OwedShortfall{
					Identity: b.BeneficiaryID,
					Accrued:  b.Accrued,
					Claimed:  b.Paid,
					Owed:     owed,
				})
			}
		}
	}
	totals.Payouts = totals.ClaimedTotal + totals.PlatformWithdrawals

	accrued := totals.PlatformAccrual + totals.EarnersAccrual

	lifetime := CheckResult{Name: InvariantAccrualEqualsLifetime, Passed: accrued == totals.LifetimeTotal}
	if !lifetime.Passed {
		lifetime.Gap = totals.LifetimeTotal - accrued
		lifetime.Detail = fmt.Sprintf("accrued %d, lifetime total %d, gap %d", accrued, totals.LifetimeTotal, lifetime.Gap)
	}

	owed := CheckResult{Name: InvariantOwedNonNegative, Passed: len(offenders) == 0, Offenders: offenders}
	if !owed.Passed {
		owed.Detail = fmt.Sprintf("%d earner(s) claimed more than accrued", len(offenders))
	}

	treasury := CheckResult{Name: InvariantTreasuryNonNegative, Passed: accrued-totals.Payouts >= 0}
	if !treasury.Passed {
		treasury.Gap = totals.Payouts - accrued
		treasury.Detail = fmt.Sprintf("payouts %d exceed accruals %d", totals.Payouts, accrued)
	}

	return AssetReport{
		AssetID:     snapshot.AssetID,
		HasSnapshot: snapshot.HasSnapshot,
		Totals:      totals,
		Checks:      []CheckResult{lifetime, owed, treasury},
		Passed:      lifetime.Passed && owed.Passed && treasury.Passed,
	}
}
