package accrual_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/feral-file/ff-royalty-ledger/internal/accrual"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
)

func splitOf(platformBps, earners int) domain.Split {
	remaining := domain.TOTAL_BASIS_POINTS - platformBps
	shares := make([]domain.Share, earners)
	for i := range shares {
		shares[i] = domain.Share{Identity: fmt.Sprintf("E%d", i), Bps: remaining / earners}
	}
	shares[earners-1].Bps += remaining % earners
	return domain.Split{PlatformBps: platformBps, Shares: shares}
}

// TestLedgerMatchesLifetimeProperty verifies that ingesting any monotonic sequence of
// lifetime totals accrues exactly the final total, with no balance ever negative.
func TestLedgerMatchesLifetimeProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("accruals over a run of snapshots sum to the last total", prop.ForAll(
		func(platformBps, earners int, increments []int64) bool {
			split := splitOf(platformBps, earners)
			balances := map[string]int64{}

			var previous, accrued int64
			for _, increment := range increments {
				total := previous + increment
				allocations, err := accrual.Plan(previous, total, split)
				if err != nil {
					return false
				}
				for _, a := range allocations {
					balances[a.Identity] += a.Amount
					accrued += a.Amount
				}
				previous = total
			}

			for _, balance := range balances {
				if balance < 0 {
					return false
				}
			}
			return accrued == previous
		},
		gen.IntRange(0, domain.TOTAL_BASIS_POINTS),
		gen.IntRange(1, 10),
		gen.SliceOf(gen.Int64Range(0, 1_000_000_000_000)),
	))

	properties.Property("a shrinking total is always rejected", prop.ForAll(
		func(previous, drop int64) bool {
			_, err := accrual.Plan(previous, previous-drop, splitOf(1000, 1))
			return err != nil
		},
		gen.Int64Range(1, 1_000_000_000),
		gen.Int64Range(1, 1_000_000_000),
	))

	properties.TestingRun(t)
}
