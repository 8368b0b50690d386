package domain

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func evenSplit(platformBps, earners int) Split {
	remaining := TOTAL_BASIS_POINTS - platformBps
	shares := make([]Share, earners)
	for i := range shares {
		shares[i] = Share{Identity: fmt.Sprintf("E%d", i), Bps: remaining / earners}
	}
	shares[earners-1].Bps += remaining % earners
	return Split{PlatformBps: platformBps, Shares: shares}
}

// TestSplitValidationProperty verifies a split is accepted exactly when it sums to the total.
// Property: Validate(split) == nil <=> platform + Σ shares == 10000 (no negatives, no duplicates)
func TestSplitValidationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("validation accepts exactly the splits summing to 10000 bps", prop.ForAll(
		func(platformBps int, bps []int) bool {
			if len(bps) == 0 {
				return true
			}
			shares := make([]Share, len(bps))
			for i, b := range bps {
				shares[i] = Share{Identity: fmt.Sprintf("E%d", i), Bps: b}
			}
			split := Split{PlatformBps: platformBps, Shares: shares}

			sumsToTotal := platformBps+split.EarnersBps() == TOTAL_BASIS_POINTS
			return (split.Validate() == nil) == sumsToTotal
		},
		gen.IntRange(0, TOTAL_BASIS_POINTS),
		gen.SliceOf(gen.IntRange(0, 3000)),
	))

	properties.Property("evenly distributed splits are always valid", prop.ForAll(
		func(platformBps, earners int) bool {
			return evenSplit(platformBps, earners).Validate() == nil
		},
		gen.IntRange(0, TOTAL_BASIS_POINTS),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

// TestAllocationConservationProperty verifies accruals never create or lose money.
// Property: Σ Allocate(amount) == amount and every allocation is positive
func TestAllocationConservationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("allocations sum to the allocated amount", prop.ForAll(
		func(platformBps, earners int, amount int64) bool {
			split := evenSplit(platformBps, earners)

			var total int64
			for _, a := range split.Allocate(amount, PLATFORM_BENEFICIARY_ID) {
				if a.Amount <= 0 {
					return false
				}
				total += a.Amount
			}
			return total == amount
		},
		gen.IntRange(0, TOTAL_BASIS_POINTS),
		gen.IntRange(1, 20),
		gen.Int64Range(1, 1_000_000_000_000_000),
	))

	properties.TestingRun(t)
}

// TestFingerprintOrderInsensitiveProperty verifies reordering earners never changes the fingerprint.
func TestFingerprintOrderInsensitiveProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("fingerprint ignores earner order", prop.ForAll(
		func(platformBps, earners int) bool {
			split := evenSplit(platformBps, earners)
			reversed := Split{PlatformBps: split.PlatformBps, Shares: make([]Share, len(split.Shares))}
			for i, share := range split.Shares {
				reversed.Shares[len(split.Shares)-1-i] = share
			}

			a, errA := split.Fingerprint()
			b, errB := reversed.Fingerprint()
			return errA == nil && errB == nil && a == b && split.Equal(reversed)
		},
		gen.IntRange(0, TOTAL_BASIS_POINTS),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
