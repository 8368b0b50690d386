package domain

const (
	// Split constants
	TOTAL_BASIS_POINTS = 10000

	// Currency constants
	LAMPORTS_PER_SOL = 1_000_000_000

	// PLATFORM_BENEFICIARY_ID is the beneficiary id used for platform ledger entries
	PLATFORM_BENEFICIARY_ID = "platform"

	// Lock key prefix for per-asset mutual exclusion
	ASSET_LOCK_PREFIX = "royalty:lock:asset:"

	// Key-value store key prefix for the last reconciliation outcome of an asset
	RECONCILE_STATUS_KEY_PREFIX = "reconcile:last:"
)
