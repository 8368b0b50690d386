package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gowebpki/jcs"
)

// BeneficiaryKind identifies who a ledger entry is attributed to
type BeneficiaryKind string

const (
	BeneficiaryPlatform BeneficiaryKind = "PLATFORM"
	BeneficiaryEarner   BeneficiaryKind = "EARNER"
)

// Valid reports whether the beneficiary kind is known
func (k BeneficiaryKind) Valid() bool {
	return k == BeneficiaryPlatform || k == BeneficiaryEarner
}

// EventKind represents the type of ledger event
type EventKind string

const (
	EventKindAccrual            EventKind = "ACCRUAL"
	EventKindClaim              EventKind = "CLAIM"
	EventKindPlatformWithdrawal EventKind = "PLATFORM_WITHDRAWAL"
)

// Valid reports whether the event kind is known
func (k EventKind) Valid() bool {
	return k == EventKindAccrual || k == EventKindClaim || k == EventKindPlatformWithdrawal
}

// ValidAmount checks the sign rule of an entry amount for the event kind.
// Accruals are strictly positive, claims and withdrawals strictly negative.
func (k EventKind) ValidAmount(amount int64) bool {
	switch k {
	case EventKindAccrual:
		return amount > 0
	case EventKindClaim, EventKindPlatformWithdrawal:
		return amount < 0
	default:
		return false
	}
}

// JobKind represents the kind of job that produced a fee snapshot
type JobKind string

const (
	JobKindFeeSnapshot JobKind = "FEE_SNAPSHOT"
	JobKindBoundary    JobKind = "BOUNDARY"
)

// JobStatus represents the outcome of a job run
type JobStatus string

const (
	JobStatusSucceeded JobStatus = "SUCCEEDED"
	JobStatusFailed    JobStatus = "FAILED"
)

// Share is a single earner's portion of the fee split, in basis points
type Share struct {
	Identity string `json:"identity"`
	Bps      int    `json:"bps"`
}

// Split is the full division of fees between the platform and the earners
type Split struct {
	PlatformBps int     `json:"platform_bps"`
	Shares      []Share `json:"shares"`
}

// EarnersBps returns the sum of all earner shares
func (s Split) EarnersBps() int {
	total := 0
	for _, share := range s.Shares {
		total += share.Bps
	}
	return total
}

// Validate checks the split invariants: platform bps within range, at least one
// earner, no negative or duplicate shares, and platform + earners == TOTAL_BASIS_POINTS.
func (s Split) Validate() error {
	if s.PlatformBps < 0 || s.PlatformBps > TOTAL_BASIS_POINTS {
		return NewValidationError("platform_fee_bps",
			fmt.Sprintf("platform fee must be between 0 and %d bps", TOTAL_BASIS_POINTS))
	}

	if len(s.Shares) == 0 {
		return NewValidationError("earners", "at least one earner is required")
	}

	seen := make(map[string]struct{}, len(s.Shares))
	for i, share := range s.Shares {
		identity := strings.TrimSpace(share.Identity)
		if identity == "" {
			return NewValidationError(fmt.Sprintf("earners[%d].identity", i), "earner identity is required")
		}
		if share.Bps < 0 {
			return NewValidationError(fmt.Sprintf("earners[%d].bps", i), "earner share cannot be negative")
		}
		if _, ok := seen[identity]; ok {
			return NewValidationError(fmt.Sprintf("earners[%d].identity", i),
				fmt.Sprintf("duplicate earner %s", identity))
		}
		seen[identity] = struct{}{}
	}

	expected := TOTAL_BASIS_POINTS - s.PlatformBps
	actual := s.EarnersBps()
	if actual != expected {
		return &ValidationError{
			Field:    "earners",
			Message:  fmt.Sprintf("earner shares must sum to %d bps, got %d bps", expected, actual),
			Expected: int64(expected),
			Actual:   int64(actual),
		}
	}

	return nil
}

// Normalized returns a copy of the split with trimmed identities, in request order
func (s Split) Normalized() Split {
	shares := make([]Share, len(s.Shares))
	for i, share := range s.Shares {
		shares[i] = Share{Identity: strings.TrimSpace(share.Identity), Bps: share.Bps}
	}
	return Split{PlatformBps: s.PlatformBps, Shares: shares}
}

// Fingerprint returns a stable hash of the split that ignores earner order.
// The shares are sorted by identity and serialized with RFC 8785 canonical JSON.
func (s Split) Fingerprint() (string, error) {
	normalized := s.Normalized()
	sort.Slice(normalized.Shares, func(i, j int) bool {
		return normalized.Shares[i].Identity < normalized.Shares[j].Identity
	})

	raw, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("failed to marshal split: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize split: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Equal reports whether two splits assign the same bps to the same beneficiaries
func (s Split) Equal(other Split) bool {
	if s.PlatformBps != other.PlatformBps || len(s.Shares) != len(other.Shares) {
		return false
	}

	a := make(map[string]int, len(s.Shares))
	for _, share := range s.Shares {
		a[strings.TrimSpace(share.Identity)] = share.Bps
	}
	for _, share := range other.Shares {
		bps, ok := a[strings.TrimSpace(share.Identity)]
		if !ok || bps != share.Bps {
			return false
		}
	}
	return true
}

// Allocation is the portion of an amount attributed to a single beneficiary
type Allocation struct {
	Kind     BeneficiaryKind
	Identity string
	Amount   int64
}

// Allocate splits amount across the platform and the earners by bps.
// Every portion is floored; the rounding remainder goes to the platform so the
// allocations always sum exactly to amount. Zero-value allocations are dropped.
func (s Split) Allocate(amount int64, platformIdentity string) []Allocation {
	if amount <= 0 {
		return nil
	}

	allocations := make([]Allocation, 0, len(s.Shares)+1)
	var distributed int64
	for _, share := range s.Shares {
		portion := bpsOf(amount, share.Bps)
		distributed += portion
		if portion == 0 {
			continue
		}
		allocations = append(allocations, Allocation{
			Kind:     BeneficiaryEarner,
			Identity: share.Identity,
			Amount:   portion,
		})
	}

	if platform := amount - distributed; platform > 0 {
		allocations = append([]Allocation{{
			Kind:     BeneficiaryPlatform,
			Identity: platformIdentity,
			Amount:   platform,
		}}, allocations...)
	}

	return allocations
}

// bpsOf returns floor(amount * bps / TOTAL_BASIS_POINTS) without overflowing int64
func bpsOf(amount int64, bps int) int64 {
	q, r := amount/TOTAL_BASIS_POINTS, amount%TOTAL_BASIS_POINTS
	return q*int64(bps) + r*int64(bps)/TOTAL_BASIS_POINTS
}

// Agreement is a versioned royalty split for an asset.
// EffectiveTo is nil while the version is current.
type Agreement struct {
	VersionID     uint64     `json:"version_id"`
	AssetID       string     `json:"asset_id"`
	Split         Split      `json:"split"`
	SplitHash     string     `json:"split_hash"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	CreatedBy     string     `json:"created_by"`
}

// IsCurrent reports whether the version is still open
func (a *Agreement) IsCurrent() bool {
	return a.EffectiveTo == nil
}

// Percentage converts basis points to a display percentage (bps / 100)
func Percentage(bps int) float64 {
	return float64(bps) / 100
}

// FormatSOL renders a lamport amount as a decimal SOL string with full precision
func FormatSOL(lamports int64) string {
	sign := ""
	if lamports < 0 {
		sign = "-"
		lamports = -lamports
	}
	return fmt.Sprintf("%s%d.%09d", sign, lamports/LAMPORTS_PER_SOL, lamports%LAMPORTS_PER_SOL)
}

// LedgerEventType is the type of a domain event published after a ledger mutation
type LedgerEventType string

const (
	LedgerEventSplitUpdated       LedgerEventType = "split_updated"
	LedgerEventPayoutClaimed      LedgerEventType = "payout_claimed"
	LedgerEventPlatformWithdrawal LedgerEventType = "platform_withdrawal"
	LedgerEventFeesAccrued        LedgerEventType = "fees_accrued"
)

// LedgerEvent is the normalized event published to NATS after a successful mutation
type LedgerEvent struct {
	EventID     string          `json:"event_id"`               // ULID, time-sortable
	EventType   LedgerEventType `json:"event_type"`             // split_updated, payout_claimed, ...
	AssetID     string          `json:"asset_id"`               // token mint address
	VersionID   *uint64         `json:"version_id,omitempty"`   // agreement version, when relevant
	Identity    string          `json:"identity,omitempty"`     // earner or platform identity
	Amount      int64           `json:"amount,omitempty"`       // smallest unit
	TransferRef string          `json:"transfer_ref,omitempty"` // on-chain signature
	Actor       string          `json:"actor,omitempty"`
	Reason      string          `json:"reason,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// SideWriteRepair carries what is needed to redo the best-effort writes of a split update
type SideWriteRepair struct {
	AssetID      string    `json:"asset_id"`
	VersionID    uint64    `json:"version_id"`
	Actor        string    `json:"actor"`
	Reason       string    `json:"reason"`
	LifetimeFees int64     `json:"lifetime_fees"`
	ChangedAt    time.Time `json:"changed_at"`
	Previous     *Split    `json:"previous,omitempty"`
	Next         Split     `json:"next"`
	// RebuildView and RecordHistory mark which side writes failed inline
	RebuildView   bool `json:"rebuild_view"`
	RecordHistory bool `json:"record_history"`
}
