package projector

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

// EarnerView is one earner row of the ownership view
type EarnerView struct {
	Identity   string  `json:"identity"`
	Bps        int     `json:"bps"`
	Percentage float64 `json:"percentage"`
	Accrued    int64   `json:"accrued"`
	Claimed    int64   `json:"claimed"`
	Owed       int64   `json:"owed"`
}

// Projector rebuilds the denormalized ownership view of an asset
//
//go:generate mockgen -source=projector.go -destination=../mocks/projector.go -package=mocks -mock_names=Projector=MockProjector
type Projector interface {
	// Project overwrites the view of the asset from the given agreement and the current balances
	Project(ctx context.Context, agreement *domain.Agreement) (*schema.OwnershipView, error)

	// Rebuild projects the current agreement of the asset; returns nil when the asset has none
	Rebuild(ctx context.Context, assetID string) (*schema.OwnershipView, error)
}

type projector struct {
	store store.Store
	json  adapter.JSON
	clock adapter.Clock
}

// NewProjector creates a new ownership view projector
func NewProjector(st store.Store, json adapter.JSON, clock adapter.Clock) Projector {
	return &projector{
		store: st,
		json:  json,
		clock: clock,
	}
}

func (p *projector) Rebuild(ctx context.Context, assetID string) (*schema.OwnershipView, error) {
	version, err := p.store.GetCurrentAgreement(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current agreement: %w", err)
	}
	if version == nil {
		return nil, nil
	}

	return p.Project(ctx, types.AgreementVersionToAgreement(version))
}

func (p *projector) Project(ctx context.Context, agreement *domain.Agreement) (*schema.OwnershipView, error) {
	balances, err := p.store.GetBeneficiaryBalances(ctx, agreement.AssetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get beneficiary balances: %w", err)
	}

	earners, lifetimeAccrued, lifetimeClaimed := BuildEarnerViews(agreement.Split, balances)

	raw, err := p.json.Marshal(earners)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal earners: %w", err)
	}

	view, err := p.store.UpsertOwnershipView(ctx, store.UpsertOwnershipViewInput{
		AssetID:            agreement.AssetID,
		VersionID:          agreement.VersionID,
		PlatformBps:        agreement.Split.PlatformBps,
		PlatformPercentage: domain.Percentage(agreement.Split.PlatformBps),
		Earners:            raw,
		LifetimeAccrued:    lifetimeAccrued,
		LifetimeClaimed:    lifetimeClaimed,
		RebuiltAt:          p.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert ownership view: %w", err)
	}

	logger.DebugCtx(ctx, "Rebuilt ownership view",
		zap.String("assetID", agreement.AssetID),
		zap.Uint64("versionID", agreement.VersionID),
		zap.Int("earners", len(earners)),
	)

	return view, nil
}

// BuildEarnerViews merges the split with the ledger balances.
// Earners of the split come first in split order; former earners that still hold a
// balance follow with 0 bps, sorted by identity.
func BuildEarnerViews(split domain.Split, balances []store.BeneficiaryBalance) ([]EarnerView, int64, int64) {
	byIdentity := make(map[string]store.BeneficiaryBalance, len(balances))
	var lifetimeAccrued, lifetimeClaimed int64
	for _, b := range balances {
		lifetimeAccrued += b.Accrued
		if b.BeneficiaryKind != domain.BeneficiaryEarner {
			continue
		}
		lifetimeClaimed += b.Paid
		byIdentity[b.BeneficiaryID] = b
	}

	earners := make([]EarnerView, 0, len(split.Shares))
	for _, share := range split.Shares {
		b := byIdentity[share.Identity]
		delete(byIdentity, share.Identity)
		earners = append(earners, EarnerView{
			Identity:   share.Identity,
			Bps:        share.Bps,
			Percentage: domain.Percentage(share.Bps),
			Accrued:    b.Accrued,
			Claimed:    b.Paid,
			Owed:       b.Balance,
		})
	}

	former := make([]EarnerView, 0, len(byIdentity))
	for identity, b := range byIdentity {
		if b.Accrued == 0 && b.Paid == 0 {
			continue
		}
		former = append(former, EarnerView{
			Identity: identity,
			Accrued:  b.Accrued,
			Claimed:  b.Paid,
			Owed:     b.Balance,
		})
	}
	sort.Slice(former, func(i, j int) bool { return former[i].Identity < former[j].Identity })

	return append(earners, former...), lifetimeAccrued, lifetimeClaimed
}
