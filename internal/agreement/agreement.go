package agreement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

// OpenInput represents the input for opening an agreement version
type OpenInput struct {
	AssetID string
	Split   domain.Split
	Actor   string
	At      time.Time
}

// RotateInput represents the input for replacing the current agreement of an asset.
// PreviousVersionID is the version the caller observed as current, nil when it observed none.
type RotateInput struct {
	AssetID           string
	PreviousVersionID *uint64
	Split             domain.Split
	Actor             string
	At                time.Time
}

// Versioner owns the lifecycle of royalty agreement versions
//
//go:generate mockgen -source=agreement.go -destination=../mocks/agreement.go -package=mocks -mock_names=Versioner=MockVersioner
type Versioner interface {
	// GetCurrentAgreement returns the open version of an asset, nil when the asset has none
	GetCurrentAgreement(ctx context.Context, assetID string) (*domain.Agreement, error)

	// ListVersions returns every version of an asset, newest first
	ListVersions(ctx context.Context, assetID string) ([]domain.Agreement, error)

	// OpenVersion validates the split and writes the version with its shares
	OpenVersion(ctx context.Context, input OpenInput) (uint64, error)

	// CloseVersion closes an open version; closing a closed version is a ConflictError
	CloseVersion(ctx context.Context, versionID uint64, at time.Time) error

	// Rotate closes the observed current version and opens the new one atomically
	Rotate(ctx context.Context, input RotateInput) (*domain.Agreement, error)
}

type versioner struct {
	store store.Store
}

// NewVersioner creates a new agreement versioner
func NewVersioner(st store.Store) Versioner {
	return &versioner{store: st}
}

func (v *versioner) GetCurrentAgreement(ctx context.Context, assetID string) (*domain.Agreement, error) {
	version, err := v.store.GetCurrentAgreement(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current agreement: %w", err)
	}
	return types.AgreementVersionToAgreement(version), nil
}

func (v *versioner) ListVersions(ctx context.Context, assetID string) ([]domain.Agreement, error) {
	versions, err := v.store.ListAgreementVersions(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreement versions: %w", err)
	}

	agreements := make([]domain.Agreement, len(versions))
	for i := range versions {
		agreements[i] = *types.AgreementVersionToAgreement(&versions[i])
	}
	return agreements, nil
}

func (v *versioner) OpenVersion(ctx context.Context, input OpenInput) (uint64, error) {
	openInput, err := buildOpenInput(input.AssetID, input.Split, input.Actor, input.At)
	if err != nil {
		return 0, err
	}

	version, err := v.store.OpenAgreementVersion(ctx, openInput)
	if err != nil {
		return 0, fmt.Errorf("failed to open agreement version: %w", err)
	}

	logger.InfoCtx(ctx, "Opened agreement version",
		zap.String("assetID", input.AssetID),
		zap.Uint64("versionID", version.ID),
	)

	return version.ID, nil
}

func (v *versioner) CloseVersion(ctx context.Context, versionID uint64, at time.Time) error {
	if err := v.store.CloseAgreementVersion(ctx, versionID, at); err != nil {
		return fmt.Errorf("failed to close agreement version: %w", err)
	}

	logger.InfoCtx(ctx, "Closed agreement version", zap.Uint64("versionID", versionID), zap.Time("at", at))
	return nil
}

func (v *versioner) Rotate(ctx context.Context, input RotateInput) (*domain.Agreement, error) {
	openInput, err := buildOpenInput(input.AssetID, input.Split, input.Actor, input.At)
	if err != nil {
		return nil, err
	}

	version, err := v.store.RotateAgreement(ctx, store.RotateAgreementInput{
		PreviousVersionID: input.PreviousVersionID,
		Next:              openInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rotate agreement: %w", err)
	}

	fields := []zap.Field{
		zap.String("assetID", input.AssetID),
		zap.Uint64("versionID", version.ID),
	}
	if input.PreviousVersionID != nil {
		fields = append(fields, zap.Uint64("previousVersionID", *input.PreviousVersionID))
	}
	logger.InfoCtx(ctx, "Rotated agreement", fields...)

	return types.AgreementVersionToAgreement(version), nil
}

// buildOpenInput validates the split and prepares the store input with its fingerprint
func buildOpenInput(assetID string, split domain.Split, actor string, at time.Time) (store.OpenAgreementInput, error) {
	if strings.TrimSpace(assetID) == "" {
		return store.OpenAgreementInput{}, domain.NewValidationError("asset_id", "asset id is required")
	}
	if strings.TrimSpace(actor) == "" {
		return store.OpenAgreementInput{}, domain.NewValidationError("actor", "actor is required")
	}
	if err := split.Validate(); err != nil {
		return store.OpenAgreementInput{}, err
	}

	normalized := split.Normalized()
	hash, err := normalized.Fingerprint()
	if err != nil {
		return store.OpenAgreementInput{}, err
	}

	return store.OpenAgreementInput{
		AssetID:       assetID,
		PlatformBps:   normalized.PlatformBps,
		Shares:        normalized.Shares,
		SplitHash:     hash,
		EffectiveFrom: at,
		CreatedBy:     actor,
	}, nil
}
