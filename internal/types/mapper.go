package types

import (
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

// SharesToDomain converts stored shares to domain shares, keeping their position order
func SharesToDomain(shares []schema.RoyaltyShare) []domain.Share {
	result := make([]domain.Share, len(shares))
	for i, share := range shares {
		result[i] = domain.Share{Identity: share.EarnerIdentity, Bps: share.Bps}
	}
	return result
}

// AgreementVersionToAgreement converts a stored agreement version to a domain agreement
func AgreementVersionToAgreement(version *schema.RoyaltyAgreementVersion) *domain.Agreement {
	if version == nil {
		return nil
	}

	return &domain.Agreement{
		VersionID: version.ID,
		AssetID:   version.AssetID,
		Split: domain.Split{
			PlatformBps: version.PlatformBps,
			Shares:      SharesToDomain(version.Shares),
		},
		SplitHash:     version.SplitHash,
		EffectiveFrom: version.EffectiveFrom,
		EffectiveTo:   version.EffectiveTo,
		CreatedBy:     version.CreatedBy,
	}
}

// BeneficiaryKindForEvent returns the only beneficiary kind a payout event can apply to
func BeneficiaryKindForEvent(kind domain.EventKind) (domain.BeneficiaryKind, bool) {
	switch kind {
	case domain.EventKindClaim:
		return domain.BeneficiaryEarner, true
	case domain.EventKindPlatformWithdrawal:
		return domain.BeneficiaryPlatform, true
	default:
		return "", false
	}
}
