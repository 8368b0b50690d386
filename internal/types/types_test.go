package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

func TestStringPtr(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "non-empty string", input: "test"},
		{name: "unicode string", input: "测试"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringPtr(tt.input)
			require.NotNil(t, result)
			assert.Equal(t, tt.input, *result)
		})
	}
}

func TestStringNilOrEmpty(t *testing.T) {
	assert.True(t, StringNilOrEmpty(nil))
	assert.True(t, StringNilOrEmpty(StringPtr("")))
	assert.False(t, StringNilOrEmpty(StringPtr("x")))
}

func TestSafeString(t *testing.T) {
	assert.Equal(t, "", SafeString(nil))
	assert.Equal(t, "tx123", SafeString(StringPtr("tx123")))
}

func TestIsSolanaAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "system program", input: "11111111111111111111111111111111", expected: true},
		{name: "token program", input: "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA", expected: true},
		{name: "empty", input: "", expected: false},
		{name: "ethereum address", input: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", expected: false},
		{name: "too short", input: "abc", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSolanaAddress(tt.input))
		})
	}
}

func TestAgreementVersionToAgreement(t *testing.T) {
	assert.Nil(t, AgreementVersionToAgreement(nil))

	from := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	version := &schema.RoyaltyAgreementVersion{
		ID:            7,
		AssetID:       "mint-1",
		PlatformBps:   1000,
		SplitHash:     "hash",
		EffectiveFrom: from,
		CreatedBy:     "admin",
		Shares: []schema.RoyaltyShare{
			{EarnerIdentity: "E2", Bps: 3000, Position: 0},
			{EarnerIdentity: "E1", Bps: 6000, Position: 1},
		},
	}

	agreement := AgreementVersionToAgreement(version)
	require.NotNil(t, agreement)
	assert.Equal(t, uint64(7), agreement.VersionID)
	assert.True(t, agreement.IsCurrent())
	assert.Equal(t, 1000, agreement.Split.PlatformBps)
	assert.Equal(t, []domain.Share{{Identity: "E2", Bps: 3000}, {Identity: "E1", Bps: 6000}}, agreement.Split.Shares)
	assert.NoError(t, agreement.Split.Validate())
}

func TestBeneficiaryKindForEvent(t *testing.T) {
	kind, ok := BeneficiaryKindForEvent(domain.EventKindClaim)
	assert.True(t, ok)
	assert.Equal(t, domain.BeneficiaryEarner, kind)

	kind, ok = BeneficiaryKindForEvent(domain.EventKindPlatformWithdrawal)
	assert.True(t, ok)
	assert.Equal(t, domain.BeneficiaryPlatform, kind)

	_, ok = BeneficiaryKindForEvent(domain.EventKindAccrual)
	assert.False(t, ok)
}
