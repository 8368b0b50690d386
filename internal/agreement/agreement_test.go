package agreement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/agreement"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
	"github.com/feral-file/ff-royalty-ledger/internal/types"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupVersioner(t *testing.T) (*mocks.MockStore, agreement.Versioner) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	return st, agreement.NewVersioner(st)
}

func TestGetCurrentAgreement(t *testing.T) {
	st, versioner := setupVersioner(t)
	ctx := context.Background()

	st.EXPECT().GetCurrentAgreement(ctx, "mint-1").Return(&schema.RoyaltyAgreementVersion{
		ID:          3,
		AssetID:     "mint-1",
		PlatformBps: 1000,
		Shares:      []schema.RoyaltyShare{{EarnerIdentity: "E1", Bps: 9000}},
	}, nil)

	current, err := versioner.GetCurrentAgreement(ctx, "mint-1")
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, uint64(3), current.VersionID)
	assert.Equal(t, []domain.Share{{Identity: "E1", Bps: 9000}}, current.Split.Shares)

	st.EXPECT().GetCurrentAgreement(ctx, "mint-2").Return(nil, nil)
	current, err = versioner.GetCurrentAgreement(ctx, "mint-2")
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestOpenVersion_WritesValidatedSplit(t *testing.T) {
	st, versioner := setupVersioner(t)
	ctx := context.Background()

	split := domain.Split{PlatformBps: 1000, Shares: []domain.Share{{Identity: " E1 ", Bps: 9000}}}
	expectedHash, err := split.Fingerprint()
	require.NoError(t, err)

	st.EXPECT().
		OpenAgreementVersion(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.OpenAgreementInput) (*schema.RoyaltyAgreementVersion, error) {
			assert.Equal(t, "mint-1", input.AssetID)
			assert.Equal(t, 1000, input.PlatformBps)
			assert.Equal(t, []domain.Share{{Identity: "E1", Bps: 9000}}, input.Shares)
			assert.Equal(t, expectedHash, input.SplitHash)
			assert.Equal(t, testNow, input.EffectiveFrom)
			assert.Equal(t, "admin", input.CreatedBy)
			return &schema.RoyaltyAgreementVersion{ID: 11}, nil
		})

	versionID, err := versioner.OpenVersion(ctx, agreement.OpenInput{
		AssetID: "mint-1",
		Split:   split,
		Actor:   "admin",
		At:      testNow,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(11), versionID)
}

func TestOpenVersion_RejectsInvalidSplitWithoutWriting(t *testing.T) {
	tests := []struct {
		name  string
		input agreement.OpenInput
		field string
	}{
		{
			name: "bps do not sum to total",
			input: agreement.OpenInput{
				AssetID: "mint-1",
				Split:   domain.Split{PlatformBps: 1000, Shares: []domain.Share{{Identity: "E1", Bps: 5000}}},
				Actor:   "admin",
			},
			field: "earners",
		},
		{
			name: "empty shares",
			input: agreement.OpenInput{
				AssetID: "mint-1",
				Split:   domain.Split{PlatformBps: 10000},
				Actor:   "admin",
			},
			field: "earners",
		},
		{
			name: "negative share",
			input: agreement.OpenInput{
				AssetID: "mint-1",
				Split:   domain.Split{PlatformBps: 0, Shares: []domain.Share{{Identity: "E1", Bps: 10100}, {Identity: "E2", Bps: -100}}},
				Actor:   "admin",
			},
			field: "earners[1].bps",
		},
		{
			name: "missing actor",
			input: agreement.OpenInput{
				AssetID: "mint-1",
				Split:   domain.Split{PlatformBps: 1000, Shares: []domain.Share{{Identity: "E1", Bps: 9000}}},
			},
			field: "actor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No store expectations: any write fails the test
			_, versioner := setupVersioner(t)

			_, err := versioner.OpenVersion(context.Background(), tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCloseVersion_PropagatesConflict(t *testing.T) {
	st, versioner := setupVersioner(t)
	ctx := context.Background()

	st.EXPECT().CloseAgreementVersion(ctx, uint64(4), testNow).Return(&domain.ConflictError{
		Entity: "agreement_version",
		ID:     "4",
		Reason: "version is already closed",
	})

	err := versioner.CloseVersion(ctx, 4, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	st.EXPECT().CloseAgreementVersion(ctx, uint64(5), testNow).Return(nil)
	assert.NoError(t, versioner.CloseVersion(ctx, 5, testNow))
}

func TestRotate(t *testing.T) {
	st, versioner := setupVersioner(t)
	ctx := context.Background()

	split := domain.Split{PlatformBps: 500, Shares: []domain.Share{{Identity: "E1", Bps: 4750}, {Identity: "E2", Bps: 4750}}}

	st.EXPECT().
		RotateAgreement(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.RotateAgreementInput) (*schema.RoyaltyAgreementVersion, error) {
			require.NotNil(t, input.PreviousVersionID)
			assert.Equal(t, uint64(2), *input.PreviousVersionID)
			assert.Equal(t, testNow, input.Next.EffectiveFrom)
			return &schema.RoyaltyAgreementVersion{
				ID:            3,
				AssetID:       "mint-1",
				PlatformBps:   500,
				EffectiveFrom: testNow,
				CreatedBy:     "admin",
				Shares: []schema.RoyaltyShare{
					{EarnerIdentity: "E1", Bps: 4750},
					{EarnerIdentity: "E2", Bps: 4750, Position: 1},
				},
			}, nil
		})

	result, err := versioner.Rotate(ctx, agreement.RotateInput{
		AssetID:           "mint-1",
		PreviousVersionID: types.Uint64Ptr(2),
		Split:             split,
		Actor:             "admin",
		At:                testNow,
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(3), result.VersionID)
	assert.True(t, result.Split.Equal(split))
}

func TestRotate_StaleVersionIsConflict(t *testing.T) {
	st, versioner := setupVersioner(t)
	ctx := context.Background()

	st.EXPECT().RotateAgreement(ctx, gomock.Any()).Return(nil, &domain.ConflictError{
		Entity: "agreement_version",
		ID:     "2",
		Reason: "version is no longer current",
	})

	_, err := versioner.Rotate(ctx, agreement.RotateInput{
		AssetID:           "mint-1",
		PreviousVersionID: types.Uint64Ptr(2),
		Split:             domain.Split{PlatformBps: 1000, Shares: []domain.Share{{Identity: "E1", Bps: 9000}}},
		Actor:             "admin",
		At:                testNow,
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}
