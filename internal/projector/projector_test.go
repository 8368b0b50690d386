package projector_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/store/schema"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testAgreement() *domain.Agreement {
	return &domain.Agreement{
		VersionID: 2,
		AssetID:   "mint-1",
		Split: domain.Split{
			PlatformBps: 1000,
			Shares:      []domain.Share{{Identity: "E2", Bps: 3000}, {Identity: "E1", Bps: 6000}},
		},
	}
}

func TestBuildEarnerViews(t *testing.T) {
	balances := []store.BeneficiaryBalance{
		{BeneficiaryKind: domain.BeneficiaryPlatform, BeneficiaryID: domain.PLATFORM_BENEFICIARY_ID, Accrued: 100, Paid: 40, Balance: 60},
		{BeneficiaryKind: domain.BeneficiaryEarner, BeneficiaryID: "E1", Accrued: 600, Paid: 600, Balance: 0},
		{BeneficiaryKind: domain.BeneficiaryEarner, BeneficiaryID: "E0", Accrued: 300, Paid: 100, Balance: 200},
	}

	earners, accrued, claimed := projector.BuildEarnerViews(testAgreement().Split, balances)

	require.Len(t, earners, 3)
	assert.Equal(t, projector.EarnerView{Identity: "E2", Bps: 3000, Percentage: 30}, earners[0])
	assert.Equal(t, projector.EarnerView{Identity: "E1", Bps: 6000, Percentage: 60, Accrued: 600, Claimed: 600}, earners[1])
	assert.Equal(t, projector.EarnerView{Identity: "E0", Accrued: 300, Claimed: 100, Owed: 200}, earners[2])
	assert.Equal(t, int64(1000), accrued)
	// platform withdrawals are not earner claims
	assert.Equal(t, int64(700), claimed)
}

func TestProject_OverwritesView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	p := projector.NewProjector(st, adapter.NewJSON(), clock)
	ctx := context.Background()

	st.EXPECT().GetBeneficiaryBalances(ctx, "mint-1").Return(nil, nil)
	clock.EXPECT().Now().Return(testNow)
	st.EXPECT().
		UpsertOwnershipView(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.UpsertOwnershipViewInput) (*schema.OwnershipView, error) {
			assert.Equal(t, "mint-1", input.AssetID)
			assert.Equal(t, uint64(2), input.VersionID)
			assert.Equal(t, 10.0, input.PlatformPercentage)
			assert.Equal(t, testNow, input.RebuiltAt)

			var earners []projector.EarnerView
			require.NoError(t, json.Unmarshal(input.Earners, &earners))
			require.Len(t, earners, 2)
			assert.Equal(t, "E2", earners[0].Identity)
			assert.Equal(t, 30.0, earners[0].Percentage)
			assert.Equal(t, 60.0, earners[1].Percentage)

			return &schema.OwnershipView{AssetID: input.AssetID, VersionID: input.VersionID}, nil
		})

	view, err := p.Project(ctx, testAgreement())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), view.VersionID)
}

func TestRebuild_NoAgreement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	p := projector.NewProjector(st, adapter.NewJSON(), mocks.NewMockClock(ctrl))

	st.EXPECT().GetCurrentAgreement(gomock.Any(), "mint-1").Return(nil, nil)

	view, err := p.Rebuild(context.Background(), "mint-1")
	require.NoError(t, err)
	assert.Nil(t, view)
}
