package sweeper_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/accrual"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
	"github.com/feral-file/ff-royalty-ledger/internal/sweeper"
)

// testFeeAccrualMocks contains all the mocks needed for testing the fee accrual sweeper
type testFeeAccrualMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	ingester *mocks.MockIngester
	clock    *mocks.MockClock
	sweeper  sweeper.Sweeper
}

func setupTestFeeAccrualSweeper(t *testing.T, runOnStart bool) *testFeeAccrualMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	schedule, err := sweeper.ParseSchedule("@every 15m")
	require.NoError(t, err)

	tm := &testFeeAccrualMocks{
		ctrl:     ctrl,
		store:    mocks.NewMockStore(ctrl),
		ingester: mocks.NewMockIngester(ctrl),
		clock:    mocks.NewMockClock(ctrl),
	}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	tm.clock.EXPECT().Since(gomock.Any()).Return(time.Second).AnyTimes()

	tm.sweeper = sweeper.NewFeeAccrualSweeper(&sweeper.FeeAccrualSweeperConfig{
		Schedule:       schedule,
		WorkerPoolSize: 2,
		RunOnStart:     runOnStart,
	}, tm.store, tm.ingester, tm.clock)

	return tm
}

func TestFeeAccrualSweeper_Name(t *testing.T) {
	tm := setupTestFeeAccrualSweeper(t, false)
	assert.Equal(t, "fee-accrual-sweeper", tm.sweeper.Name())
}

func TestFeeAccrualSweeper_RunOnce(t *testing.T) {
	tm := setupTestFeeAccrualSweeper(t, false)
	ctx := context.Background()

	tm.store.EXPECT().ListAssetIDs(ctx).Return([]string{"mint-1", "mint-2", "mint-3", "mint-4"}, nil)
	tm.ingester.EXPECT().Ingest(ctx, "mint-1").Return(&accrual.IngestResult{AssetID: "mint-1", Delta: 100}, nil)
	tm.ingester.EXPECT().Ingest(ctx, "mint-2").Return(&accrual.IngestResult{AssetID: "mint-2", Skipped: true, SkipReason: accrual.SkipReasonNoAgreement}, nil)
	tm.ingester.EXPECT().Ingest(ctx, "mint-3").Return(nil, fmt.Errorf("%w: busy", domain.ErrLockNotAcquired))
	tm.ingester.EXPECT().Ingest(ctx, "mint-4").Return(&accrual.IngestResult{AssetID: "mint-4"}, nil)

	assert.NoError(t, tm.sweeper.RunOnce(ctx))
}

func TestFeeAccrualSweeper_RunOnce_ReportsFailures(t *testing.T) {
	tm := setupTestFeeAccrualSweeper(t, false)
	ctx := context.Background()

	tm.store.EXPECT().ListAssetIDs(ctx).Return([]string{"mint-1", "mint-2"}, nil)
	tm.ingester.EXPECT().Ingest(ctx, "mint-1").Return(nil, errors.New("fee source unavailable"))
	tm.ingester.EXPECT().Ingest(ctx, "mint-2").Return(&accrual.IngestResult{AssetID: "mint-2", Delta: 5}, nil)

	err := tm.sweeper.RunOnce(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestFeeAccrualSweeper_RunOnce_ListError(t *testing.T) {
	tm := setupTestFeeAccrualSweeper(t, false)
	ctx := context.Background()

	tm.store.EXPECT().ListAssetIDs(ctx).Return(nil, errors.New("db down"))

	err := tm.sweeper.RunOnce(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestFeeAccrualSweeper_StartAndStop(t *testing.T) {
	tm := setupTestFeeAccrualSweeper(t, true)
	ctx := context.Background()

	swept := make(chan struct{})
	tm.store.EXPECT().ListAssetIDs(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		close(swept)
		return []string{}, nil
	})
	// The next tick never fires during the test
	tm.clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(ctx)
	}()

	select {
	case <-swept:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep on start did not run")
	}

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, tm.sweeper.Stop(stopCtx))
	assert.NoError(t, <-done)

	// Stopping twice is a no-op
	assert.NoError(t, tm.sweeper.Stop(stopCtx))
}

func TestFeeAccrualSweeper_StopsOnContextCancel(t *testing.T) {
	tm := setupTestFeeAccrualSweeper(t, false)
	ctx, cancel := context.WithCancel(context.Background())

	tm.clock.EXPECT().After(gomock.Any()).Return(make(chan time.Time)).AnyTimes()

	done := make(chan error, 1)
	go func() {
		done <- tm.sweeper.Start(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestParseSchedule(t *testing.T) {
	schedule, err := sweeper.ParseSchedule("0 * * * *")
	require.NoError(t, err)
	next := schedule.Next(time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC), next)

	_, err = sweeper.ParseSchedule("not a schedule")
	assert.Error(t, err)
}
