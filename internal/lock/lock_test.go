package lock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/lock"
	"github.com/feral-file/ff-royalty-ledger/internal/mocks"
)

const testLockKey = domain.ASSET_LOCK_PREFIX + "mint-1"

func TestWithAssetLock_RunsAndReleases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redis := mocks.NewMockRedisClient(ctrl)
	locker := lock.NewRedisLocker(lock.Config{TTL: time.Minute}, redis)

	var token string
	redis.EXPECT().
		SetNX(gomock.Any(), testLockKey, gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, _ string, value string, _ time.Duration) (bool, error) {
			token = value
			return true, nil
		})
	redis.EXPECT().
		CompareAndDelete(gomock.Any(), testLockKey, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value string) (bool, error) {
			assert.Equal(t, token, value)
			return true, nil
		})

	called := false
	err := locker.WithAssetLock(context.Background(), "mint-1", func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NotEmpty(t, token)
}

func TestWithAssetLock_PropagatesCallbackError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redis := mocks.NewMockRedisClient(ctrl)
	locker := lock.NewRedisLocker(lock.Config{}, redis)

	redis.EXPECT().SetNX(gomock.Any(), testLockKey, gomock.Any(), lock.DEFAULT_LOCK_TTL).Return(true, nil)
	redis.EXPECT().CompareAndDelete(gomock.Any(), testLockKey, gomock.Any()).Return(false, nil)

	boom := errors.New("boom")
	err := locker.WithAssetLock(context.Background(), "mint-1", func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestWithAssetLock_ContentionFailsFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redis := mocks.NewMockRedisClient(ctrl)
	locker := lock.NewRedisLocker(lock.Config{TTL: time.Minute}, redis)

	redis.EXPECT().SetNX(gomock.Any(), testLockKey, gomock.Any(), time.Minute).Return(false, nil).Times(1)

	err := locker.WithAssetLock(context.Background(), "mint-1", func(ctx context.Context) error {
		t.Fatal("callback must not run without the lock")
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLockNotAcquired)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "mint-1", conflict.ID)
}

func TestWithAssetLock_WaitsForRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redis := mocks.NewMockRedisClient(ctrl)
	locker := lock.NewRedisLocker(lock.Config{TTL: time.Minute, Wait: 5 * time.Second}, redis)

	gomock.InOrder(
		redis.EXPECT().SetNX(gomock.Any(), testLockKey, gomock.Any(), time.Minute).Return(false, nil),
		redis.EXPECT().SetNX(gomock.Any(), testLockKey, gomock.Any(), time.Minute).Return(true, nil),
	)
	redis.EXPECT().CompareAndDelete(gomock.Any(), testLockKey, gomock.Any()).Return(true, nil)

	err := locker.WithAssetLock(context.Background(), "mint-1", func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
}

func TestWithAssetLock_RedisErrorIsNotRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redis := mocks.NewMockRedisClient(ctrl)
	locker := lock.NewRedisLocker(lock.Config{TTL: time.Minute, Wait: 5 * time.Second}, redis)

	redis.EXPECT().SetNX(gomock.Any(), testLockKey, gomock.Any(), time.Minute).
		Return(false, errors.New("connection refused")).Times(1)

	err := locker.WithAssetLock(context.Background(), "mint-1", func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotErrorIs(t, err, domain.ErrLockNotAcquired)
}
