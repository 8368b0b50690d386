package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/domain"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
)

const (
	DEFAULT_LOCK_TTL     = 2 * time.Minute
	DEFAULT_LOCK_WAIT    = 5 * time.Second
	lockRetryInterval    = 100 * time.Millisecond
	lockMaxRetryInterval = time.Second
)

// Config holds the configuration of the asset locker
type Config struct {
	// TTL bounds how long a crashed holder can block the asset
	TTL time.Duration
	// Wait is how long Acquire retries before reporting contention, 0 fails fast
	Wait time.Duration
}

// Locker serializes mutations of a single asset across processes
//
//go:generate mockgen -source=lock.go -destination=../mocks/lock.go -package=mocks -mock_names=Locker=MockLocker
type Locker interface {
	// WithAssetLock runs fn while holding the lock of the asset.
	// Contention is reported as a ConflictError matching domain.ErrLockNotAcquired.
	WithAssetLock(ctx context.Context, assetID string, fn func(ctx context.Context) error) error
}

type redisLocker struct {
	config Config
	redis  adapter.RedisClient
}

// NewRedisLocker creates a locker backed by Redis SET NX PX with a compare-and-delete release
func NewRedisLocker(config Config, redis adapter.RedisClient) Locker {
	if config.TTL <= 0 {
		config.TTL = DEFAULT_LOCK_TTL
	}
	if config.Wait < 0 {
		config.Wait = 0
	}
	return &redisLocker{config: config, redis: redis}
}

// WithAssetLock runs fn while holding the lock of the asset
func (l *redisLocker) WithAssetLock(ctx context.Context, assetID string, fn func(ctx context.Context) error) error {
	key := domain.ASSET_LOCK_PREFIX + assetID
	token := uuid.New().String()

	if err := l.acquire(ctx, key, token); err != nil {
		return err
	}

	defer func() {
		// Release even when the caller context is already canceled
		released, err := l.redis.CompareAndDelete(context.WithoutCancel(ctx), key, token)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to release asset lock", zap.String("assetID", assetID), zap.Error(err))
			return
		}
		if !released {
			logger.WarnCtx(ctx, "Asset lock expired before release", zap.String("assetID", assetID), zap.Duration("ttl", l.config.TTL))
		}
	}()

	return fn(ctx)
}

func (l *redisLocker) acquire(ctx context.Context, key, token string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = lockRetryInterval
	b.MaxInterval = lockMaxRetryInterval
	b.MaxElapsedTime = l.config.Wait

	operation := func() error {
		ok, err := l.redis.SetNX(ctx, key, token, l.config.TTL)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to acquire lock %s: %w", key, err))
		}
		if !ok {
			return domain.ErrLockNotAcquired
		}
		return nil
	}

	var policy backoff.BackOff = backoff.WithContext(b, ctx)
	if l.config.Wait == 0 {
		policy = backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	err := backoff.Retry(operation, policy)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrLockNotAcquired) {
		return fmt.Errorf("%w: %w", domain.ErrLockNotAcquired, &domain.ConflictError{
			Entity: "asset",
			ID:     key[len(domain.ASSET_LOCK_PREFIX):],
			Reason: "another operation on this asset is in progress",
		})
	}
	return err
}
