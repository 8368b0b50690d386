package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/config"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
)

const (
	DEFAULT_REDIS_KEY_PREFIX = "royalty:limiter:"
	redisProbeInterval       = 10 * time.Second
	minRetryAfter            = 50 * time.Millisecond
)

// Limiter throttles requests per key across every replica sharing the Redis instance
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow takes a token for key without blocking.
	// When the token is denied, retryAfter tells how long until one is available.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)

	// Wait blocks until a token for key is available or the context is done
	Wait(ctx context.Context, key string) error
}

type limiter struct {
	config      config.RateLimitConfig
	limit       redis_rate.Limit
	distributed adapter.RedisRateLimiter
	redis       adapter.RedisClient
	clock       adapter.Clock

	redisAvailable atomic.Bool

	mu        sync.Mutex
	lastProbe time.Time
	local     map[string]*rate.Limiter
}

// NewLimiter creates a Redis backed limiter, falling back to in-process limiting when enabled
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisAvailable := true
	if err := rc.Ping(ctx); err != nil {
		redisAvailable = false
		if !cfg.EnableLocalFallback {
			return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
		}
		logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
	}

	l := &limiter{
		config: cfg,
		limit: redis_rate.Limit{
			Rate:   cfg.RequestsPerSecond,
			Burst:  cfg.Burst,
			Period: time.Second,
		},
		distributed: rc.NewRateLimiter(),
		redis:       rc,
		clock:       clock,
		lastProbe:   clock.Now(),
		local:       make(map[string]*rate.Limiter),
	}
	l.redisAvailable.Store(redisAvailable)

	logger.Info("Rate limiter initialized",
		zap.String("prefix", cfg.RedisKeyPrefix),
		zap.Int("requests_per_second", cfg.RequestsPerSecond),
		zap.Int("burst", cfg.Burst),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

// Allow takes a token for key without blocking
func (l *limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	if l.useRedis(ctx) {
		res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, l.limit)
		if err == nil {
			if res.Allowed > 0 {
				return true, 0, nil
			}
			logger.Debug("Rate limit token unavailable",
				zap.String("key", key),
				zap.Duration("retry_after", res.RetryAfter),
				zap.Int("remaining", res.Remaining),
			)
			return false, res.RetryAfter, nil
		}

		if ctx.Err() != nil {
			return false, 0, ctx.Err()
		}

		// Redis error - mark as unavailable and fall back to local if enabled
		l.redisAvailable.Store(false)
		l.mu.Lock()
		l.lastProbe = l.clock.Now()
		l.mu.Unlock()

		if !l.config.EnableLocalFallback {
			return false, 0, fmt.Errorf("redis rate limiter unavailable: %w", err)
		}
		logger.Warn("Redis rate limiter error, falling back to local",
			zap.String("key", key),
			zap.Error(err),
		)
	} else if !l.config.EnableLocalFallback {
		return false, 0, fmt.Errorf("redis rate limiter unavailable")
	}

	return l.allowLocal(key)
}

// Wait blocks until a token for key is available or the context is done
func (l *limiter) Wait(ctx context.Context, key string) error {
	for {
		allowed, retryAfter, err := l.Allow(ctx, key)
		if err != nil {
			return err
		}
		if allowed {
			return nil
		}

		// Add jitter to spread out retry attempts (50-150% of retryAfter)
		retryAfter = max(retryAfter, minRetryAfter)
		jitter := time.Duration(float64(retryAfter) * (0.5 + rand.Float64())) //nolint:gosec,G404
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(jitter):
		}
	}
}

// useRedis reports whether the distributed limiter should be tried,
// probing an unavailable Redis at most once per probe interval
func (l *limiter) useRedis(ctx context.Context) bool {
	if l.redisAvailable.Load() {
		return true
	}

	l.mu.Lock()
	if l.clock.Since(l.lastProbe) < redisProbeInterval {
		l.mu.Unlock()
		return false
	}
	l.lastProbe = l.clock.Now()
	l.mu.Unlock()

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := l.redis.Ping(probeCtx); err != nil {
		return false
	}

	l.redisAvailable.Store(true)
	logger.Info("Redis connection restored")
	return true
}

// allowLocal takes a token from the in-process limiter of key
func (l *limiter) allowLocal(key string) (bool, time.Duration, error) {
	l.mu.Lock()
	local, ok := l.local[key]
	if !ok {
		// Every replica enforces the local rate on its own, so it is scaled down with a minimum of 1
		localRate := max(float64(l.config.RequestsPerSecond)*l.config.LocalFallbackMultiplier, 1.0)
		local = rate.NewLimiter(rate.Limit(localRate), l.config.Burst)
		l.local[key] = local
	}
	l.mu.Unlock()

	now := l.clock.Now()
	reservation := local.ReserveN(now, 1)
	if !reservation.OK() {
		return false, 0, fmt.Errorf("rate limit burst for %s is zero", key)
	}
	delay := reservation.DelayFrom(now)
	if delay == 0 {
		return true, 0, nil
	}
	reservation.CancelAt(now)
	return false, delay, nil
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = DEFAULT_REDIS_KEY_PREFIX
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}
	return nil
}
