package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-royalty-ledger/internal/accrual"
	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/config"
	"github.com/feral-file/ff-royalty-ledger/internal/lock"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/messaging"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/feesource"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-royalty-ledger/internal/ratelimit"
	"github.com/feral-file/ff-royalty-ledger/internal/reconcile"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single cycle of every sweeper and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "royalty-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if cfg.Database.ReadHost != "" {
		if err := store.RegisterReadReplica(db, cfg.Database.ReadDSN(), postgres.Open); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.FeeSource.Timeout, cfg.FeeSource.MaxElapsedTime)

	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}()
	locker := lock.NewRedisLocker(lock.Config{TTL: cfg.Lock.TTL, Wait: cfg.Lock.Wait}, redisClient)

	var publisher messaging.Publisher
	if cfg.NATS.Enabled {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxAge:         cfg.NATS.MaxAge,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
	} else {
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	feeSource := feesource.NewClient(httpClient, cfg.FeeSource.BaseURL, cfg.FeeSource.APIKey)
	if cfg.FeeSource.RateLimit.Enabled {
		feeLimiter, err := ratelimit.NewLimiter(cfg.FeeSource.RateLimit, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create fee source rate limiter", zap.Error(err))
		}
		feeSource = feesource.NewRateLimitedClient(feeSource, feeLimiter)
	}

	// Parse schedules
	feeSchedule, err := sweeper.ParseSchedule(cfg.FeeAccrualSweeper.Schedule)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid fee accrual schedule", zap.Error(err))
	}
	reconcileSchedule, err := sweeper.ParseSchedule(cfg.ReconcileSweeper.Schedule)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid reconcile schedule", zap.Error(err))
	}

	// Initialize sweepers
	viewProjector := projector.NewProjector(dataStore, jsonAdapter, clock)
	ingester := accrual.NewIngester(dataStore, feeSource, locker, viewProjector, publisher, clock)
	verifier := reconcile.NewVerifier(dataStore, clock)

	sweepers := []sweeper.Sweeper{
		sweeper.NewFeeAccrualSweeper(&sweeper.FeeAccrualSweeperConfig{
			Schedule:       feeSchedule,
			WorkerPoolSize: cfg.FeeAccrualSweeper.PoolSize,
			RunOnStart:     cfg.FeeAccrualSweeper.RunOnStart,
		}, dataStore, ingester, clock),
		sweeper.NewReconcileSweeper(&sweeper.ReconcileSweeperConfig{
			Schedule:         reconcileSchedule,
			RunOnStart:       cfg.ReconcileSweeper.RunOnStart,
			MaxRecordElapsed: cfg.ReconcileSweeper.MaxRecordElapsed,
		}, dataStore, verifier, jsonAdapter, clock),
	}

	logger.InfoCtx(ctx, "Initialized sweepers",
		zap.String("fee_accrual_schedule", cfg.FeeAccrualSweeper.Schedule),
		zap.Int("fee_accrual_pool_size", cfg.FeeAccrualSweeper.PoolSize),
		zap.String("reconcile_schedule", cfg.ReconcileSweeper.Schedule),
	)

	// Run every sweeper a single time, accruals first so reconciliation sees them
	if *once {
		exitCode := 0
		for _, s := range sweepers {
			if err := s.RunOnce(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("sweeper", s.Name()))
				exitCode = 1
			}
		}
		logger.InfoCtx(ctx, "Single sweep finished")
		logger.Flush(2 * time.Second)
		os.Exit(exitCode)
	}

	// Start the sweepers
	errChan := make(chan error, len(sweepers))
	var wg sync.WaitGroup
	for _, s := range sweepers {
		wg.Add(1)
		go func(s sweeper.Sweeper) {
			defer wg.Done()
			if err := s.Start(ctx); err != nil {
				errChan <- fmt.Errorf("%s: %w", s.Name(), err)
			}
		}(s)
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Give in-progress cycles time to finish before canceling them
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	for _, s := range sweepers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", s.Name()))
		}
	}
	cancel()
	wg.Wait()

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
