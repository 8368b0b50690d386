package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-royalty-ledger/internal/adapter"
	"github.com/feral-file/ff-royalty-ledger/internal/agreement"
	"github.com/feral-file/ff-royalty-ledger/internal/api/middleware"
	"github.com/feral-file/ff-royalty-ledger/internal/api/server"
	"github.com/feral-file/ff-royalty-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-royalty-ledger/internal/config"
	"github.com/feral-file/ff-royalty-ledger/internal/lock"
	"github.com/feral-file/ff-royalty-ledger/internal/logger"
	"github.com/feral-file/ff-royalty-ledger/internal/messaging"
	"github.com/feral-file/ff-royalty-ledger/internal/payout"
	"github.com/feral-file/ff-royalty-ledger/internal/projector"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/solana"
	"github.com/feral-file/ff-royalty-ledger/internal/providers/temporal"
	"github.com/feral-file/ff-royalty-ledger/internal/ratelimit"
	"github.com/feral-file/ff-royalty-ledger/internal/reconcile"
	"github.com/feral-file/ff-royalty-ledger/internal/royalty"
	"github.com/feral-file/ff-royalty-ledger/internal/snapshot"
	"github.com/feral-file/ff-royalty-ledger/internal/store"
	"github.com/feral-file/ff-royalty-ledger/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "royalty-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Royalty Ledger API")

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
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.Database.ReadHost))
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

	// Connect to Redis for per-asset locks and rate limiting
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", zap.Error(err))
		}
	}()
	locker := lock.NewRedisLocker(lock.Config{TTL: cfg.Lock.TTL, Wait: cfg.Lock.Wait}, redisClient)

	// Domain event publisher
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
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))
	} else {
		publisher = messaging.NewNoopPublisher()
		logger.WarnCtx(ctx, "NATS disabled, ledger events will not be published")
	}
	defer publisher.Close()

	// Treasury transfers
	transferer, err := solana.NewTransferer(solana.Config{
		TreasuryPrivateKey: cfg.Solana.TreasuryPrivateKey,
		Commitment:         rpc.CommitmentType(cfg.Solana.Commitment),
		PollInterval:       cfg.Solana.PollInterval,
	}, adapter.NewSolanaRPC(cfg.Solana.RPCURL))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create treasury transferer", zap.Error(err))
	}

	// Connect to Temporal to schedule side write repairs
	temporalClient, err := temporal.NewClient(temporal.ClientConfig{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Ledger components
	viewProjector := projector.NewProjector(dataStore, jsonAdapter, clock)
	versioner := agreement.NewVersioner(dataStore)
	snapshotter := snapshot.NewSnapshotter(dataStore, clock)
	sideWriter := royalty.NewSideWriter(dataStore, viewProjector, jsonAdapter)
	repairScheduler := workflows.NewRepairScheduler(temporalClient, cfg.Temporal.CoreTaskQueue)
	royaltyService := royalty.NewService(dataStore, versioner, snapshotter, sideWriter, locker, publisher, repairScheduler, clock)
	payoutHandler := payout.NewHandler(payout.Config{TransferTimeout: cfg.Payout.TransferTimeout},
		dataStore, locker, transferer, viewProjector, publisher, clock)
	verifier := reconcile.NewVerifier(dataStore, clock)

	exec := executor.NewExecutor(dataStore, royaltyService, payoutHandler, versioner, viewProjector, verifier)

	// Request rate limiting
	var apiLimiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		apiLimiter, err = ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create API rate limiter", zap.Error(err))
		}
	}

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}

	// Create and start server
	srv := server.New(serverConfig, exec, apiLimiter)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}

	// Shutdown with a fresh context; in-flight payouts finish before ctx is canceled
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Payout.TransferTimeout+5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}
	cancel()

	logger.Info("API server stopped")
}
