package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/config"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/notification"
	"github.com/propsetu/estate-backend/internal/providers/mailer"
	"github.com/propsetu/estate-backend/internal/providers/smsgate"
	"github.com/propsetu/estate-backend/internal/ratelimit"
	"github.com/propsetu/estate-backend/internal/store"
	"github.com/propsetu/estate-backend/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Shared notification rate limit over Redis
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	limiter, err := ratelimit.New(ratelimit.Config{
		RatePerMinute: cfg.Notification.RatePerMinute,
	}, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	defer func() { _ = limiter.Close() }()

	// Notification dispatcher for owner reminders
	emailSender := mailer.NewClient(httpClient, cfg.Mailer.APIURL, cfg.Mailer.APIKey, cfg.Mailer.FromAddress, cfg.Mailer.FromName)
	smsSender := smsgate.NewClient(httpClient, cfg.SMS.APIURL, cfg.SMS.APIKey, cfg.SMS.SenderID)
	dispatcher := notification.NewDispatcher(emailSender, smsSender, limiter, clock, cfg.Notification.BulkPacing)

	// Initialize stale-pending sweeper
	sweeperConfig := &sweeper.StalePendingSweeperConfig{
		Interval:       cfg.StalePending.Interval,
		OlderThan:      cfg.StalePending.OlderThan,
		BatchSize:      cfg.StalePending.BatchSize,
		WorkerPoolSize: cfg.StalePending.Worker.PoolSize,
	}
	staleSweeper := sweeper.NewStalePendingSweeper(sweeperConfig, dataStore, dispatcher, clock)

	logger.InfoCtx(ctx, "Initialized stale-pending sweeper (continuous mode)",
		zap.Duration("interval", cfg.StalePending.Interval),
		zap.Duration("older_than", cfg.StalePending.OlderThan),
		zap.Int("batch_size", cfg.StalePending.BatchSize),
		zap.Int("worker_pool_size", cfg.StalePending.Worker.PoolSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := staleSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweeper
	cancel()

	// Give the sweeper time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := staleSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
