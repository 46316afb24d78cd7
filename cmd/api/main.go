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
	"gorm.io/plugin/dbresolver"

	"github.com/propsetu/estate-backend/internal/adapter"
	"github.com/propsetu/estate-backend/internal/api/middleware"
	"github.com/propsetu/estate-backend/internal/api/server"
	"github.com/propsetu/estate-backend/internal/api/shared/executor"
	"github.com/propsetu/estate-backend/internal/approval"
	"github.com/propsetu/estate-backend/internal/config"
	"github.com/propsetu/estate-backend/internal/downloader"
	"github.com/propsetu/estate-backend/internal/logger"
	"github.com/propsetu/estate-backend/internal/notification"
	cloudflareprovider "github.com/propsetu/estate-backend/internal/providers/cloudflare"
	"github.com/propsetu/estate-backend/internal/providers/jetstream"
	"github.com/propsetu/estate-backend/internal/providers/mailer"
	"github.com/propsetu/estate-backend/internal/providers/smsgate"
	"github.com/propsetu/estate-backend/internal/ratelimit"
	"github.com/propsetu/estate-backend/internal/registry"
	"github.com/propsetu/estate-backend/internal/store"
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
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting estate API server")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Route reads to the replica when one is configured
	if cfg.Database.ReadHost != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.Database.ReadDSN())},
		}))
		if err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("host", cfg.Database.ReadHost))
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
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Load reserved slug registry
	slugRegistry, err := registry.LoadReservedSlugs(cfg.ReservedSlugsPath, fs, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load reserved slugs",
			zap.Error(err),
			zap.String("path", cfg.ReservedSlugsPath))
	}
	logger.InfoCtx(ctx, "Loaded reserved slugs", zap.String("path", cfg.ReservedSlugsPath))

	// Cloudflare Images for listing photos
	cfClient, err := adapter.NewCloudflareClient(cfg.Cloudflare.APIToken)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Cloudflare client", zap.Error(err))
	}
	mediaProvider := cloudflareprovider.NewMediaProvider(cfClient, &cloudflareprovider.Config{
		AccountID: cfg.Cloudflare.AccountID,
		APIToken:  cfg.Cloudflare.APIToken,
	}, downloader.NewDownloader(httpClient))

	// Shared notification rate limit over Redis
	redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	limiter, err := ratelimit.New(ratelimit.Config{
		RatePerMinute: cfg.Notification.RatePerMinute,
	}, redisClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
	}
	defer func() { _ = limiter.Close() }()

	// Notification dispatcher
	emailSender := mailer.NewClient(httpClient, cfg.Mailer.APIURL, cfg.Mailer.APIKey, cfg.Mailer.FromAddress, cfg.Mailer.FromName)
	smsSender := smsgate.NewClient(httpClient, cfg.SMS.APIURL, cfg.SMS.APIKey, cfg.SMS.SenderID)
	dispatcher := notification.NewDispatcher(emailSender, smsSender, limiter, clock, cfg.Notification.BulkPacing)

	// Property event publisher on NATS JetStream
	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:            cfg.NATS.URL,
		StreamName:     cfg.NATS.StreamName,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("stream", cfg.NATS.StreamName))

	// Approval workflow service and API executor
	approvalService := approval.NewService(dataStore, dispatcher, publisher, clock)
	exec := executor.NewExecutor(dataStore, approvalService, mediaProvider, slugRegistry)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
