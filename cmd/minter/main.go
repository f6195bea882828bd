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
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/onton-live/nft-minter/internal/adapter"
	"github.com/onton-live/nft-minter/internal/config"
	"github.com/onton-live/nft-minter/internal/logger"
	"github.com/onton-live/nft-minter/internal/metadata"
	"github.com/onton-live/nft-minter/internal/pipeline"
	"github.com/onton-live/nft-minter/internal/providers/orders"
	"github.com/onton-live/nft-minter/internal/providers/toncenter"
	"github.com/onton-live/nft-minter/internal/providers/tonchain"
	"github.com/onton-live/nft-minter/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadMinterConfig(*configFile, *envPath)
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
			"service": "minter",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Minter")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
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

	// Register payment wallets
	for _, address := range cfg.WatchWallets {
		if _, err := dataStore.CreateWatchWallet(ctx, address); err != nil {
			logger.FatalCtx(ctx, "Failed to register watch wallet", zap.Error(err), zap.String("address", address))
		}
	}
	logger.InfoCtx(ctx, "Registered watch wallets", zap.Int("count", len(cfg.WatchWallets)))

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Pipeline.HTTPTimeout)

	// Initialize ledger indexer client
	ledger := toncenter.NewClient(cfg.Toncenter.Endpoint, cfg.Toncenter.APIKey, httpClient)

	// Connect the minting wallet
	wallet, err := tonchain.Connect(ctx, cfg.Ton.ConfigURL, cfg.Ton.WalletMnemonic, cfg.Ton.WalletVersion, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect minting wallet", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected minting wallet")

	// Initialize order gateway client
	ordersClient := orders.NewClient(cfg.Orders.BaseURL, cfg.Orders.APIKey, cfg.Pipeline.HTTPTimeout)

	// Initialize metadata publisher
	publisher, err := metadata.NewPublisher(metadata.PublisherOptions{
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		UseSSL:        cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create metadata publisher", zap.Error(err))
	}

	// Assemble the pipeline stages
	watcher := pipeline.NewWatcher(dataStore, ledger, ordersClient)
	materializer := pipeline.NewMaterializer(dataStore, ordersClient)
	dispatcher := pipeline.NewDispatcher(pipeline.DispatcherConfig{
		BatchSize:          cfg.Pipeline.BatchSize,
		WalletWaitAttempts: cfg.Pipeline.WalletWaitAttempts,
		WalletWaitInterval: cfg.Pipeline.WalletWaitInterval,
	}, dataStore, wallet, publisher, pipeline.DefaultSubmitPolicy())
	poller := pipeline.NewPoller(pipeline.PollerConfig{
		FailTryCount: cfg.Pipeline.FailTryCount,
		PoolSize:     cfg.Pipeline.PollerPoolSize,
	}, dataStore, ledger, ordersClient, httpClient)

	runner := pipeline.NewRunner(pipeline.RunnerConfig{
		Interval:   cfg.Pipeline.Interval,
		RunTimeout: cfg.Pipeline.RunTimeout,
	}, clock, watcher, materializer, dispatcher, poller)

	logger.InfoCtx(ctx, "Initialized minting pipeline",
		zap.Duration("interval", cfg.Pipeline.Interval),
		zap.Duration("run_timeout", cfg.Pipeline.RunTimeout),
		zap.Int("batch_size", cfg.Pipeline.BatchSize),
	)

	// Start the pipeline in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := runner.Start(ctx); err != nil {
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

	// Cancel context to stop the pipeline
	cancel()

	// Give the pipeline time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := runner.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Minter stopped")
}
