package main

import (
	"context"
	"flag"
	"fmt"
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
	"github.com/onton-live/nft-minter/internal/providers/toncenter"
	"github.com/onton-live/nft-minter/internal/providers/tonchain"
	"github.com/onton-live/nft-minter/internal/reconciler"
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
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// One-shot run, canceled by interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "reconciler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Reconciler")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("dsn", cfg.Database.DSN()))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	httpClient := adapter.NewHTTPClient(cfg.Pipeline.HTTPTimeout)

	// Initialize ledger indexer client
	ledger := toncenter.NewClient(cfg.Toncenter.Endpoint, cfg.Toncenter.APIKey, httpClient)

	// Connect the minting wallet for re-mint dispatch
	wallet, err := tonchain.Connect(ctx, cfg.Ton.ConfigURL, cfg.Ton.WalletMnemonic, cfg.Ton.WalletVersion, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect minting wallet", zap.Error(err))
	}

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

	// Requeued rows are re-dispatched through the regular batch mint stage
	dispatcher := pipeline.NewDispatcher(pipeline.DispatcherConfig{
		BatchSize:          cfg.Pipeline.BatchSize,
		WalletWaitAttempts: cfg.Pipeline.WalletWaitAttempts,
		WalletWaitInterval: cfg.Pipeline.WalletWaitInterval,
	}, dataStore, wallet, publisher, pipeline.DefaultSubmitPolicy())

	rec := reconciler.New(reconciler.Config{
		MintedBefore: cfg.MintedBefore,
		CacheTTL:     cfg.CacheTTL,
	}, dataStore, ledger, dispatcher, clock)

	logger.InfoCtx(ctx, "Running reconciliation sweep",
		zap.Duration("minted_before", cfg.MintedBefore),
	)

	if err := rec.Run(ctx); err != nil {
		logger.FatalCtx(ctx, "Reconciliation sweep failed", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Reconciler finished")
}
