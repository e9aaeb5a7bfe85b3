package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/retail-lab/salesboard/internal/aggregation"
	"github.com/retail-lab/salesboard/internal/catalog"
	"github.com/retail-lab/salesboard/internal/config"
	"github.com/retail-lab/salesboard/internal/core/storage/postgres"
	"github.com/retail-lab/salesboard/internal/ingestion"
	"github.com/retail-lab/salesboard/internal/migrations"
	"github.com/retail-lab/salesboard/internal/projection"
	"github.com/retail-lab/salesboard/internal/server"
)

func main() {
	configPath := flag.String("config", "salesboard.yaml", "Path to configuration file")
	seedPath := flag.String("seed", "", "Optional catalog seed file applied on start")
	bootstrap := flag.Bool("bootstrap", false, "Recompute every aggregate over the full ledger before serving")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(*configPath, *seedPath, *bootstrap); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func run(configPath, seedPath string, bootstrap bool) error {
	// 1. Load Configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.Info("Loaded config",
		"server", cfg.Server,
		"ledger", cfg.Ledger,
		"refresh", cfg.Refresh,
		"query_timezone", cfg.Query.Timezone)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// 2. Initialize Storage (PostgreSQL)
	dbAdapter, err := postgres.NewAdapter(cfg.Database.DSN, postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetimeDuration(),
	})
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer dbAdapter.Close()

	// 2.1. Run Database Migrations, including the ledger partition swap
	partitionFrom, partitionTo := cfg.Ledger.PartitionRange()
	if err := migrations.RunMigrations(ctx, dbAdapter.DB(), postgres.NewPartitionAdapter(dbAdapter.DB()), migrations.Options{
		AutoMigrate:       cfg.Database.AutoMigrate,
		PartitionFrom:     partitionFrom,
		PartitionTo:       partitionTo,
		BackfillBatchSize: cfg.Ledger.BackfillBatchSize,
		DropArchive:       cfg.Ledger.DropArchive,
	}); err != nil {
		return fmt.Errorf("run database migrations: %w", err)
	}

	ledger, err := postgres.NewLedgerAdapter(dbAdapter.DB())
	if err != nil {
		return fmt.Errorf("prepare ledger statements: %w", err)
	}
	defer ledger.Close()

	// 3. Apply catalog seed
	if seedPath != "" {
		seed, err := catalog.LoadFile(seedPath)
		if err != nil {
			return err
		}
		if _, err := catalog.Apply(ctx, ledger, seed); err != nil {
			return fmt.Errorf("apply catalog seed: %w", err)
		}
	}

	// 4. Initialize Refresh Engine
	refreshStore := postgres.NewRefreshAdapter(dbAdapter.DB())
	engine := aggregation.NewEngine(refreshStore, ledger, aggregation.EngineOptions{
		Lookback:    cfg.Refresh.LookbackDuration(),
		Parallelism: cfg.Refresh.Parallelism,
	})

	if bootstrap || cfg.Refresh.BootstrapOnStart {
		if err := engine.Bootstrap(ctx); err != nil {
			return err
		}
	}

	rollupScheduler, err := aggregation.NewRollupScheduler(cfg.Refresh.RollupSchedule, cfg.Refresh.Location(), engine)
	if err != nil {
		return err
	}
	incrementalScheduler := aggregation.NewScheduler(cfg.Refresh.IntervalDuration(), engine)

	slog.Info("Refresh scheduler(s) initialized",
		"enabled", cfg.Refresh.Enabled,
		"interval", cfg.Refresh.IntervalDuration(),
		"lookback", cfg.Refresh.LookbackDuration(),
		"rollup_schedule", cfg.Refresh.RollupSchedule,
		"parallelism", cfg.Refresh.Parallelism,
	)

	// 5. Initialize Ingestion (ledger writes, catalog, manual refresh, aggregate inspection)
	ingestionSvc := ingestion.NewService(ledger, ledger, engine, refreshStore, cfg.Server.MaxBodySizeMB, cfg.Query.Location())

	// 6. Initialize Projection (query API)
	projectionSvc := projection.NewService(postgres.NewReportAdapter(dbAdapter.DB()), ledger, cfg.Query.Location())

	// 7. Initialize Server
	readTimeout, writeTimeout, idleTimeout, shutdownTimeout := cfg.Server.Timeouts()
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), dbAdapter, server.Options{
		Mode:            cfg.Server.Mode,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		IdleTimeout:     idleTimeout,
		ShutdownTimeout: shutdownTimeout,
	})
	ingestionSvc.RegisterRoutes(srv.Engine)
	projectionSvc.RegisterRoutes(srv.Engine)

	// 8. Start Services
	if cfg.Refresh.Enabled {
		go func() {
			if err := incrementalScheduler.Start(ctx); err != nil {
				slog.Error("[Scheduler] Stopped with error", "error", err)
			}
		}()
		go func() {
			if err := rollupScheduler.Start(ctx); err != nil {
				slog.Error("[Scheduler] Rollup scheduler stopped with error", "error", err)
			}
		}()
	} else {
		slog.Info("Refresh schedulers disabled by config")
	}

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
