package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/retail-lab/salesboard/internal/core/partition"
	"github.com/retail-lab/salesboard/internal/core/storage"
)

//go:embed *.sql
var MigrationFiles embed.FS

const (
	// VersionShadowLedger creates the partitioned sales_new beside the live ledger.
	VersionShadowLedger uint = 3
	// VersionLedgerSwap renames sales to sales_archive and sales_new to sales.
	VersionLedgerSwap uint = 4
)

const (
	ledgerTable       = "sales"
	shadowLedgerTable = "sales_new"
)

// LedgerPartitioner performs the data steps of the ledger swap that cannot be
// expressed as a static SQL file.
type LedgerPartitioner interface {
	ProvisionPartitions(ctx context.Context, parent string, months []partition.Month) error
	BackfillSales(ctx context.Context, batchSize int) (storage.BackfillStats, error)
	DropArchive(ctx context.Context) (bool, error)
}

// Options controls a migration run.
type Options struct {
	// AutoMigrate applies pending migrations. When false, only the current
	// version is reported and partitions are provisioned on an already
	// swapped ledger.
	AutoMigrate bool

	// PartitionFrom and PartitionTo bound the monthly partitions, inclusive.
	PartitionFrom partition.Month
	PartitionTo   partition.Month

	BackfillBatchSize int

	// DropArchive drops sales_archive after verifying every row reached the
	// partitioned ledger.
	DropArchive bool
}

// schemaMigrator is the subset of *migrate.Migrate the runner drives.
type schemaMigrator interface {
	Version() (uint, bool, error)
	Migrate(version uint) error
	Up() error
	Force(version int) error
}

// RunMigrations brings the schema to the latest version.
//
// Migrations run in two legs around the ledger backfill: first up to the
// shadow table, then partitions are attached and historical sales are copied
// in batches, then the remaining migrations swap the tables atomically and
// build the aggregates on top of the partitioned ledger.
func RunMigrations(ctx context.Context, db *sql.DB, ledger LedgerPartitioner, opts Options) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	return run(ctx, m, ledger, opts)
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(MigrationFiles, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

func run(ctx context.Context, m schemaMigrator, ledger LedgerPartitioner, opts Options) error {
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		slog.Warn("[Migrations] Database is in dirty state - migration was interrupted",
			"version", version,
			"action", "rolling back to previous version")

		// Every migration is either transactional or idempotent, so the
		// interrupted one is re-applied from the version before it.
		previous := int(version) - 1
		if previous == 0 {
			previous = -1
		}
		if err := m.Force(previous); err != nil {
			return fmt.Errorf("failed to recover dirty migration state at version %d: %w", version, err)
		}
		slog.Info("[Migrations] Recovered dirty migration state", "forced_version", previous)

		if previous < 0 {
			version = 0
		} else {
			version = uint(previous)
		}
	}

	months := partition.Range(opts.PartitionFrom, opts.PartitionTo)
	if len(months) == 0 {
		return fmt.Errorf("empty partition range %s..%s", opts.PartitionFrom, opts.PartitionTo)
	}

	if !opts.AutoMigrate {
		slog.Info("[Migrations] Auto-migration disabled, skipping migrations",
			"current_version", version,
			"dirty", dirty)
		if version >= VersionLedgerSwap {
			return ledger.ProvisionPartitions(ctx, ledgerTable, months)
		}
		return nil
	}

	slog.Info("[Migrations] Running database migrations", "current_version", version)

	if version < VersionLedgerSwap {
		if err := migrateTo(m, VersionShadowLedger); err != nil {
			return err
		}

		if err := ledger.ProvisionPartitions(ctx, shadowLedgerTable, months); err != nil {
			return fmt.Errorf("failed to provision shadow ledger partitions: %w", err)
		}

		stats, err := ledger.BackfillSales(ctx, opts.BackfillBatchSize)
		if err != nil {
			return fmt.Errorf("failed to backfill partitioned ledger: %w", err)
		}
		slog.Info("[Migrations] Ledger backfilled",
			"batches", stats.Batches,
			"rows", stats.Rows)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := ledger.ProvisionPartitions(ctx, ledgerTable, months); err != nil {
		return fmt.Errorf("failed to provision ledger partitions: %w", err)
	}

	if opts.DropArchive {
		dropped, err := ledger.DropArchive(ctx)
		if err != nil {
			return fmt.Errorf("failed to drop archived ledger: %w", err)
		}
		if dropped {
			slog.Info("[Migrations] Archived ledger dropped")
		}
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get updated migration version: %w", err)
	}

	slog.Info("[Migrations] Database migrations completed successfully",
		"from_version", version,
		"to_version", newVersion)
	return nil
}

func migrateTo(m schemaMigrator, version uint) error {
	if err := m.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to migrate to version %d: %w", version, err)
	}
	return nil
}
