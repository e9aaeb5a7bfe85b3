package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
	"github.com/retail-lab/salesboard/internal/core/partition"
	"github.com/retail-lab/salesboard/internal/core/storage"
)

const (
	// LedgerTable is the logical name readers and writers always use.
	LedgerTable = "sales"
	// ShadowLedgerTable is the partitioned table built beside the live one.
	ShadowLedgerTable = "sales_new"
	// ArchiveLedgerTable holds the pre-swap rows until they are verified and dropped.
	ArchiveLedgerTable = "sales_archive"
)

const (
	// queryBackfillCursor resumes from whatever the shadow already holds.
	queryBackfillCursor = `
		SELECT c.cursor, (SELECT COUNT(*) FROM sales WHERE id > c.cursor)
		FROM (SELECT COALESCE(MAX(id), 0) AS cursor FROM sales_new) c
	`

	// queryBackfillBatch copies the next batch by id and reports how many rows
	// it covered and the highest id seen. Rows already present are skipped.
	queryBackfillBatch = `
		WITH batch AS (
			SELECT id, id_user, datetime
			FROM sales
			WHERE id > $1
			ORDER BY id
			LIMIT $2
		),
		moved AS (
			INSERT INTO sales_new (id, id_user, datetime)
			SELECT id, id_user, datetime FROM batch
			ON CONFLICT DO NOTHING
		)
		SELECT COUNT(*), COALESCE(MAX(id), 0) FROM batch
	`

	queryArchiveExists = `SELECT to_regclass('sales_archive') IS NOT NULL`

	// queryArchiveMissing counts archived rows the live ledger does not have.
	queryArchiveMissing = `
		SELECT COUNT(*)
		FROM sales_archive a
		WHERE NOT EXISTS (
			SELECT 1 FROM sales s
			WHERE s.id = a.id
			  AND s.datetime = a.datetime
		)
	`

	queryDropArchive = `DROP TABLE sales_archive`
)

// PartitionAdapter manages the physical layout of the ledger: monthly
// partitions, the batched copy into the shadow table, and archive cleanup.
type PartitionAdapter struct {
	db *sql.DB
}

// NewPartitionAdapter creates a PartitionAdapter sharing the given pool.
func NewPartitionAdapter(db *sql.DB) *PartitionAdapter {
	return &PartitionAdapter{db: db}
}

// createPartitionSQL builds the DDL for one monthly partition of parent.
// Partitions are always named after the live ledger, so shadow partitions keep
// their names once the shadow becomes the live table.
func createPartitionSQL(parent string, m partition.Month) string {
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s PARTITION OF %s FOR VALUES FROM (%s) TO (%s)",
		pq.QuoteIdentifier(m.Name(LedgerTable)),
		pq.QuoteIdentifier(parent),
		pq.QuoteLiteral(m.Start().Format("2006-01-02 15:04:05")),
		pq.QuoteLiteral(m.End().Format("2006-01-02 15:04:05")),
	)
}

// ProvisionPartitions creates any missing monthly partition of parent for
// months. Each partition is created in its own statement so the parent lock
// is held briefly. Existing partitions are left alone.
func (a *PartitionAdapter) ProvisionPartitions(ctx context.Context, parent string, months []partition.Month) error {
	if len(months) == 0 {
		return nil
	}

	err := withConn(ctx, a.db, func(conn *sql.Conn) error {
		for _, m := range months {
			if _, err := conn.ExecContext(ctx, createPartitionSQL(parent, m)); err != nil {
				return fmt.Errorf("create partition %s: %w", m.Name(LedgerTable), err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("provision partitions of %s: %w", parent, err)
	}

	slog.Info("[Postgres] Ledger partitions provisioned",
		"parent", parent,
		"from", months[0].String(),
		"to", months[len(months)-1].String(),
		"months", len(months))
	return nil
}

// BackfillSales copies rows from the live unpartitioned ledger into the shadow
// table in batches of batchSize, keyed by id. Each batch commits on its own.
//
// The copy resumes after the highest id already in the shadow, so an
// interrupted run is continued by calling it again. N pending rows take
// exactly ceil(N/batchSize) batches.
func (a *PartitionAdapter) BackfillSales(ctx context.Context, batchSize int) (storage.BackfillStats, error) {
	var stats storage.BackfillStats
	if batchSize <= 0 {
		return stats, fmt.Errorf("backfill: batch size must be positive, got %d", batchSize)
	}

	var cursor, pending int64
	if err := a.db.QueryRowContext(ctx, queryBackfillCursor).Scan(&cursor, &pending); err != nil {
		return stats, fmt.Errorf("backfill: read cursor: %w", err)
	}

	slog.Info("[Postgres] Ledger backfill starting",
		"cursor", cursor,
		"pending_rows", pending,
		"batch_size", batchSize)

	for stats.Rows < pending {
		var copied, maxID int64
		if err := a.db.QueryRowContext(ctx, queryBackfillBatch, cursor, batchSize).Scan(&copied, &maxID); err != nil {
			return stats, classifyError(fmt.Sprintf("backfill: batch after id %d", cursor), err)
		}
		if copied == 0 {
			break
		}

		stats.Batches++
		stats.Rows += copied
		cursor = maxID

		slog.Debug("[Postgres] Ledger backfill batch",
			"batch", stats.Batches,
			"rows", copied,
			"cursor", cursor)
	}

	slog.Info("[Postgres] Ledger backfill complete",
		"batches", stats.Batches,
		"rows", stats.Rows,
		"cursor", cursor)
	return stats, nil
}

// DropArchive drops the pre-swap ledger once every archived row is confirmed
// present in the live table. Returns false when there is no archive.
func (a *PartitionAdapter) DropArchive(ctx context.Context) (bool, error) {
	var exists bool
	if err := a.db.QueryRowContext(ctx, queryArchiveExists).Scan(&exists); err != nil {
		return false, fmt.Errorf("drop archive: check archive: %w", err)
	}
	if !exists {
		return false, nil
	}

	var missing int64
	if err := a.db.QueryRowContext(ctx, queryArchiveMissing).Scan(&missing); err != nil {
		return false, fmt.Errorf("drop archive: verify archive: %w", err)
	}
	if missing > 0 {
		return false, fmt.Errorf("drop archive: %d archived sales are missing from %s", missing, LedgerTable)
	}

	if _, err := a.db.ExecContext(ctx, queryDropArchive); err != nil {
		return false, fmt.Errorf("drop archive: %w", err)
	}

	slog.Info("[Postgres] Archived ledger dropped", "table", ArchiveLedgerTable)
	return true, nil
}
