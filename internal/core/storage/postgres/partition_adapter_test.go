package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/lib/pq"
	"github.com/retail-lab/salesboard/internal/core/partition"
	"github.com/retail-lab/salesboard/internal/core/storage"
	"github.com/stretchr/testify/require"
)

func TestCreatePartitionSQL(t *testing.T) {
	m := partition.Month{Year: 2024, Month: 12}

	require.Equal(t,
		`CREATE TABLE IF NOT EXISTS "sales_2024_12" PARTITION OF "sales_new" `+
			`FOR VALUES FROM ('2024-12-01 00:00:00') TO ('2025-01-01 00:00:00')`,
		createPartitionSQL(ShadowLedgerTable, m))
}

func TestPartitionAdapter_ProvisionPartitions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	months := partition.Range(partition.Month{Year: 2024, Month: 11}, partition.Month{Year: 2025, Month: 2})
	require.Len(t, months, 4)

	for _, m := range months {
		mock.ExpectExec(regexp.QuoteMeta(createPartitionSQL(LedgerTable, m))).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, NewPartitionAdapter(db).ProvisionPartitions(context.Background(), LedgerTable, months))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartitionAdapter_ProvisionPartitionsStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	months := partition.Range(partition.Month{Year: 2024, Month: 1}, partition.Month{Year: 2024, Month: 3})

	mock.ExpectExec(regexp.QuoteMeta(createPartitionSQL(LedgerTable, months[0]))).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(createPartitionSQL(LedgerTable, months[1]))).
		WillReturnError(&pq.Error{Code: "42P17", Message: "partition would overlap"})

	err = NewPartitionAdapter(db).ProvisionPartitions(context.Background(), LedgerTable, months)
	require.ErrorContains(t, err, "create partition sales_2024_02")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartitionAdapter_BackfillSales(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int64
		pending   int64
		batchSize int
		batches   [][3]int64 // cursor in, rows copied, max id
		want      storage.BackfillStats
	}{
		{
			name:      "exact ceil(N/B) batches",
			pending:   250,
			batchSize: 100,
			batches:   [][3]int64{{0, 100, 100}, {100, 100, 200}, {200, 50, 250}},
			want:      storage.BackfillStats{Batches: 3, Rows: 250},
		},
		{
			name:      "N divisible by B",
			pending:   200,
			batchSize: 100,
			batches:   [][3]int64{{0, 100, 100}, {100, 100, 200}},
			want:      storage.BackfillStats{Batches: 2, Rows: 200},
		},
		{
			name:      "resumes after the shadow's highest id",
			cursor:    200,
			pending:   50,
			batchSize: 100,
			batches:   [][3]int64{{200, 50, 250}},
			want:      storage.BackfillStats{Batches: 1, Rows: 50},
		},
		{
			name:      "sparse ids advance by max id",
			pending:   3,
			batchSize: 2,
			batches:   [][3]int64{{0, 2, 40}, {40, 1, 977}},
			want:      storage.BackfillStats{Batches: 2, Rows: 3},
		},
		{
			name:      "nothing pending",
			cursor:    250,
			batchSize: 100,
			want:      storage.BackfillStats{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta(queryBackfillCursor)).
				WillReturnRows(sqlmock.NewRows([]string{"cursor", "count"}).AddRow(tc.cursor, tc.pending))
			for _, b := range tc.batches {
				mock.ExpectQuery(regexp.QuoteMeta(queryBackfillBatch)).
					WithArgs(b[0], tc.batchSize).
					WillReturnRows(sqlmock.NewRows([]string{"count", "max"}).AddRow(b[1], b[2]))
			}

			stats, err := NewPartitionAdapter(db).BackfillSales(context.Background(), tc.batchSize)
			require.NoError(t, err)
			require.Equal(t, tc.want, stats)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProperty_BackfillBatchCount(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("N contiguous rows take ceil(N/B) batches and all rows move", prop.ForAll(
		func(n int64, batchSize int) bool {
			db, mock, err := sqlmock.New()
			if err != nil {
				return false
			}
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta(queryBackfillCursor)).
				WillReturnRows(sqlmock.NewRows([]string{"cursor", "count"}).AddRow(int64(0), n))
			for cursor := int64(0); cursor < n; cursor += int64(batchSize) {
				copied := min(int64(batchSize), n-cursor)
				mock.ExpectQuery(regexp.QuoteMeta(queryBackfillBatch)).
					WithArgs(cursor, batchSize).
					WillReturnRows(sqlmock.NewRows([]string{"count", "max"}).AddRow(copied, cursor+copied))
			}

			stats, err := NewPartitionAdapter(db).BackfillSales(context.Background(), batchSize)
			if err != nil || mock.ExpectationsWereMet() != nil {
				return false
			}
			want := (n + int64(batchSize) - 1) / int64(batchSize)
			return stats.Batches == int(want) && stats.Rows == n
		},
		gen.Int64Range(0, 2000),
		gen.IntRange(1, 300),
	))

	properties.TestingRun(t)
}

func TestPartitionAdapter_BackfillSalesNoPartition(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryBackfillCursor)).
		WillReturnRows(sqlmock.NewRows([]string{"cursor", "count"}).AddRow(int64(0), int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta(queryBackfillBatch)).
		WithArgs(int64(0), 100).
		WillReturnError(&pq.Error{Code: "23514", Message: `no partition of relation "sales_new" found for row`})

	stats, err := NewPartitionAdapter(db).BackfillSales(context.Background(), 100)
	require.ErrorIs(t, err, storage.ErrNoPartition)
	require.Zero(t, stats.Batches)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartitionAdapter_BackfillSalesRejectsBatchSize(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewPartitionAdapter(db).BackfillSales(context.Background(), 0)
	require.ErrorContains(t, err, "batch size must be positive")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPartitionAdapter_DropArchive(t *testing.T) {
	t.Run("no archive", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryArchiveExists)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		dropped, err := NewPartitionAdapter(db).DropArchive(context.Background())
		require.NoError(t, err)
		require.False(t, dropped)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("verified archive is dropped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryArchiveExists)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(regexp.QuoteMeta(queryArchiveMissing)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectExec(regexp.QuoteMeta(queryDropArchive)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		dropped, err := NewPartitionAdapter(db).DropArchive(context.Background())
		require.NoError(t, err)
		require.True(t, dropped)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing rows keep the archive", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryArchiveExists)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(regexp.QuoteMeta(queryArchiveMissing)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(3)))

		dropped, err := NewPartitionAdapter(db).DropArchive(context.Background())
		require.ErrorContains(t, err, "3 archived sales are missing")
		require.False(t, dropped)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
