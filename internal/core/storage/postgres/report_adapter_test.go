package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/retail-lab/salesboard/internal/core/aggregation"
	"github.com/retail-lab/salesboard/internal/core/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	marchStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	marchEnd   = time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
)

func TestReportAdapter_TopProduct(t *testing.T) {
	t.Run("highest units", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryTopProduct)).
			WithArgs("2024-03-01", "2024-03-31").
			WillReturnRows(sqlmock.NewRows([]string{"id_product", "description", "total"}).
				AddRow(int64(3), "Headphones", int64(420)))

		rank, err := NewReportAdapter(db).TopProduct(context.Background(), marchStart, marchEnd)
		require.NoError(t, err)
		require.Equal(t, &storage.ProductRank{ProductID: 3, Description: "Headphones", TotalSold: 420}, rank)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows is none", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryTopProduct)).
			WithArgs("2024-04-01", "2024-04-30").
			WillReturnRows(sqlmock.NewRows([]string{"id_product", "description", "total"}))

		rank, err := NewReportAdapter(db).TopProduct(context.Background(),
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Nil(t, rank)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		storeErr := errors.New("relation does not exist")
		mock.ExpectQuery(regexp.QuoteMeta(queryTopProduct)).WillReturnError(storeErr)

		rank, err := NewReportAdapter(db).TopProduct(context.Background(), marchStart, marchEnd)
		require.ErrorIs(t, err, storeErr)
		require.Nil(t, rank)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportAdapter_TopCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryTopCustomer)).
		WithArgs("2024-03-01", "2024-03-31").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "national_id", "total"}).
			AddRow(int64(7), "Ana Souza", "12345678900", int64(31)))
	mock.ExpectQuery(regexp.QuoteMeta(queryTopCustomer)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "national_id", "total"}))

	adapter := NewReportAdapter(db)

	rank, err := adapter.TopCustomer(context.Background(), marchStart, marchEnd)
	require.NoError(t, err)
	require.Equal(t, &storage.CustomerRank{UserID: 7, Name: "Ana Souza", NationalID: "12345678900", TotalPurchases: 31}, rank)

	rank, err = adapter.TopCustomer(context.Background(), marchStart, marchEnd)
	require.NoError(t, err)
	require.Nil(t, rank)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReportAdapter_RevenueByCategory(t *testing.T) {
	t.Run("ordered by revenue", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryRevenueByCategory)).
			WithArgs("2024-03-01", "2024-03-31").
			WillReturnRows(sqlmock.NewRows([]string{"id_category", "category", "total"}).
				AddRow(int64(2), "Electronics", "15230.50").
				AddRow(int64(1), "Books", "980.00"))

		rows, err := NewReportAdapter(db).RevenueByCategory(context.Background(), marchStart, marchEnd)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "Electronics", rows[0].Category)
		require.True(t, decimal.RequireFromString("15230.5").Equal(rows[0].TotalRevenue))
		require.Equal(t, "Books", rows[1].Category)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing matching is an empty list", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryRevenueByCategory)).
			WillReturnRows(sqlmock.NewRows([]string{"id_category", "category", "total"}))

		rows, err := NewReportAdapter(db).RevenueByCategory(context.Background(), marchStart, marchEnd)
		require.NoError(t, err)
		require.NotNil(t, rows)
		require.Empty(t, rows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unparsable revenue", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(queryRevenueByCategory)).
			WillReturnRows(sqlmock.NewRows([]string{"id_category", "category", "total"}).
				AddRow(int64(2), "Electronics", "NaN?"))

		_, err = NewReportAdapter(db).RevenueByCategory(context.Background(), marchStart, marchEnd)
		require.ErrorContains(t, err, "parse revenue")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportAdapter_YearlyTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(queryYearlyTotals)).
		WillReturnRows(sqlmock.NewRows([]string{"year", "total_sales"}).
			AddRow(int64(2022), int64(1200)).
			AddRow(int64(2023), int64(2400)))

	totals, err := NewReportAdapter(db).YearlyTotals(context.Background())
	require.NoError(t, err)
	require.Equal(t, []aggregation.YearlyTotal{
		{Year: 2022, TotalSales: 1200},
		{Year: 2023, TotalSales: 2400},
	}, totals)
	require.NoError(t, mock.ExpectationsWereMet())
}
