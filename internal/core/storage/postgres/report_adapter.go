package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/retail-lab/salesboard/internal/core/aggregation"
	"github.com/retail-lab/salesboard/internal/core/storage"
	"github.com/shopspring/decimal"
)

// Report queries read only the aggregate tables and the rollup.
// $1 and $2 are inclusive calendar dates.
const (
	queryTopProduct = `
		SELECT
			id_product,
			MAX(description) AS description,
			SUM(total_sold)::bigint AS total
		FROM product_sales_aggregated
		WHERE sale_date BETWEEN $1::date AND $2::date
		GROUP BY id_product
		ORDER BY total DESC, id_product ASC
		LIMIT 1
	`

	queryTopCustomer = `
		SELECT u.id, u.name, u.national_id, ranked.total
		FROM (
			SELECT id_user, SUM(total_purchases)::bigint AS total
			FROM customer_purchases_aggregated
			WHERE sale_date BETWEEN $1::date AND $2::date
			GROUP BY id_user
			ORDER BY total DESC, id_user ASC
			LIMIT 1
		) ranked
		JOIN users u ON u.id = ranked.id_user
	`

	queryRevenueByCategory = `
		SELECT
			id_category,
			MAX(category) AS category,
			SUM(total_revenue) AS total
		FROM category_revenue_aggregated
		WHERE sale_date BETWEEN $1::date AND $2::date
		GROUP BY id_category
		HAVING SUM(total_revenue) > 0
		ORDER BY total DESC, id_category ASC
	`

	queryYearlyTotals = `
		SELECT year, total_sales
		FROM yearly_total_sales
		ORDER BY year ASC
	`
)

// ReportAdapter implements projection.ReportStore.
type ReportAdapter struct {
	db *sql.DB
}

// NewReportAdapter creates a ReportAdapter sharing the given pool.
func NewReportAdapter(db *sql.DB) *ReportAdapter {
	return &ReportAdapter{db: db}
}

// TopProduct returns the product with the most units sold between start and
// end inclusive, or nil when no aggregate row falls in range.
func (a *ReportAdapter) TopProduct(ctx context.Context, start, end time.Time) (*storage.ProductRank, error) {
	var rank storage.ProductRank
	err := withConn(ctx, a.db, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, queryTopProduct, dateParam(start), dateParam(end)).
			Scan(&rank.ProductID, &rank.Description, &rank.TotalSold)
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("top product: %w", err)
	}
	return &rank, nil
}

// TopCustomer returns the user with the most purchases between start and end
// inclusive, or nil when no aggregate row falls in range.
func (a *ReportAdapter) TopCustomer(ctx context.Context, start, end time.Time) (*storage.CustomerRank, error) {
	var rank storage.CustomerRank
	err := withConn(ctx, a.db, func(conn *sql.Conn) error {
		return conn.QueryRowContext(ctx, queryTopCustomer, dateParam(start), dateParam(end)).
			Scan(&rank.UserID, &rank.Name, &rank.NationalID, &rank.TotalPurchases)
	})
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("top customer: %w", err)
	}
	return &rank, nil
}

// RevenueByCategory returns every category with positive revenue between
// start and end inclusive, highest first. Never nil.
func (a *ReportAdapter) RevenueByCategory(ctx context.Context, start, end time.Time) ([]storage.CategoryRevenue, error) {
	results := make([]storage.CategoryRevenue, 0)
	err := withConn(ctx, a.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, queryRevenueByCategory, dateParam(start), dateParam(end))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row storage.CategoryRevenue
			var totalStr string
			if err := rows.Scan(&row.CategoryID, &row.Category, &totalStr); err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			total, err := decimal.NewFromString(totalStr)
			if err != nil {
				return fmt.Errorf("parse revenue %q: %w", totalStr, err)
			}
			row.TotalRevenue = total
			results = append(results, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("revenue by category: %w", err)
	}
	return results, nil
}

// YearlyTotals returns the rollup ordered by year. Never nil.
func (a *ReportAdapter) YearlyTotals(ctx context.Context) ([]aggregation.YearlyTotal, error) {
	results := make([]aggregation.YearlyTotal, 0)
	err := withConn(ctx, a.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, queryYearlyTotals)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var row aggregation.YearlyTotal
			if err := rows.Scan(&row.Year, &row.TotalSales); err != nil {
				return fmt.Errorf("scan row: %w", err)
			}
			results = append(results, row)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("yearly totals: %w", err)
	}
	return results, nil
}
