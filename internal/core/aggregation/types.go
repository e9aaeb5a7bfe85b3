package aggregation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind names one aggregate family maintained by the refresh engine.
type Kind string

const (
	KindProductSales      Kind = "product_sales"
	KindCategoryRevenue   Kind = "category_revenue"
	KindCustomerPurchases Kind = "customer_purchases"
	KindYearlyRollup      Kind = "yearly_rollup"
)

// Policy decides how a kind's window is chosen on each refresh.
type Policy int

const (
	// PolicyIncremental recomputes a trailing day-aligned window and upserts the result.
	PolicyIncremental Policy = iota
	// PolicyFullRebuild recomputes the whole ledger (materialized view refresh).
	PolicyFullRebuild
)

func (p Policy) String() string {
	switch p {
	case PolicyIncremental:
		return "incremental"
	case PolicyFullRebuild:
		return "full_rebuild"
	default:
		return "unknown"
	}
}

// ProductSalesRow is one (day, product) row of product_sales_aggregated.
type ProductSalesRow struct {
	SaleDate    time.Time `json:"sale_date"`
	ProductID   int64     `json:"product_id"`
	Description string    `json:"description"`
	TotalSold   int64     `json:"total_sold"`
}

// CategoryRevenueRow is one (day, category) row of category_revenue_aggregated.
type CategoryRevenueRow struct {
	SaleDate     time.Time       `json:"sale_date"`
	CategoryID   int64           `json:"category_id"`
	Category     string          `json:"category"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CustomerPurchasesRow is one (day, user) row of customer_purchases_aggregated.
type CustomerPurchasesRow struct {
	SaleDate       time.Time `json:"sale_date"`
	UserID         int64     `json:"user_id"`
	TotalPurchases int64     `json:"total_purchases"`
}

// YearlyTotal is one row of the yearly_total_sales rollup.
type YearlyTotal struct {
	Year       int
	TotalSales int64
}

// RefreshResult summarizes one recompute-window run.
type RefreshResult struct {
	Kind         Kind
	Window       Window
	RowsUpserted int64
	Duration     time.Duration
}
