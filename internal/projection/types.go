package projection

import (
	"github.com/shopspring/decimal"
)

// Status tags the outcome of a report so transports can map it without
// inspecting error text.
type Status int

const (
	StatusOK Status = iota
	// StatusEmpty means the query was valid but matched nothing.
	StatusEmpty
	StatusInvalid
	StatusInternal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusInvalid:
		return "invalid"
	case StatusInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// RangeQuery is the inclusive date range every range report accepts.
type RangeQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// SummaryCountResponse is the number of sales in a range.
type SummaryCountResponse struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TotalSales int64  `json:"total_sales"`
}

// TopProductResponse is the best selling product in a range.
type TopProductResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}

// TopCustomerResponse is the user with the most purchases in a range.
type TopCustomerResponse struct {
	Name           string `json:"name"`
	ExternalID     string `json:"external_id"`
	TotalPurchases int64  `json:"total_purchases"`
}

// CategoryRevenueResponse is one category's revenue in a range.
type CategoryRevenueResponse struct {
	Category     string          `json:"category"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// YearlyAverageResponse is the average number of sales per month in a year.
type YearlyAverageResponse struct {
	Year     int     `json:"year"`
	AvgSales float64 `json:"avg_sales"`
}

// RevenueByCategoryResponse wraps the ordered revenue list.
type RevenueByCategoryResponse struct {
	RevenueByCategory []CategoryRevenueResponse `json:"revenue_by_category"`
}

// YearlyAverageListResponse wraps the per-year averages in year order.
type YearlyAverageListResponse struct {
	YearlySales []YearlyAverageResponse `json:"yearly_sales"`
}
