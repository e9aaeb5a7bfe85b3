package projection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/retail-lab/salesboard/internal/core/aggregation"
	"github.com/retail-lab/salesboard/internal/core/daterange"
	"github.com/retail-lab/salesboard/internal/core/storage"
)

const monthsPerYear = 12

var (
	// ErrInvalidQuery marks request validation errors that should return HTTP 400.
	// It always wraps one of the daterange sentinels.
	ErrInvalidQuery = errors.New("invalid report query")

	// ErrInternal is returned for every store failure on the read path.
	// The underlying error is logged, never returned.
	ErrInternal = errors.New("report unavailable")
)

// ReportStore reads the aggregate tables and the yearly rollup.
// start and end are inclusive calendar dates.
type ReportStore interface {
	TopProduct(ctx context.Context, start, end time.Time) (*storage.ProductRank, error)
	TopCustomer(ctx context.Context, start, end time.Time) (*storage.CustomerRank, error)
	RevenueByCategory(ctx context.Context, start, end time.Time) ([]storage.CategoryRevenue, error)
	YearlyTotals(ctx context.Context) ([]aggregation.YearlyTotal, error)
}

// SalesCounter counts ledger rows with start <= datetime < end.
type SalesCounter interface {
	CountSales(ctx context.Context, start, end time.Time) (int64, error)
}

// Service implements the query layer. Heavy reports come from the aggregate
// tables; only the summary count touches the ledger.
type Service struct {
	reports ReportStore
	counter SalesCounter
	loc     *time.Location
	nowFn   func() time.Time
}

// NewService creates a new projection service. Dates are interpreted in loc
// (UTC when nil), and "today" is the server clock in that zone.
//
// The summary count scans the ledger, so its day boundaries are midnight in
// loc. The aggregate reports read rows keyed by UTC calendar day, so for a
// non-UTC loc the same date range covers instants shifted by the zone offset.
// Validation, including the future-end rule, is identical for both.
func NewService(reports ReportStore, counter SalesCounter, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reports: reports,
		counter: counter,
		loc:     loc,
		nowFn:   time.Now,
	}
}

// SummaryCount returns the number of sales between start and end inclusive.
// Zero sales is a valid answer. When the count cannot be determined the error
// is ErrInternal and the count must be ignored.
func (s *Service) SummaryCount(ctx context.Context, start, end string) (*SummaryCountResponse, error) {
	r, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	from := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, s.loc)
	to := from.AddDate(0, 0, r.Days())

	total, err := s.counter.CountSales(ctx, from, to)
	if err != nil {
		return nil, s.internal("summary_count", r, err)
	}

	return &SummaryCountResponse{
		StartDate:  r.Start.Format(daterange.Layout),
		EndDate:    r.End.Format(daterange.Layout),
		TotalSales: total,
	}, nil
}

// TopProduct returns the product with the most units sold in range,
// or nil when no product sold.
func (s *Service) TopProduct(ctx context.Context, start, end string) (*TopProductResponse, error) {
	r, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rank, err := s.reports.TopProduct(ctx, r.Start, r.End)
	if err != nil {
		return nil, s.internal("top_product", r, err)
	}
	if rank == nil {
		return nil, nil
	}

	return &TopProductResponse{
		ProductID: rank.ProductID,
		Name:      rank.Description,
		TotalSold: rank.TotalSold,
	}, nil
}

// TopCustomer returns the user with the most purchases in range, or nil.
func (s *Service) TopCustomer(ctx context.Context, start, end string) (*TopCustomerResponse, error) {
	r, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rank, err := s.reports.TopCustomer(ctx, r.Start, r.End)
	if err != nil {
		return nil, s.internal("top_customer", r, err)
	}
	if rank == nil {
		return nil, nil
	}

	return &TopCustomerResponse{
		Name:           rank.Name,
		ExternalID:     rank.NationalID,
		TotalPurchases: rank.TotalPurchases,
	}, nil
}

// RevenueByCategory returns every category with revenue in range, highest
// first. The result is empty, never nil, when nothing matches.
func (s *Service) RevenueByCategory(ctx context.Context, start, end string) ([]CategoryRevenueResponse, error) {
	r, err := s.parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.RevenueByCategory(ctx, r.Start, r.End)
	if err != nil {
		return nil, s.internal("revenue_by_category", r, err)
	}

	out := make([]CategoryRevenueResponse, 0, len(rows))
	for _, row := range rows {
		if !row.TotalRevenue.IsPositive() {
			continue
		}
		out = append(out, CategoryRevenueResponse{
			Category:     row.Category,
			TotalRevenue: row.TotalRevenue,
		})
	}
	return out, nil
}

// YearlyAverage returns the average monthly sales for every year in the rollup.
func (s *Service) YearlyAverage(ctx context.Context) ([]YearlyAverageResponse, error) {
	totals, err := s.reports.YearlyTotals(ctx)
	if err != nil {
		slog.Error("[Projection] Report query failed", "op", "yearly_average", "error", err)
		return nil, ErrInternal
	}

	out := make([]YearlyAverageResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, YearlyAverageResponse{
			Year:     t.Year,
			AvgSales: float64(t.TotalSales) / monthsPerYear,
		})
	}
	return out, nil
}

// StatusOf tags the outcome of a report call. found is false when the report
// returned none.
func StatusOf(found bool, err error) Status {
	switch {
	case err == nil && found:
		return StatusOK
	case err == nil:
		return StatusEmpty
	case errors.Is(err, ErrInvalidQuery):
		return StatusInvalid
	default:
		return StatusInternal
	}
}

func (s *Service) parseRange(start, end string) (daterange.Range, error) {
	r, err := daterange.Parse(start, end, s.nowFn(), s.loc)
	if err != nil {
		return daterange.Range{}, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	return r, nil
}

func (s *Service) internal(op string, r daterange.Range, err error) error {
	slog.Error("[Projection] Report query failed",
		"op", op,
		"range", r.String(),
		"error", err,
	)
	return ErrInternal
}
