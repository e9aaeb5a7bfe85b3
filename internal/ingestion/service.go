package ingestion

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/retail-lab/salesboard/internal/core/aggregation"
	"github.com/retail-lab/salesboard/internal/core/storage"
)

const defaultSalesPageSize = 100

// Refresher runs one on-demand refresh through the engine's in-progress guard.
type Refresher interface {
	Trigger(ctx context.Context, kind aggregation.Kind) (aggregation.RefreshResult, error)
}

// AggregateReader reads stored daily aggregate rows for operator inspection.
type AggregateReader interface {
	ProductSales(ctx context.Context, w aggregation.Window) ([]aggregation.ProductSalesRow, error)
	CategoryRevenue(ctx context.Context, w aggregation.Window) ([]aggregation.CategoryRevenueRow, error)
	CustomerPurchases(ctx context.Context, w aggregation.Window) ([]aggregation.CustomerPurchasesRow, error)
}

// Service is the write path: ledger inserts, catalog administration, the
// manual refresh trigger and a read-only view of stored daily aggregates.
// It never writes aggregate rows itself.
type Service struct {
	ledger           storage.LedgerStore
	catalog          storage.CatalogStore
	refresher        Refresher
	aggregates       AggregateReader
	maxBodySizeBytes int
	loc              *time.Location
	nowFn            func() time.Time
}

func NewService(
	ledger storage.LedgerStore,
	catalog storage.CatalogStore,
	refresher Refresher,
	aggregates AggregateReader,
	maxBodySizeMB int,
	loc *time.Location,
) *Service {
	if ledger == nil {
		panic("ingestion: ledger store must not be nil")
	}
	if catalog == nil {
		panic("ingestion: catalog store must not be nil")
	}
	if refresher == nil {
		panic("ingestion: refresher must not be nil")
	}
	if aggregates == nil {
		panic("ingestion: aggregate reader must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		ledger:           ledger,
		catalog:          catalog,
		refresher:        refresher,
		aggregates:       aggregates,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		loc:              loc,
		nowFn:            time.Now,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/sales", s.RecordSaleHandler)
	r.GET("/v1/users/:id/sales", s.ListUserSalesHandler)

	r.POST("/v1/users", s.CreateUserHandler)
	r.POST("/v1/categories", s.CreateCategoryHandler)
	r.POST("/v1/products", s.CreateProductHandler)

	r.POST("/v1/admin/refresh/:kind", s.TriggerRefreshHandler)
	r.GET("/v1/admin/aggregates/:kind", s.DailyAggregatesHandler)
}
