package mocks

//go:generate mockery --name RefreshStore --srcpkg github.com/retail-lab/salesboard/internal/aggregation --output ./aggregation --outpkg aggregationmocks --with-expecter
//go:generate mockery --name ReportStore --srcpkg github.com/retail-lab/salesboard/internal/projection --output ./projection --outpkg projectionmocks --with-expecter
//go:generate mockery --name LedgerStore --srcpkg github.com/retail-lab/salesboard/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name CatalogStore --srcpkg github.com/retail-lab/salesboard/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Refresher --srcpkg github.com/retail-lab/salesboard/internal/ingestion --output ./ingestion --outpkg ingestionmocks --with-expecter
//go:generate mockery --name AggregateReader --srcpkg github.com/retail-lab/salesboard/internal/ingestion --output ./ingestion --outpkg ingestionmocks --with-expecter
