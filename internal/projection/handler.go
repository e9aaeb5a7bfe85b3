package projection

import (
	"net/http"

	"github.com/gin-gonic/gin"
	httperr "github.com/retail-lab/salesboard/internal/core/errors"
)

// RegisterRoutes registers all report routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	sales := r.Group("/v1/sales")
	sales.GET("/summary", s.HandleSummaryCount)
	sales.GET("/top-product", s.HandleTopProduct)
	sales.GET("/top-customer", s.HandleTopCustomer)
	sales.GET("/revenue-by-category", s.HandleRevenueByCategory)
	sales.GET("/monthly-average", s.HandleYearlyAverage)
}

// HandleSummaryCount handles GET /v1/sales/summary?start_date&end_date
func (s *Service) HandleSummaryCount(c *gin.Context) {
	var q RangeQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := s.SummaryCount(c.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleTopProduct handles GET /v1/sales/top-product?start_date&end_date
func (s *Service) HandleTopProduct(c *gin.Context) {
	var q RangeQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := s.TopProduct(c.Request.Context(), q.StartDate, q.EndDate)
	if StatusOf(resp != nil, err) == StatusEmpty {
		writeNotFound(c, "No product found in the period.")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleTopCustomer handles GET /v1/sales/top-customer?start_date&end_date
func (s *Service) HandleTopCustomer(c *gin.Context) {
	var q RangeQuery
	_ = c.ShouldBindQuery(&q)

	resp, err := s.TopCustomer(c.Request.Context(), q.StartDate, q.EndDate)
	if StatusOf(resp != nil, err) == StatusEmpty {
		writeNotFound(c, "No customer found in the period.")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleRevenueByCategory handles GET /v1/sales/revenue-by-category?start_date&end_date
// An empty range is a 200 with an empty list.
func (s *Service) HandleRevenueByCategory(c *gin.Context) {
	var q RangeQuery
	_ = c.ShouldBindQuery(&q)

	rows, err := s.RevenueByCategory(c.Request.Context(), q.StartDate, q.EndDate)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, RevenueByCategoryResponse{RevenueByCategory: rows})
}

// HandleYearlyAverage handles GET /v1/sales/monthly-average
func (s *Service) HandleYearlyAverage(c *gin.Context) {
	rows, err := s.YearlyAverage(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, YearlyAverageListResponse{YearlySales: rows})
}

// writeError maps a service error to one of the canonical responses.
// Raw error text is never written.
func writeError(c *gin.Context, err error) {
	if StatusOf(false, err) != StatusInvalid {
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   httperr.MsgInternal,
		})
		return
	}

	c.JSON(http.StatusBadRequest, httperr.DateRangeResponse(err))
}

func writeNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, httperr.ErrorResponse{
		ErrorType: httperr.HttpNotFound,
		Message:   message,
	})
}
