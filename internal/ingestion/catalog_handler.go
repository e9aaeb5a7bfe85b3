package ingestion

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	v1 "github.com/retail-lab/salesboard/internal/api/v1"
	httperr "github.com/retail-lab/salesboard/internal/core/errors"
)

// validatable is implemented by every catalog entity.
type validatable interface {
	Validate() error
}

// CreateUserHandler handles POST /v1/users. Users are keyed by national id,
// so posting an existing one returns the stored row.
func (s *Service) CreateUserHandler(c *gin.Context) {
	var user v1.User
	createEntity(c, s, "user", &user, func(ctx context.Context) error {
		return s.catalog.UpsertUser(ctx, &user)
	})
}

// CreateCategoryHandler handles POST /v1/categories.
func (s *Service) CreateCategoryHandler(c *gin.Context) {
	var category v1.Category
	createEntity(c, s, "category", &category, func(ctx context.Context) error {
		return s.catalog.UpsertCategory(ctx, &category)
	})
}

// CreateProductHandler handles POST /v1/products. The category must exist.
func (s *Service) CreateProductHandler(c *gin.Context) {
	var product v1.Product
	createEntity(c, s, "product", &product, func(ctx context.Context) error {
		return s.catalog.UpsertProduct(ctx, &product)
	})
}

func createEntity(c *gin.Context, s *Service, entity string, dst validatable, upsert func(ctx context.Context) error) {
	if err := s.parseBody(c, dst); err != nil {
		writeError(c, err)
		return
	}

	if err := dst.Validate(); err != nil {
		slog.Warn("Catalog validation failed", "entity", entity, "error", err)
		writeError(c, &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    err.Error(),
		})
		return
	}

	if err := upsert(c.Request.Context()); err != nil {
		writeError(c, persistError(entity, err))
		return
	}

	c.JSON(http.StatusCreated, dst)
}
