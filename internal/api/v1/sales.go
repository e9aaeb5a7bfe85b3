package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// User is a customer identity. Immutable once created; referenced by sales.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	NationalID string `json:"national_id"`
}

// Validate ensures the user has its required attributes.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(u.NationalID) == "" {
		return fmt.Errorf("national_id is required")
	}
	return nil
}

// Category groups products under a label.
type Category struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// Product belongs to exactly one category.
// Price is the current price; sales do not snapshot it, so revenue aggregates
// always use the price at refresh time.
type Product struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (p *Product) Validate() error {
	if p.CategoryID <= 0 {
		return fmt.Errorf("category_id is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return fmt.Errorf("description is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

// Sale is one ledger transaction: a user buying one unit of each listed product.
// The same product may appear more than once.
type Sale struct {
	// ID is assigned by the ledger. Together with OccurredAt it forms the
	// primary key of the partitioned sales table.
	ID int64 `json:"id"`

	UserID int64 `json:"user_id"`

	// OccurredAt is the sale timestamp and the partition key.
	OccurredAt time.Time `json:"datetime"`

	ProductIDs []int64 `json:"product_ids"`
}

// Validate ensures the sale has all required attributes.
func (s *Sale) Validate() error {
	if s.UserID <= 0 {
		return fmt.Errorf("user_id is required")
	}
	if s.OccurredAt.IsZero() {
		return fmt.Errorf("datetime is required")
	}
	if len(s.ProductIDs) == 0 {
		return fmt.Errorf("at least one product_id is required")
	}
	for i, id := range s.ProductIDs {
		if id <= 0 {
			return fmt.Errorf("product_ids[%d] must be positive", i)
		}
	}
	return nil
}
