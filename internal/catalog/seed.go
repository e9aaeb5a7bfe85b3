// Package catalog loads the YAML seed file for reference data and applies it
// through the catalog store. Applying a seed twice is a no-op.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	v1 "github.com/retail-lab/salesboard/internal/api/v1"
	"github.com/retail-lab/salesboard/internal/core/storage"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Seed is the top-level document of a catalog seed file.
type Seed struct {
	Categories []CategorySeed `yaml:"categories"`
	Products   []ProductSeed  `yaml:"products"`
	Users      []UserSeed     `yaml:"users"`
}

type CategorySeed struct {
	Description string `yaml:"description"`
}

// ProductSeed references its category by description so seed files never
// depend on generated ids. Price is a string to keep it exact.
type ProductSeed struct {
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	Price       string `yaml:"price"`
}

type UserSeed struct {
	Name       string `yaml:"name"`
	NationalID string `yaml:"national_id"`
}

// Stats counts the rows applied per entity.
type Stats struct {
	Categories int
	Products   int
	Users      int
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}

// Parse decodes a seed document. Unknown keys are rejected.
func Parse(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &seed, nil
		}
		return nil, err
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks every entry and that each product names a category
// declared in the same file.
func (s *Seed) Validate() error {
	categories := make(map[string]struct{}, len(s.Categories))
	for i, c := range s.Categories {
		if strings.TrimSpace(c.Description) == "" {
			return fmt.Errorf("categories[%d]: description is required", i)
		}
		categories[c.Description] = struct{}{}
	}

	for i, p := range s.Products {
		if strings.TrimSpace(p.Description) == "" {
			return fmt.Errorf("products[%d]: description is required", i)
		}
		if _, ok := categories[p.Category]; !ok {
			return fmt.Errorf("products[%d]: unknown category %q", i, p.Category)
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return fmt.Errorf("products[%d]: invalid price %q", i, p.Price)
		}
		if price.IsNegative() {
			return fmt.Errorf("products[%d]: price must not be negative", i)
		}
	}

	for i, u := range s.Users {
		user := v1.User{Name: u.Name, NationalID: u.NationalID}
		if err := user.Validate(); err != nil {
			return fmt.Errorf("users[%d]: %w", i, err)
		}
	}
	return nil
}

// Apply upserts the seed through store: categories first, then products
// (resolved against the category ids just written), then users.
func Apply(ctx context.Context, store storage.CatalogStore, seed *Seed) (Stats, error) {
	var stats Stats

	categoryIDs := make(map[string]int64, len(seed.Categories))
	for _, c := range seed.Categories {
		category := v1.Category{Description: c.Description}
		if err := store.UpsertCategory(ctx, &category); err != nil {
			return stats, fmt.Errorf("upsert category %q: %w", c.Description, err)
		}
		categoryIDs[c.Description] = category.ID
		stats.Categories++
	}

	for _, p := range seed.Products {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			return stats, fmt.Errorf("product %q: unknown category %q", p.Description, p.Category)
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return stats, fmt.Errorf("product %q: invalid price: %w", p.Description, err)
		}

		product := v1.Product{CategoryID: categoryID, Description: p.Description, Price: price}
		if err := store.UpsertProduct(ctx, &product); err != nil {
			return stats, fmt.Errorf("upsert product %q: %w", p.Description, err)
		}
		stats.Products++
	}

	for _, u := range seed.Users {
		user := v1.User{Name: u.Name, NationalID: u.NationalID}
		if err := store.UpsertUser(ctx, &user); err != nil {
			return stats, fmt.Errorf("upsert user %q: %w", u.NationalID, err)
		}
		stats.Users++
	}

	slog.Info("Catalog seed applied",
		"categories", stats.Categories,
		"products", stats.Products,
		"users", stats.Users)
	return stats, nil
}
