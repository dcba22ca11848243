// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product id is unknown.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category id is unknown.
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository reads and writes catalog products.
type ProductRepository interface {
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts returns products sorted by title. Inactive products are
	// skipped unless filter.IncludeInactive is set. Only CategoryID is
	// applied in the store; text search happens in the usecase.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// SaveProduct creates or overwrites a product.
	SaveProduct(ctx context.Context, product *entity.Product) error

	SetProductActive(ctx context.Context, id string, active bool) error

	DeleteProduct(ctx context.Context, id string) error
}

// CategoryRepository reads and writes catalog categories.
type CategoryRepository interface {
	FindCategoryByID(ctx context.Context, id string) (*entity.Category, error)

	// ListCategories returns all categories sorted by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	SaveCategory(ctx context.Context, category *entity.Category) error
}
