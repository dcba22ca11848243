package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase serves the public storefront catalog.
type CatalogUsecase interface {
	// ListProducts returns active products in the category (if any) whose
	// title or category name contains the query, sorted by title.
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)

	// GetProduct returns an active product.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
