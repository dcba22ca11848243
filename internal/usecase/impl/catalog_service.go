package impl

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository) usecase.CatalogUsecase {
	return &catalogService{
		products:   products,
		categories: categories,
	}
}

func (s *catalogService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := s.products.ListProducts(ctx, entity.ProductFilter{CategoryID: filter.CategoryID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" {
		return products, nil
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = strings.ToLower(category.Name)
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Title), query) ||
			strings.Contains(categoryNames[product.CategoryID], query) {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.products.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// Inactive products are hidden from shoppers.
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}
