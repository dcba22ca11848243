package documents

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/docstore"
)

type productRepository struct {
	coll *docstore.Collection
}

// NewProductRepository opens the products collection.
func NewProductRepository(ctx context.Context, cols *Collections, url string) (repository.ProductRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &productRepository{coll: coll}, nil
}

func (repo *productRepository) FindProductByID(ctx context.Context, id string) (*entity.Product, error) {
	doc := &productDoc{ID: id}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get product")
	}

	return doc.toDomain(), nil
}

func (repo *productRepository) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.coll.Query()
	if filter.CategoryID != "" {
		query = query.Where("categoryId", "=", filter.CategoryID)
	}

	docs, err := collect[productDoc](ctx, query.Get(ctx))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		// Not every driver can filter on booleans.
		if !doc.IsActive && !filter.IncludeInactive {
			continue
		}
		products = append(products, doc.toDomain())
	}

	slices.SortStableFunc(products, func(a, b *entity.Product) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
			strings.Compare(a.ID, b.ID),
		)
	})

	return products, nil
}

func (repo *productRepository) SaveProduct(ctx context.Context, product *entity.Product) error {
	if err := repo.coll.Put(ctx, fromProductDomain(product)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save product")
	}

	return nil
}

func (repo *productRepository) SetProductActive(ctx context.Context, id string, active bool) error {
	err := repo.coll.Update(ctx, &productDoc{ID: id}, docstore.Mods{"isActive": active})
	if err != nil {
		if errors.IsNotFound(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update product")
	}

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := repo.FindProductByID(ctx, id); err != nil {
		return err
	}
	if err := repo.coll.Delete(ctx, &productDoc{ID: id}); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete product")
	}

	return nil
}

type categoryRepository struct {
	coll *docstore.Collection
}

// NewCategoryRepository opens the categories collection.
func NewCategoryRepository(ctx context.Context, cols *Collections, url string) (repository.CategoryRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &categoryRepository{coll: coll}, nil
}

func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id string) (*entity.Category, error) {
	doc := &categoryDoc{ID: id}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to get category")
	}

	return &entity.Category{ID: doc.ID, Name: doc.Name}, nil
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	docs, err := collect[categoryDoc](ctx, repo.coll.Query().Get(ctx))
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list categories")
	}

	categories := make([]*entity.Category, len(docs))
	for i, doc := range docs {
		categories[i] = &entity.Category{ID: doc.ID, Name: doc.Name}
	}
	slices.SortFunc(categories, func(a, b *entity.Category) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	return categories, nil
}

func (repo *categoryRepository) SaveCategory(ctx context.Context, category *entity.Category) error {
	if err := repo.coll.Put(ctx, &categoryDoc{ID: category.ID, Name: category.Name}); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save category")
	}

	return nil
}
