package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts_PassesFilter(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(catalogUC)

	catalogUC.EXPECT().ListProducts(mock.Anything, entity.ProductFilter{CategoryID: "mugs", Query: "blue"}).
		Return([]*entity.Product{{ID: "p1", Title: "Blue mug", RegularPrice: decimal.NewFromInt(120), IsActive: true}}, nil)

	c, rec := newContext(http.MethodGet, "/catalog/products?category=mugs&q=blue", "", nil)
	require.NoError(t, h.ListProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	products := decodeData[[]entity.Product](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "Blue mug", products[0].Title)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(catalogUC)

	catalogUC.EXPECT().GetProduct(mock.Anything, "nope").Return(nil, domainerrors.ErrProductNotFound)

	c, rec := newContext(http.MethodGet, "/catalog/products/nope", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, h.GetProduct(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, rec).Code)
}

func TestCatalogHandler_ListCategories(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCatalogHandler(catalogUC)

	catalogUC.EXPECT().ListCategories(mock.Anything).
		Return([]*entity.Category{{ID: "mugs", Name: "Mugs"}}, nil)

	c, rec := newContext(http.MethodGet, "/catalog/categories", "", nil)
	require.NoError(t, h.ListCategories(c))

	assert.Equal(t, []entity.Category{{ID: "mugs", Name: "Mugs"}}, decodeData[[]entity.Category](t, rec))
}
