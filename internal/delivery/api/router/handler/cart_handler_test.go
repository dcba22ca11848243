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

func snapshotWith(uid string, quantity int) *entity.CartSnapshot {
	items := entity.CartItems{{ProductID: "p1", Title: "Mug", Price: decimal.NewFromInt(120), Quantity: quantity}}

	return &entity.CartSnapshot{
		UserID:    uid,
		Items:     items,
		Total:     decimal.NewFromInt(120).Mul(decimal.NewFromInt(int64(quantity))),
		ItemCount: quantity,
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	cartUC.EXPECT().GetCart(mock.Anything, "user-1").Return(snapshotWith("user-1", 2), nil)

	c, rec := newContext(http.MethodGet, "/cart", "", customer)
	require.NoError(t, h.GetCart(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	snapshot := decodeData[entity.CartSnapshot](t, rec)
	assert.Equal(t, 2, snapshot.ItemCount)
	assert.True(t, decimal.NewFromInt(240).Equal(snapshot.Total))
}

func TestCartHandler_RequiresIdentity(t *testing.T) {
	h := NewCartHandler(mockUsecase.NewMockCartUsecase(t))

	c, rec := newContext(http.MethodGet, "/cart", "", nil)
	require.NoError(t, h.GetCart(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec).Code)
}

func TestCartHandler_AddItem(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	cartUC.EXPECT().AddToCart(mock.Anything, "guest-1", "p1").Return(snapshotWith("guest-1", 1), nil)

	c, rec := newContext(http.MethodPost, "/cart/items", `{"productId":"p1"}`, guest)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "guest-1", decodeData[entity.CartSnapshot](t, rec).UserID)
}

func TestCartHandler_AddItem_MissingProduct(t *testing.T) {
	h := NewCartHandler(mockUsecase.NewMockCartUsecase(t))

	c, rec := newContext(http.MethodPost, "/cart/items", `{}`, customer)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Equal(t, "productId is required", errInfo.Details)
}

func TestCartHandler_AddItem_InactiveProduct(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	cartUC.EXPECT().AddToCart(mock.Anything, "user-1", "p9").Return(nil, domainerrors.ErrProductInactive)

	c, rec := newContext(http.MethodPost, "/cart/items", `{"productId":"p9"}`, customer)
	require.NoError(t, h.AddItem(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "PRODUCT_INACTIVE", decodeError(t, rec).Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		quantity int
	}{
		{name: "set quantity", body: `{"quantity":3}`, quantity: 3},
		{name: "zero removes the line", body: `{"quantity":0}`, quantity: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartUC := mockUsecase.NewMockCartUsecase(t)
			h := NewCartHandler(cartUC)

			cartUC.EXPECT().UpdateQuantity(mock.Anything, "user-1", "p1", tt.quantity).
				Return(&entity.CartSnapshot{UserID: "user-1"}, nil)

			c, rec := newContext(http.MethodPut, "/cart/items/p1", tt.body, customer)
			c.SetParamNames("productId")
			c.SetParamValues("p1")
			require.NoError(t, h.UpdateQuantity(c))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCartHandler_UpdateQuantity_MissingQuantity(t *testing.T) {
	h := NewCartHandler(mockUsecase.NewMockCartUsecase(t))

	c, rec := newContext(http.MethodPut, "/cart/items/p1", `{}`, customer)
	c.SetParamNames("productId")
	c.SetParamValues("p1")
	require.NoError(t, h.UpdateQuantity(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity is required", decodeError(t, rec).Details)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	cartUC := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(cartUC)

	cartUC.EXPECT().RemoveFromCart(mock.Anything, "user-1", "p1").Return(&entity.CartSnapshot{UserID: "user-1"}, nil)
	cartUC.EXPECT().ClearCart(mock.Anything, "user-1").Return(&entity.CartSnapshot{UserID: "user-1"}, nil)

	c, rec := newContext(http.MethodDelete, "/cart/items/p1", "", customer)
	c.SetParamNames("productId")
	c.SetParamValues("p1")
	require.NoError(t, h.RemoveItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodDelete, "/cart", "", customer)
	require.NoError(t, h.Clear(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
