package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_PlaceOrder(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)

	orderUC.EXPECT().PlaceOrder(mock.Anything, customer, usecase.PlaceOrderInput{
		PaymentMethod:  "cod",
		IdempotencyKey: "key-1",
	}).Return(&entity.Order{ID: "order-1", UserID: "user-1", Status: entity.OrderStatusPending}, nil)

	c, rec := newContext(http.MethodPost, "/orders", `{"paymentMethod":" cod "}`, customer)
	c.Request().Header.Set(constants.HeaderIdempotencyKey, "key-1")
	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "order-1", decodeData[entity.Order](t, rec).ID)
}

func TestOrderHandler_PlaceOrder_NoBody(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)

	orderUC.EXPECT().PlaceOrder(mock.Anything, guest, usecase.PlaceOrderInput{}).
		Return(&entity.Order{ID: "order-2", UserID: "guest-1"}, nil)

	c, rec := newContext(http.MethodPost, "/orders", "", guest)
	require.NoError(t, h.PlaceOrder(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderHandler_PlaceOrder_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "empty cart", err: domainerrors.ErrEmptyCart, wantStatus: http.StatusUnprocessableEntity, wantCode: "EMPTY_CART"},
		{name: "duplicate in flight", err: domainerrors.ErrOrderInProgress, wantStatus: http.StatusConflict, wantCode: "ORDER_IN_PROGRESS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderUC := mockUsecase.NewMockOrderUsecase(t)
			h := NewOrderHandler(orderUC)
			orderUC.EXPECT().PlaceOrder(mock.Anything, customer, mock.Anything).Return(nil, tt.err)

			c, rec := newContext(http.MethodPost, "/orders", "", customer)
			require.NoError(t, h.PlaceOrder(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestOrderHandler_PlaceOrder_UnexpectedError(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)
	orderUC.EXPECT().PlaceOrder(mock.Anything, customer, mock.Anything).Return(nil, assert.AnError)

	c, _ := newContext(http.MethodPost, "/orders", "", customer)

	// left for the central error handler
	assert.ErrorIs(t, h.PlaceOrder(c), assert.AnError)
}

func TestOrderHandler_ListAndGet(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)

	orderUC.EXPECT().ListMyOrders(mock.Anything, "user-1").
		Return([]*entity.Order{{ID: "b"}, {ID: "a"}}, nil)
	orderUC.EXPECT().GetMyOrder(mock.Anything, "user-1", "missing").Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newContext(http.MethodGet, "/orders", "", customer)
	require.NoError(t, h.ListMyOrders(c))
	orders := decodeData[[]entity.Order](t, rec)
	require.Len(t, orders, 2)
	assert.Equal(t, "b", orders[0].ID)

	c, rec = newContext(http.MethodGet, "/orders/missing", "", customer)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.GetMyOrder(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_Invoice(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(orderUC)

	orderUC.EXPECT().RenderInvoice(mock.Anything, "user-1", "order-1", "Jane Doe").
		Return([]byte("<html>invoice</html>"), nil)

	c, rec := newContext(http.MethodGet, "/orders/order-1/invoice?name=Jane+Doe", "", customer)
	c.SetParamNames("id")
	c.SetParamValues("order-1")
	require.NoError(t, h.Invoice(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<html>invoice</html>", rec.Body.String())
}
