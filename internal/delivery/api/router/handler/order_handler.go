package handler

import (
	"net/http"
	"strings"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/constants"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OrderHandler serves checkout and the caller's order history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(orderUC usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// PlaceOrderRequest is the optional body of POST /orders.
type PlaceOrderRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// PlaceOrder checks out the caller's cart. Clients retrying after a lost
// response send the same Idempotency-Key and receive the original order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req PlaceOrderRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
		}
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), identity, usecase.PlaceOrderInput{
		PaymentMethod:  strings.TrimSpace(req.PaymentMethod),
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(constants.HeaderIdempotencyKey)),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetMyOrder(c echo.Context) error {
	uid, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	order, err := h.orderUC.GetMyOrder(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Invoice renders the order as a printable HTML page. ?name= overrides the
// bill-to name.
func (h *OrderHandler) Invoice(c echo.Context) error {
	uid, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	html, err := h.orderUC.RenderInvoice(c.Request().Context(), uid, c.Param("id"), strings.TrimSpace(c.QueryParam("name")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.HTMLBlob(http.StatusOK, html)
}
