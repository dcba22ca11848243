package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// PlaceOrderInput carries the optional checkout details.
type PlaceOrderInput struct {
	PaymentMethod string
	// IdempotencyKey makes retries of the same checkout return the first order.
	IdempotencyKey string
}

// OrderUsecase places orders and serves a customer's order history.
type OrderUsecase interface {
	// PlaceOrder turns the caller's cart into a pending order. The global
	// order record is written before the cart is cleared.
	PlaceOrder(ctx context.Context, identity *entity.Identity, input PlaceOrderInput) (*entity.Order, error)

	// ListMyOrders returns the caller's orders, newest first.
	ListMyOrders(ctx context.Context, uid string) ([]*entity.Order, error)

	GetMyOrder(ctx context.Context, uid, orderID string) (*entity.Order, error)

	// RenderInvoice renders an HTML invoice. An empty customerName falls
	// back to the profile name or email.
	RenderInvoice(ctx context.Context, uid, orderID, customerName string) ([]byte, error)
}
