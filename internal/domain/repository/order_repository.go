package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order id is unknown.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository is the authoritative, global order ledger.
type OrderRepository interface {
	// CreateOrder writes a new order. Writing an id that already exists fails.
	CreateOrder(ctx context.Context, order *entity.Order) error

	FindOrderByID(ctx context.Context, id string) (*entity.Order, error)

	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// CountOrdersByStatus counts orders in the given status.
	CountOrdersByStatus(ctx context.Context, status entity.OrderStatus) (int, error)

	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus, updatedAt time.Time) error
}

// UserOrderRepository is the per-user order history view.
type UserOrderRepository interface {
	// SaveUserOrder overwrites the user's copy of an order unless the stored
	// copy was updated later, in which case it returns ErrStaleWrite.
	SaveUserOrder(ctx context.Context, order *entity.Order) error

	FindUserOrder(ctx context.Context, userID, orderID string) (*entity.Order, error)

	// ListUserOrders returns the user's orders, newest first.
	ListUserOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	UpdateUserOrderStatus(ctx context.Context, userID, orderID string, status entity.OrderStatus, updatedAt time.Time) error
}
