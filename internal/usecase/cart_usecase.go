package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutFunc consumes the cart's items during checkout.
type CheckoutFunc func(items entity.CartItems) error

// CartUsecase keeps one in-memory cart per identity, mirrored to the remote
// store in the background.
type CartUsecase interface {
	// GetCart returns the current snapshot without waiting for the first
	// load. Loading is true until the remote mirror has been read.
	GetCart(ctx context.Context, uid string) (*entity.CartSnapshot, error)

	// AddToCart adds one unit of an active catalog product.
	AddToCart(ctx context.Context, uid, productID string) (*entity.CartSnapshot, error)

	// UpdateQuantity sets a line's quantity. A quantity of zero or less removes the line.
	UpdateQuantity(ctx context.Context, uid, productID string, quantity int) (*entity.CartSnapshot, error)

	RemoveFromCart(ctx context.Context, uid, productID string) (*entity.CartSnapshot, error)

	ClearCart(ctx context.Context, uid string) (*entity.CartSnapshot, error)

	// Checkout runs place with the cart's items while holding the cart, and
	// empties the cart only when place succeeds. Other mutations for the
	// same identity wait until Checkout returns.
	Checkout(ctx context.Context, uid string, place CheckoutFunc) error

	// Evict drops the in-memory cart so the next access reloads it.
	Evict(uid string)
}
