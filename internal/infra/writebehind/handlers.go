package writebehind

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

// CartHandler overwrites the stored cart with the items in the payload.
// The payload is a JSON encoded entity.Cart. A cart stored at a higher
// version is kept and the write fails with repository.ErrStaleWrite.
func CartHandler(carts repository.CartRepository) Handler {
	return func(ctx context.Context, write entity.PendingWrite) error {
		var cart entity.Cart
		if err := json.Unmarshal(write.Payload, &cart); err != nil {
			return errors.Wrap(err, "decode cart payload")
		}
		if cart.UserID == "" {
			cart.UserID = write.Key
		}

		return carts.SaveCart(ctx, cart.UserID, cart.Items.Clone(), write.Version)
	}
}

// UserOrderHandler overwrites the per-user copy of an order. The payload is
// a JSON encoded entity.Order. A copy updated later than the payload is kept.
func UserOrderHandler(userOrders repository.UserOrderRepository) Handler {
	return func(ctx context.Context, write entity.PendingWrite) error {
		var order entity.Order
		if err := json.Unmarshal(write.Payload, &order); err != nil {
			return errors.Wrap(err, "decode order payload")
		}
		if order.ID == "" || order.UserID == "" {
			return errors.Errorf("order payload for %s is missing ids", write.Key)
		}

		return userOrders.SaveUserOrder(ctx, &order)
	}
}

// HandlerParams defines what the built-in handlers write to.
type HandlerParams struct {
	fx.In

	Dispatcher *Dispatcher
	Carts      repository.CartRepository
	UserOrders repository.UserOrderRepository
}

// RegisterHandlers installs the cart and per-user order handlers.
func RegisterHandlers(params HandlerParams) {
	params.Dispatcher.Register(entity.WriteKindCart, CartHandler(params.Carts))
	params.Dispatcher.Register(entity.WriteKindUserOrder, UserOrderHandler(params.UserOrders))
}

// Module provides the dispatcher as the application's write queue.
//
//nolint:gochecknoglobals
var Module = fx.Module("writebehind",
	fx.Provide(
		New,
		func(d *Dispatcher) service.WriteQueue { return d },
	),
	fx.Invoke(RegisterHandlers),
)
