package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/infra/metrics"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	publishTimeout        = 10 * time.Second
	defaultCustomerName   = "Customer"
)

// OrderServiceParams defines the dependencies of the order service.
type OrderServiceParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	Carts       usecase.CartUsecase
	Orders      repository.OrderRepository
	UserOrders  repository.UserOrderRepository
	Users       repository.UserRepository
	Queue       service.WriteQueue
	Publisher   service.EventPublisher
	Idempotency service.IdempotencyStore
	Invoices    service.InvoiceRenderer
	Metrics     *metrics.OrderMetrics `optional:"true"`
}

type orderService struct {
	carts          usecase.CartUsecase
	orders         repository.OrderRepository
	userOrders     repository.UserOrderRepository
	users          repository.UserRepository
	queue          service.WriteQueue
	publisher      service.EventPublisher
	idempotency    service.IdempotencyStore
	invoices       service.InvoiceRenderer
	metrics        *metrics.OrderMetrics
	logger         *slog.Logger
	idempotencyTTL time.Duration
	now            func() time.Time
	newID          func() string

	background sync.WaitGroup
}

// NewOrderService creates a new order service instance. Stopping the
// application waits for event publishes still running.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	ttl := defaultIdempotencyTTL
	if params.Config.Idempotency != nil && params.Config.Idempotency.TTL > 0 {
		ttl = params.Config.Idempotency.TTL
	}

	s := &orderService{
		carts:          params.Carts,
		orders:         params.Orders,
		userOrders:     params.UserOrders,
		users:          params.Users,
		queue:          params.Queue,
		publisher:      params.Publisher,
		idempotency:    params.Idempotency,
		invoices:       params.Invoices,
		metrics:        params.Metrics,
		logger:         params.Logger,
		idempotencyTTL: ttl,
		now:            time.Now,
		newID:          uuid.NewString,
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			done := make(chan struct{})
			go func() {
				s.background.Wait()
				close(done)
			}()
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return errors.Wrap(ctx.Err(), "order events still publishing")
			}
		},
	})

	return s
}

func (s *orderService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// PlaceOrder writes the cart as a new order. Nothing is written and the cart
// is left alone when a precondition fails or the global write fails.
func (s *orderService) PlaceOrder(ctx context.Context, identity *entity.Identity, input usecase.PlaceOrderInput) (*entity.Order, error) {
	if identity == nil || identity.UID == "" {
		return nil, domainerrors.ErrIdentityRequired
	}
	uid := identity.UID
	logger := s.getLogger(ctx).With(slog.String("uid", uid))

	key := input.IdempotencyKey
	if key != "" {
		existing, reserved, err := s.idempotency.Reserve(ctx, uid, key, s.idempotencyTTL)
		switch {
		case err != nil:
			logger.Warn("Idempotency store unavailable, placing order without key", slog.Any("error", err))
			key = ""
		case !reserved && existing != "":
			return s.replay(ctx, uid, existing)
		case !reserved:
			return nil, domainerrors.ErrOrderInProgress
		}
	}

	var placed *entity.Order
	err := s.carts.Checkout(ctx, uid, func(items entity.CartItems) error {
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		order := entity.NewOrder(s.newID(), uid, s.now().UTC(), items, input.PaymentMethod)
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			logger.Error("Failed to write order", slog.String("order_id", order.ID), slog.Any("error", err))

			return domainerrors.ErrOrderPlacementFailed.WrapMessage(err.Error())
		}

		s.enqueueUserOrder(ctx, order)
		placed = order

		return nil
	})
	if err != nil {
		s.releaseKey(ctx, uid, key)
		s.metrics.IncFailed(failureReason(err))

		return nil, err
	}

	if key != "" {
		if err := s.idempotency.Complete(ctx, uid, key, placed.ID, s.idempotencyTTL); err != nil {
			logger.Warn("Failed to record idempotency key", slog.Any("error", err))
		}
	}

	s.metrics.IncPlaced()
	logger.Info("Order placed",
		slog.String("order_id", placed.ID),
		slog.String("total", placed.TotalAmount.StringFixed(2)),
		slog.Int("items", len(placed.OrderItems)),
	)

	s.publish(ctx, &entity.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       entity.OrderEventPlaced,
		OrderID:    placed.ID,
		UserID:     uid,
		Status:     placed.Status,
		OccurredAt: placed.OrderDate,
	})

	return placed, nil
}

// replay returns the order an earlier request with the same key produced.
func (s *orderService) replay(ctx context.Context, uid, orderID string) (*entity.Order, error) {
	order, err := s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to load replayed order")
	}
	if order.UserID != uid {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (s *orderService) releaseKey(ctx context.Context, uid, key string) {
	if key == "" {
		return
	}
	if err := s.idempotency.Release(ctx, uid, key); err != nil {
		s.getLogger(ctx).Warn("Failed to release idempotency key", slog.String("uid", uid), slog.Any("error", err))
	}
}

// enqueueUserOrder queues the customer's copy of order. The worker rebuilds
// the same copy from the global record when the placed event arrives.
func (s *orderService) enqueueUserOrder(ctx context.Context, order *entity.Order) {
	payload, err := json.Marshal(order)
	if err != nil {
		s.getLogger(ctx).Error("Failed to encode user order", slog.String("order_id", order.ID), slog.Any("error", err))

		return
	}

	s.queue.Enqueue(entity.PendingWrite{
		Kind:    entity.WriteKindUserOrder,
		Key:     order.UserID + "/" + order.ID,
		Payload: payload,
		Version: uint64(order.UpdatedAt.UnixNano()),
	})
}

func (s *orderService) publish(ctx context.Context, event *entity.OrderEvent) {
	logger := s.getLogger(ctx)

	s.background.Add(1)
	go func() {
		defer s.background.Done()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := s.publisher.PublishOrderEvent(pubCtx, event); err != nil {
			logger.Warn("Failed to publish order event",
				slog.String("order_id", event.OrderID),
				slog.String("type", string(event.Type)),
				slog.Any("error", err),
			)
		}
	}()
}

func (s *orderService) ListMyOrders(ctx context.Context, uid string) ([]*entity.Order, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	orders, err := s.userOrders.ListUserOrders(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	return orders, nil
}

// GetMyOrder reads the customer's copy and falls back to the global record
// while the copy has not been written yet.
func (s *orderService) GetMyOrder(ctx context.Context, uid, orderID string) (*entity.Order, error) {
	if uid == "" {
		return nil, domainerrors.ErrIdentityRequired
	}

	order, err := s.userOrders.FindUserOrder(ctx, uid, orderID)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, repository.ErrOrderNotFound) {
		return nil, errors.Wrap(err, "failed to find user order")
	}

	order, err = s.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != uid {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}

func (s *orderService) RenderInvoice(ctx context.Context, uid, orderID, customerName string) ([]byte, error) {
	order, err := s.GetMyOrder(ctx, uid, orderID)
	if err != nil {
		return nil, err
	}

	if customerName == "" {
		customerName = s.customerName(ctx, uid)
	}

	html, err := s.invoices.RenderInvoice(ctx, &service.InvoiceData{Order: order, CustomerName: customerName})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invoice")
	}

	return html, nil
}

func (s *orderService) customerName(ctx context.Context, uid string) string {
	profile, err := s.users.FindProfile(ctx, uid)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.getLogger(ctx).Warn("Failed to load profile for invoice", slog.String("uid", uid), slog.Any("error", err))
		}

		return defaultCustomerName
	}

	if name := profile.FullName(); name != "" {
		return name
	}
	if profile.Email != "" {
		return profile.Email
	}

	return defaultCustomerName
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domainerrors.ErrCartNotReady):
		return "cart_not_ready"
	case errors.Is(err, domainerrors.ErrOrderPlacementFailed):
		return "store"
	default:
		return "other"
	}
}
