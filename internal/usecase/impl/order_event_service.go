package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const orderUpdateTitle = "Order update"

// OrderEventServiceParams defines the dependencies of the order event service.
type OrderEventServiceParams struct {
	fx.In

	Logger        *slog.Logger
	Orders        repository.OrderRepository
	UserOrders    repository.UserOrderRepository
	Devices       repository.DeviceRepository
	Notifications service.NotificationService
}

type orderEventService struct {
	orders        repository.OrderRepository
	userOrders    repository.UserOrderRepository
	devices       repository.DeviceRepository
	notifications service.NotificationService
	logger        *slog.Logger
}

// NewOrderEventService creates the worker side order event handler.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		orders:        params.Orders,
		userOrders:    params.UserOrders,
		devices:       params.Devices,
		notifications: params.Notifications,
		logger:        params.Logger,
	}
}

func (s *orderEventService) HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error {
	if event == nil || event.OrderID == "" || event.UserID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("order event requires order and user ids")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("event_type", string(event.Type)),
		slog.String("order_id", event.OrderID),
		slog.String("uid", event.UserID),
	)
	if event.RequestID != "" {
		logger = logger.With(slog.String("origin_request_id", event.RequestID))
	}

	order, err := s.orders.FindOrderByID(ctx, event.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to load order")
	}
	if order.UserID != event.UserID {
		return domainerrors.ErrValidationFailed.WithDetails("event user does not own the order")
	}

	// The global record wins over whatever the customer's copy holds, unless
	// the copy was already written from a later state.
	switch err := s.userOrders.SaveUserOrder(ctx, order); {
	case errors.Is(err, repository.ErrStaleWrite):
		logger.Debug("Customer order already newer", slog.String("status", order.Status.String()))
	case err != nil:
		return errors.Wrap(err, "failed to reconcile customer order")
	default:
		logger.Debug("Customer order reconciled", slog.String("status", order.Status.String()))
	}

	if event.Type != entity.OrderEventStatusChanged {
		return nil
	}
	// A newer change is already recorded; its own event will notify.
	if event.Status != order.Status {
		logger.Debug("Skipping stale status notification", slog.String("event_status", event.Status.String()))

		return nil
	}

	// Push failures are not retried: a redelivery would notify twice.
	s.notifyStatusChange(ctx, logger, order)

	return nil
}

func (s *orderEventService) notifyStatusChange(ctx context.Context, logger *slog.Logger, order *entity.Order) {
	devices, err := s.devices.FindActiveDevicesByUser(ctx, order.UserID)
	if err != nil {
		logger.Warn("Failed to load devices", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	byToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		byToken[device.FCMToken] = device
	}

	result, err := s.notifications.Send(ctx, &service.PushMessage{
		Tokens: tokens,
		Title:  orderUpdateTitle,
		Body:   "Your order #" + order.InvoiceNumber() + " is now " + order.Status.String(),
		Data: map[string]string{
			"orderId": order.ID,
			"status":  order.Status.String(),
		},
	})
	if err != nil {
		logger.Warn("Failed to send order notification", slog.Any("error", err))
	}
	if result == nil {
		return
	}

	for _, token := range result.InvalidTokens {
		device, ok := byToken[token]
		if !ok {
			continue
		}
		if err := s.devices.DeactivateDevice(ctx, device.ID); err != nil {
			logger.Warn("Failed to deactivate device", slog.String("device_id", device.ID.String()), slog.Any("error", err))
		}
	}

	logger.Info("Order notification sent",
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int("deactivated", len(result.InvalidTokens)),
	)
}
