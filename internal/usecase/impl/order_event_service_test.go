package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderEventServiceFixtures struct {
	service       *orderEventService
	orders        *mockRepo.MockOrderRepository
	userOrders    *mockRepo.MockUserOrderRepository
	devices       *mockRepo.MockDeviceRepository
	notifications *mockSvc.MockNotificationService
}

func createTestOrderEventService(t *testing.T) orderEventServiceFixtures {
	f := orderEventServiceFixtures{
		orders:        mockRepo.NewMockOrderRepository(t),
		userOrders:    mockRepo.NewMockUserOrderRepository(t),
		devices:       mockRepo.NewMockDeviceRepository(t),
		notifications: mockSvc.NewMockNotificationService(t),
	}
	f.service = NewOrderEventService(OrderEventServiceParams{
		Logger:        newDiscardLogger(),
		Orders:        f.orders,
		UserOrders:    f.userOrders,
		Devices:       f.devices,
		Notifications: f.notifications,
	}).(*orderEventService)

	return f
}

func TestOrderEventService_PlacedReconcilesCopy(t *testing.T) {
	f := createTestOrderEventService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "abcdef1234", UserID: "u1", Status: entity.OrderStatusPending}

	f.orders.EXPECT().FindOrderByID(ctx, "abcdef1234").Return(order, nil)
	f.userOrders.EXPECT().SaveUserOrder(ctx, order).Return(nil)

	err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{Type: entity.OrderEventPlaced, OrderID: "abcdef1234", UserID: "u1"})
	require.NoError(t, err)
}

func TestOrderEventService_StatusChangedNotifies(t *testing.T) {
	f := createTestOrderEventService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "abcdef1234", UserID: "u1", Status: entity.OrderStatusDelivered}
	stale := &entity.UserDevice{ID: uuid.New(), UserID: "u1", FCMToken: "stale"}
	live := &entity.UserDevice{ID: uuid.New(), UserID: "u1", FCMToken: "live"}

	f.orders.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	f.userOrders.EXPECT().SaveUserOrder(ctx, order).Return(nil)
	f.devices.EXPECT().FindActiveDevicesByUser(ctx, "u1").Return([]*entity.UserDevice{stale, live}, nil)
	f.notifications.EXPECT().Send(ctx, &service.PushMessage{
		Tokens: []string{"stale", "live"},
		Title:  "Order update",
		Body:   "Your order #ABCDEF1 is now Delivered",
		Data:   map[string]string{"orderId": order.ID, "status": "Delivered"},
	}).Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale"}}, nil)
	f.devices.EXPECT().DeactivateDevice(ctx, stale.ID).Return(nil)

	err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{
		Type:    entity.OrderEventStatusChanged,
		OrderID: order.ID,
		UserID:  "u1",
		Status:  entity.OrderStatusDelivered,
	})
	require.NoError(t, err)
}

func TestOrderEventService_NewerCustomerCopyIsKept(t *testing.T) {
	f := createTestOrderEventService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1", UserID: "u1", Status: entity.OrderStatusPending}

	f.orders.EXPECT().FindOrderByID(ctx, "o1").Return(order, nil)
	f.userOrders.EXPECT().SaveUserOrder(ctx, order).Return(errors.Wrap(repository.ErrStaleWrite, "save user order"))

	err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{Type: entity.OrderEventPlaced, OrderID: "o1", UserID: "u1"})
	require.NoError(t, err)
}

func TestOrderEventService_StaleStatusSkipsNotification(t *testing.T) {
	f := createTestOrderEventService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1", UserID: "u1", Status: entity.OrderStatusDelivered}

	f.orders.EXPECT().FindOrderByID(ctx, "o1").Return(order, nil)
	f.userOrders.EXPECT().SaveUserOrder(ctx, order).Return(nil)

	err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{
		Type:    entity.OrderEventStatusChanged,
		OrderID: "o1",
		UserID:  "u1",
		Status:  entity.OrderStatusProcessing,
	})
	require.NoError(t, err)
}

func TestOrderEventService_PushFailureIsNotRetried(t *testing.T) {
	f := createTestOrderEventService(t)
	ctx := context.Background()
	order := &entity.Order{ID: "o1", UserID: "u1", Status: entity.OrderStatusProcessing}

	f.orders.EXPECT().FindOrderByID(ctx, "o1").Return(order, nil)
	f.userOrders.EXPECT().SaveUserOrder(ctx, order).Return(nil)
	f.devices.EXPECT().FindActiveDevicesByUser(ctx, "u1").Return([]*entity.UserDevice{{FCMToken: "t"}}, nil)
	f.notifications.EXPECT().Send(ctx, &service.PushMessage{
		Tokens: []string{"t"},
		Title:  "Order update",
		Body:   "Your order #O1 is now Processing",
		Data:   map[string]string{"orderId": "o1", "status": "Processing"},
	}).Return(nil, assert.AnError)

	err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{
		Type:    entity.OrderEventStatusChanged,
		OrderID: "o1",
		UserID:  "u1",
		Status:  entity.OrderStatusProcessing,
	})
	require.NoError(t, err)
}

func TestOrderEventService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing ids are permanent", func(t *testing.T) {
		f := createTestOrderEventService(t)
		err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{OrderID: "o1"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown order is permanent", func(t *testing.T) {
		f := createTestOrderEventService(t)
		f.orders.EXPECT().FindOrderByID(ctx, "o1").Return(nil, repository.ErrOrderNotFound)

		err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{OrderID: "o1", UserID: "u1"})
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("owner mismatch is permanent", func(t *testing.T) {
		f := createTestOrderEventService(t)
		f.orders.EXPECT().FindOrderByID(ctx, "o1").Return(&entity.Order{ID: "o1", UserID: "u2"}, nil)

		err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{OrderID: "o1", UserID: "u1"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("store failure is retryable", func(t *testing.T) {
		f := createTestOrderEventService(t)
		order := &entity.Order{ID: "o1", UserID: "u1"}
		f.orders.EXPECT().FindOrderByID(ctx, "o1").Return(order, nil)
		f.userOrders.EXPECT().SaveUserOrder(ctx, order).Return(assert.AnError)

		err := f.service.HandleOrderEvent(ctx, &entity.OrderEvent{OrderID: "o1", UserID: "u1"})
		require.Error(t, err)
		var domainErr *domainerrors.BaseError
		assert.False(t, errors.As(err, &domainErr))
	})
}
