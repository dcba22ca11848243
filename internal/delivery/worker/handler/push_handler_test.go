package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/infra/pubsub"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUsecase.MockOrderEventUsecase) {
	orderEventUC := mockUsecase.NewMockOrderEventUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	processor := NewEventProcessor(EventProcessorParams{Logger: slog.Default(), OrderEventUC: orderEventUC})

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default(), Processor: processor}), orderEventUC
}

func pushBody(t *testing.T, event *entity.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func statusChanged() *entity.OrderEvent {
	return &entity.OrderEvent{
		Type:    entity.OrderEventStatusChanged,
		OrderID: "order-1",
		UserID:  "user-1",
		Status:  entity.OrderStatusDelivered,
	}
}

func TestHandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "handled", wantStatus: http.StatusOK},
		{name: "permanent failure is acknowledged", err: domainerrors.ErrOrderNotFound, wantStatus: http.StatusOK},
		{name: "wrapped permanent failure is acknowledged", err: errors.Wrap(domainerrors.ErrValidationFailed, "owner mismatch"), wantStatus: http.StatusOK},
		{name: "transient failure asks for redelivery", err: errors.New("store timeout"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderEventUC := newPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(event *entity.OrderEvent) bool {
				return event.OrderID == "order-1" && event.Status == entity.OrderStatusDelivered
			})).Return(tt.err)

			rec := servePush(h, pushBody(t, statusChanged(), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_BadPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2]")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

			assert.Equal(t, http.StatusBadRequest, servePush(h, tt.body).Code)
		})
	}
}

func TestHandlePush_RequestIDPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		attributes map[string]string
		eventID    string
		want       string
	}{
		{name: "attribute wins", attributes: map[string]string{pubsub.AttrRequestID: "from-attr"}, eventID: "from-event", want: "from-attr"},
		{name: "event field", eventID: "from-event", want: "from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, orderEventUC := newPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			orderEventUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, _ *entity.OrderEvent) error {
					assert.Equal(t, tt.want, deliverycontext.GetRequestIDFromContext(ctx))

					return nil
				})

			event := statusChanged()
			event.RequestID = tt.eventID
			servePush(h, pushBody(t, event, tt.attributes))
		})
	}
}

func TestHandlePush_GoogleOutsideDevelopRequiresToken(t *testing.T) {
	h, _ := newPushHandler(t, constants.PubSubProviderGoogle, "production")

	rec := servePush(h, pushBody(t, statusChanged(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
