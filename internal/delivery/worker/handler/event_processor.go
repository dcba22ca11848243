package handler

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Outcome tells a transport what to do with a delivered event.
type Outcome int

const (
	// OutcomeAck means the event was handled.
	OutcomeAck Outcome = iota
	// OutcomeDrop means the event can never be handled and must not be redelivered.
	OutcomeDrop
	// OutcomeRetry means the event should be redelivered later.
	OutcomeRetry
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAck:
		return "ack"
	case OutcomeDrop:
		return "drop"
	case OutcomeRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// EventProcessorParams holds dependencies for the EventProcessor
type EventProcessorParams struct {
	fx.In

	Logger       *slog.Logger
	OrderEventUC usecase.OrderEventUsecase
}

// EventProcessor runs order events through the usecase for every worker
// transport and classifies the result.
type EventProcessor struct {
	logger       *slog.Logger
	orderEventUC usecase.OrderEventUsecase
}

func NewEventProcessor(params EventProcessorParams) *EventProcessor {
	return &EventProcessor{
		logger:       params.Logger,
		orderEventUC: params.OrderEventUC,
	}
}

// Process handles one event. requestID falls back to the event's own, then
// the context's, then a fresh uuid.
func (p *EventProcessor) Process(ctx context.Context, event *entity.OrderEvent, requestID string) Outcome {
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}

	reqLogger := p.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
	)

	err := p.orderEventUC.HandleOrderEvent(ctx, event)
	if err == nil {
		return OutcomeAck
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		reqLogger.Warn("[Worker] Dropping order event",
			slog.String("order_id", event.OrderID),
			slog.String("error_code", appErr.ErrorCode()),
			slog.Any("error", err),
		)

		return OutcomeDrop
	}

	reqLogger.Error("[Worker] Failed to process order event",
		slog.String("order_id", event.OrderID),
		slog.Any("error", err),
	)

	return OutcomeRetry
}
