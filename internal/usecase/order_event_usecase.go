package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderEventUsecase processes order events delivered to the worker.
type OrderEventUsecase interface {
	// HandleOrderEvent rebuilds the customer's copy of the order from the
	// global record and notifies the customer of status changes. A returned
	// domain error marks the event as permanently undeliverable.
	HandleOrderEvent(ctx context.Context, event *entity.OrderEvent) error
}
