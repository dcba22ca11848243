package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// EventPublisher publishes order events to a message bus.
type EventPublisher interface {
	// PublishOrderEvent publishes an event for asynchronous processing.
	PublishOrderEvent(ctx context.Context, event *entity.OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
