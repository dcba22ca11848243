package service

import (
	"context"
	"time"
)

// IdempotencyStore remembers the outcome of requests carrying an
// Idempotency-Key so retries return the original result.
type IdempotencyStore interface {
	// Reserve claims key within scope. When the key already completed,
	// result holds the stored outcome and reserved is false. When another
	// request holds the key, both are empty and reserved is false.
	Reserve(ctx context.Context, scope, key string, ttl time.Duration) (result string, reserved bool, err error)

	// Complete stores result for a reserved key.
	Complete(ctx context.Context, scope, key, result string, ttl time.Duration) error

	// Release drops a reservation so the request can be retried.
	Release(ctx context.Context, scope, key string) error
}
