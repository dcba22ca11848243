package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// DeadLetterRepository parks background writes that exhausted their retries.
type DeadLetterRepository interface {
	InsertDeadLetter(ctx context.Context, letter *entity.DeadLetter) error

	// ListDeadLetters returns the oldest letters first.
	ListDeadLetters(ctx context.Context, limit int) ([]*entity.DeadLetter, error)

	DeleteDeadLetter(ctx context.Context, id uint64) error

	CountDeadLetters(ctx context.Context) (int64, error)
}
