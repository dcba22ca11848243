package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStaleWrite is returned by conditional overwrites when the stored
// document is already newer than the write.
var ErrStaleWrite = errors.New("stored document is newer than the write")

// CartRepository is the remote mirror of per-user carts.
type CartRepository interface {
	// LoadCart returns the stored items, or an empty list when the user has
	// no cart document yet.
	LoadCart(ctx context.Context, userID string) (entity.CartItems, error)

	// SaveCart overwrites the whole item list. It never merges. When the
	// stored cart carries a higher version it leaves it alone and returns
	// ErrStaleWrite.
	SaveCart(ctx context.Context, userID string, items entity.CartItems, version uint64) error
}
