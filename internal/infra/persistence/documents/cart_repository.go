package documents

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"gocloud.dev/docstore"
)

type cartRepository struct {
	coll *docstore.Collection
	now  func() time.Time
}

// NewCartRepository opens the carts collection, keyed by user id.
func NewCartRepository(ctx context.Context, cols *Collections, url string) (repository.CartRepository, error) {
	coll, err := cols.Open(ctx, url)
	if err != nil {
		return nil, err
	}

	return &cartRepository{coll: coll, now: time.Now}, nil
}

func (repo *cartRepository) LoadCart(ctx context.Context, userID string) (entity.CartItems, error) {
	doc := &cartDoc{UserID: userID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.IsNotFound(err) {
			return entity.CartItems{}, nil
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to load cart")
	}

	return toCartItems(doc.Items), nil
}

// SaveCart is a compare-and-set on the document revision, so a concurrent
// writer in another process cannot slip a newer cart in between the version
// check and the overwrite.
func (repo *cartRepository) SaveCart(ctx context.Context, userID string, items entity.CartItems, version uint64) error {
	for range maxConditionalAttempts {
		doc := &cartDoc{UserID: userID}
		err := repo.coll.Get(ctx, doc)
		switch {
		case errors.IsNotFound(err):
			doc = &cartDoc{UserID: userID}
			doc.set(items, version, repo.now().UTC())
			err = repo.coll.Create(ctx, doc)
		case err != nil:
			return domainerrors.NewStoreExecuteError(err, "failed to load cart for overwrite")
		case doc.Version > version:
			return repository.ErrStaleWrite
		default:
			doc.set(items, version, repo.now().UTC())
			err = repo.coll.Replace(ctx, doc)
		}

		if err == nil {
			return nil
		}
		if !errors.IsAlreadyExists(err) && !errors.IsFailedPrecondition(err) {
			return domainerrors.NewStoreExecuteError(err, "failed to save cart")
		}
	}

	return domainerrors.NewStoreExecuteError(errConcurrentWrites, "failed to save cart")
}
