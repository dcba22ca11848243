// Package documents implements the storefront repositories on gocloud
// docstore. Production points the URLs at Firestore; development and tests
// use the in-memory driver.
package documents

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"storefront/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/docstore"

	// Registered drivers.
	_ "gocloud.dev/docstore/gcpfirestore"
	_ "gocloud.dev/docstore/memdocstore"
)

// Collections opens each collection URL once and hands out the same handle.
// The in-memory driver creates a fresh store per open, so callers must share
// handles to see each other's writes.
type Collections struct {
	mu     sync.Mutex
	opened map[string]*docstore.Collection
}

// NewCollections returns an empty collection cache.
func NewCollections() *Collections {
	return &Collections{opened: make(map[string]*docstore.Collection)}
}

// Params defines the parameters for the fx-managed cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Logger *slog.Logger
}

// New returns a collection cache closed when the application stops.
func New(params Params) *Collections {
	cols := NewCollections()

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := cols.Close(); err != nil {
				params.Logger.Warn("Failed to close docstore collections", slog.Any("error", err))
			}

			return nil
		},
	})

	return cols
}

// Open returns the collection for url, opening it on first use.
func (c *Collections) Open(ctx context.Context, url string) (*docstore.Collection, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if coll, ok := c.opened[url]; ok {
		return coll, nil
	}

	coll, err := docstore.OpenCollection(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open collection %s", url)
	}
	c.opened[url] = coll

	return coll, nil
}

// Close shuts every opened collection.
func (c *Collections) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	for url, coll := range c.opened {
		err = errors.Append(err, coll.Close())
		delete(c.opened, url)
	}

	return err
}

// collect drains a query iterator.
func collect[T any](ctx context.Context, iter *docstore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	var docs []*T
	for {
		doc := new(T)
		err := iter.Next(ctx, doc)
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

// maxConditionalAttempts bounds the read, compare and replace loop of
// version-checked overwrites.
const maxConditionalAttempts = 3

var errConcurrentWrites = errors.New("document kept changing during a conditional overwrite")
