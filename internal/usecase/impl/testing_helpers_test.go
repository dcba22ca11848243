package impl

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cart:        &config.CartConfig{},
		Idempotency: &config.IdempotencyConfig{},
	}
}

func price(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func activeProduct(id, regular string) *entity.Product {
	return &entity.Product{
		ID:           id,
		Title:        "Product " + id,
		ImageURL:     "https://img.example.com/" + id,
		RegularPrice: price(regular),
		IsActive:     true,
	}
}

// recordingQueue captures queued writes in order. Writes count as applied
// at once unless unapplied is set.
type recordingQueue struct {
	mu        sync.Mutex
	writes    []entity.PendingWrite
	unapplied bool
}

func (q *recordingQueue) Enqueue(write entity.PendingWrite) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.writes = append(q.writes, write)
}

func (q *recordingQueue) Latest(kind entity.WriteKind, key string) (entity.PendingWrite, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.unapplied {
		return entity.PendingWrite{}, false
	}
	for i := len(q.writes) - 1; i >= 0; i-- {
		if w := q.writes[i]; w.Kind == kind && w.Key == key {
			return w, true
		}
	}

	return entity.PendingWrite{}, false
}

func (q *recordingQueue) all() []entity.PendingWrite {
	q.mu.Lock()
	defer q.mu.Unlock()

	return append([]entity.PendingWrite(nil), q.writes...)
}

func (q *recordingQueue) ofKind(kind entity.WriteKind) []entity.PendingWrite {
	var out []entity.PendingWrite
	for _, w := range q.all() {
		if w.Kind == kind {
			out = append(out, w)
		}
	}

	return out
}

func decodeCart(t *testing.T, write entity.PendingWrite) entity.Cart {
	t.Helper()

	var cart entity.Cart
	require.NoError(t, json.Unmarshal(write.Payload, &cart))

	return cart
}
