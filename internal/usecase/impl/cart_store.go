package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/domain/entity"
)

// cartStore is the in-memory cart of one identity.
type cartStore struct {
	uid string

	mu       sync.Mutex
	items    entity.CartItems
	loading  bool
	lastUsed time.Time

	// hydrated is closed once the first remote load finished, whether it
	// succeeded or not.
	hydrated chan struct{}

	// evicted is set under mu. Once set, the store takes no more mutations.
	evicted atomic.Bool
}

func newCartStore(uid string, now time.Time) *cartStore {
	return &cartStore{
		uid:      uid,
		items:    entity.CartItems{},
		loading:  true,
		lastUsed: now,
		hydrated: make(chan struct{}),
	}
}

// finishHydration installs the loaded items. It runs exactly once per store.
func (c *cartStore) finishHydration(items entity.CartItems) {
	c.mu.Lock()
	c.items = items.Clone()
	c.loading = false
	c.mu.Unlock()

	close(c.hydrated)
}

// wait blocks until hydration finished or ctx is done.
func (c *cartStore) wait(ctx context.Context) error {
	select {
	case <-c.hydrated:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *cartStore) touch(now time.Time) {
	c.mu.Lock()
	c.lastUsed = now
	c.mu.Unlock()
}

// retire waits for a running mutation and stops the store taking more.
func (c *cartStore) retire() {
	c.mu.Lock()
	c.evicted.Store(true)
	c.mu.Unlock()
}

// retireIfIdle retires the store when it is hydrated, unlocked and unused
// since cutoff.
func (c *cartStore) retireIfIdle(cutoff time.Time) bool {
	if !c.mu.TryLock() {
		return false
	}
	defer c.mu.Unlock()

	if c.loading || !c.lastUsed.Before(cutoff) {
		return false
	}
	c.evicted.Store(true)

	return true
}

func (c *cartStore) retired() bool {
	return c.evicted.Load()
}

func (c *cartStore) snapshot() *entity.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snapshotLocked()
}

func (c *cartStore) snapshotLocked() *entity.CartSnapshot {
	items := c.items.Clone()

	return &entity.CartSnapshot{
		UserID:    c.uid,
		Items:     items,
		Total:     items.Total(),
		ItemCount: items.Count(),
		Loading:   c.loading,
	}
}
