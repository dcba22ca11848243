package redis

import (
	"context"
	"sync"
	"time"

	"storefront/internal/domain/service"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryStore keeps keys for a single process.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore returns an idempotency store that lives in process memory.
func NewMemoryStore() service.IdempotencyStore {
	return &memoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *memoryStore) Reserve(_ context.Context, scope, key string, ttl time.Duration) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := idempotencyKey(scope, key)
	if entry, ok := m.live(k); ok {
		if entry.value == pendingMarker {
			return "", false, nil
		}

		return entry.value, false, nil
	}
	m.entries[k] = memoryEntry{value: pendingMarker, expiresAt: m.expiry(ttl)}

	return "", true, nil
}

func (m *memoryStore) Complete(_ context.Context, scope, key, result string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[idempotencyKey(scope, key)] = memoryEntry{value: result, expiresAt: m.expiry(ttl)}
	m.sweep()

	return nil
}

func (m *memoryStore) Release(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, idempotencyKey(scope, key))

	return nil
}

func (m *memoryStore) live(k string) (memoryEntry, bool) {
	entry, ok := m.entries[k]
	if !ok {
		return memoryEntry{}, false
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.entries, k)

		return memoryEntry{}, false
	}

	return entry, true
}

func (m *memoryStore) expiry(ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}

	return m.now().Add(ttl)
}

// sweep drops expired entries.
func (m *memoryStore) sweep() {
	now := m.now()
	for k, entry := range m.entries {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(m.entries, k)
		}
	}
}
