package writebehind

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryDeadLetters struct {
	mu      sync.Mutex
	nextID  uint64
	letters []*entity.DeadLetter
}

func (m *memoryDeadLetters) InsertDeadLetter(_ context.Context, letter *entity.DeadLetter) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	letter.ID = m.nextID
	m.letters = append(m.letters, letter)

	return nil
}

func (m *memoryDeadLetters) ListDeadLetters(_ context.Context, limit int) ([]*entity.DeadLetter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit > len(m.letters) {
		limit = len(m.letters)
	}

	return append([]*entity.DeadLetter(nil), m.letters[:limit]...), nil
}

func (m *memoryDeadLetters) DeleteDeadLetter(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, letter := range m.letters {
		if letter.ID == id {
			m.letters = append(m.letters[:i], m.letters[i+1:]...)

			return nil
		}
	}

	return nil
}

func (m *memoryDeadLetters) CountDeadLetters(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return int64(len(m.letters)), nil
}

func (m *memoryDeadLetters) all() []*entity.DeadLetter {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*entity.DeadLetter(nil), m.letters...)
}

type recorder struct {
	mu     sync.Mutex
	writes []entity.PendingWrite
}

func (r *recorder) add(write entity.PendingWrite) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, write)
}

func (r *recorder) versions() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, len(r.writes))
	for i, w := range r.writes {
		out[i] = w.Version
	}

	return out
}

func testConfig() config.WriteBehindConfig {
	return config.WriteBehindConfig{
		Workers:        2,
		MaxAttempts:    3,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		WriteTimeout:   time.Second,
		DrainTimeout:   time.Second,
	}
}

func newTestDispatcher(t *testing.T, cfg config.WriteBehindConfig) (*Dispatcher, *memoryDeadLetters) {
	t.Helper()

	dlq := &memoryDeadLetters{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewDispatcher(cfg, logger, dlq, nil), dlq
}

func cartWrite(version uint64) entity.PendingWrite {
	return entity.PendingWrite{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte("v"), Version: version}
}

func TestDispatcher_CoalescesWhileInFlight(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	rec := &recorder{}
	entered := make(chan struct{}, 1)
	release := make(chan struct{})

	d.Register(entity.WriteKindCart, func(_ context.Context, w entity.PendingWrite) error {
		rec.add(w)
		if w.Version == 1 {
			entered <- struct{}{}
			<-release
		}

		return nil
	})
	d.Start()

	d.Enqueue(cartWrite(1))
	<-entered
	d.Enqueue(cartWrite(2))
	d.Enqueue(cartWrite(3))
	close(release)

	assert.Eventually(t, func() bool { return len(rec.versions()) == 2 }, time.Second, time.Millisecond)
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, []uint64{1, 3}, rec.versions())
	assert.Empty(t, dlq.all())
}

func TestDispatcher_IgnoresOlderVersion(t *testing.T) {
	d, _ := newTestDispatcher(t, testConfig())
	rec := &recorder{}
	d.Register(entity.WriteKindCart, func(_ context.Context, w entity.PendingWrite) error {
		rec.add(w)

		return nil
	})

	d.Enqueue(cartWrite(5))
	d.Enqueue(cartWrite(3))
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, []uint64{5}, rec.versions())
}

func TestDispatcher_RetriesThenSucceeds(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	var (
		mu    sync.Mutex
		calls int
	)
	d.Register(entity.WriteKindCart, func(context.Context, entity.PendingWrite) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls < 3 {
			return errors.New("unavailable")
		}

		return nil
	})
	d.Start()
	d.Enqueue(cartWrite(1))
	require.NoError(t, d.Stop(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, calls)
	assert.Empty(t, dlq.all())
}

func TestDispatcher_ParksExhaustedWrites(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	d.Register(entity.WriteKindUserOrder, func(context.Context, entity.PendingWrite) error {
		return errors.New("permission denied")
	})
	d.Start()
	d.Enqueue(entity.PendingWrite{Kind: entity.WriteKindUserOrder, Key: "u1/o1", Payload: []byte(`{"id":"o1"}`)})
	require.NoError(t, d.Stop(context.Background()))

	letters := dlq.all()
	require.Len(t, letters, 1)
	assert.Equal(t, entity.WriteKindUserOrder, letters[0].Kind)
	assert.Equal(t, "u1/o1", letters[0].Key)
	assert.Equal(t, 3, letters[0].Attempts)
	assert.Equal(t, "permission denied", letters[0].LastError)
	assert.Equal(t, []byte(`{"id":"o1"}`), letters[0].Payload)
}

func TestDispatcher_FailedWriteSupersededByNewer(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 1
	d, dlq := newTestDispatcher(t, cfg)
	rec := &recorder{}
	entered := make(chan struct{}, 1)
	release := make(chan struct{})

	d.Register(entity.WriteKindCart, func(_ context.Context, w entity.PendingWrite) error {
		rec.add(w)
		if w.Version == 1 {
			entered <- struct{}{}
			<-release

			return errors.New("timeout")
		}

		return nil
	})
	d.Start()
	d.Enqueue(cartWrite(1))
	<-entered
	d.Enqueue(cartWrite(2))
	close(release)
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, []uint64{1, 2}, rec.versions())
	assert.Empty(t, dlq.all())
}

func TestDispatcher_MissingHandlerParks(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	d.Start()
	d.Enqueue(cartWrite(1))
	require.NoError(t, d.Stop(context.Background()))

	require.Len(t, dlq.all(), 1)
}

func TestDispatcher_EnqueueAfterStopParks(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	d.Start()
	require.NoError(t, d.Stop(context.Background()))

	d.Enqueue(cartWrite(1))

	letters := dlq.all()
	require.Len(t, letters, 1)
	assert.Equal(t, "dispatcher stopped", letters[0].LastError)
}

func TestDispatcher_StopWithoutStartParksQueued(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	d.Enqueue(cartWrite(1))

	require.NoError(t, d.Stop(context.Background()))
	require.Len(t, dlq.all(), 1)
}

func TestDispatcher_ReplayDeadLetters(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	rec := &recorder{}
	d.Register(entity.WriteKindCart, func(_ context.Context, w entity.PendingWrite) error {
		rec.add(w)

		return nil
	})
	ctx := context.Background()
	require.NoError(t, dlq.InsertDeadLetter(ctx, &entity.DeadLetter{Kind: entity.WriteKindCart, Key: "u9", Payload: []byte("[]"), FailedAt: time.Now()}))

	d.Start()
	n, err := d.ReplayDeadLetters(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, d.Stop(ctx))

	assert.Empty(t, dlq.all())
	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.writes, 1)
	assert.Equal(t, "u9", rec.writes[0].Key)
}

func TestDispatcher_ReplayDropsLetterOlderThanQueued(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	rec := &recorder{}
	d.Register(entity.WriteKindCart, func(_ context.Context, w entity.PendingWrite) error {
		rec.add(w)

		return nil
	})
	ctx := context.Background()
	require.NoError(t, dlq.InsertDeadLetter(ctx, &entity.DeadLetter{Kind: entity.WriteKindCart, Key: "u1", Version: 3, FailedAt: time.Now()}))

	d.Enqueue(cartWrite(7))
	n, err := d.ReplayDeadLetters(ctx)
	require.NoError(t, err)
	d.Start()
	require.NoError(t, d.Stop(ctx))

	assert.Zero(t, n)
	assert.Empty(t, dlq.all())
	assert.Equal(t, []uint64{7}, rec.versions())
}

// versionedDocument refuses writes older than what it holds, like the
// document repositories do.
type versionedDocument struct {
	mu      sync.Mutex
	version uint64
	value   string
}

func (v *versionedDocument) apply(_ context.Context, w entity.PendingWrite) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.version > w.Version {
		return repository.ErrStaleWrite
	}
	v.version = w.Version
	v.value = string(w.Payload)

	return nil
}

func (v *versionedDocument) current() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.value
}

func TestDispatcher_ParkedWriteKeepsVersion(t *testing.T) {
	cfg := testConfig()
	cfg.MaxAttempts = 1
	d, dlq := newTestDispatcher(t, cfg)
	d.Register(entity.WriteKindCart, func(context.Context, entity.PendingWrite) error {
		return errors.New("unavailable")
	})
	d.Start()
	d.Enqueue(entity.PendingWrite{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte("OLD"), Version: 10})
	require.NoError(t, d.Stop(context.Background()))

	letters := dlq.all()
	require.Len(t, letters, 1)
	assert.Equal(t, uint64(10), letters[0].Version)
}

func TestDispatcher_ReplayAfterRestartKeepsNewerDocument(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.MaxAttempts = 1
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dlq := &memoryDeadLetters{}
	doc := &versionedDocument{}

	failing := NewDispatcher(cfg, logger, dlq, nil)
	failing.Register(entity.WriteKindCart, func(context.Context, entity.PendingWrite) error {
		return errors.New("unavailable")
	})
	failing.Start()
	failing.Enqueue(entity.PendingWrite{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte("OLD"), Version: 10})
	require.NoError(t, failing.Stop(ctx))
	require.Len(t, dlq.all(), 1)

	first := NewDispatcher(cfg, logger, dlq, nil)
	first.Register(entity.WriteKindCart, doc.apply)
	first.Start()
	first.Enqueue(entity.PendingWrite{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte("NEW"), Version: 20})
	require.NoError(t, first.Stop(ctx))
	require.Equal(t, "NEW", doc.current())

	// A fresh process knows nothing about what the first one applied.
	second := NewDispatcher(cfg, logger, dlq, nil)
	second.Register(entity.WriteKindCart, doc.apply)
	second.Start()
	n, err := second.ReplayDeadLetters(ctx)
	require.NoError(t, err)
	require.NoError(t, second.Stop(ctx))

	assert.Equal(t, 1, n)
	assert.Equal(t, "NEW", doc.current())
	assert.Empty(t, dlq.all())
}

func TestDispatcher_ReplayWhileNewerWriteInFlight(t *testing.T) {
	ctx := context.Background()
	d, dlq := newTestDispatcher(t, testConfig())
	doc := &versionedDocument{}
	entered := make(chan struct{}, 1)
	release := make(chan struct{})

	d.Register(entity.WriteKindCart, func(ctx context.Context, w entity.PendingWrite) error {
		if string(w.Payload) == "NEW" {
			entered <- struct{}{}
			<-release
		}

		return doc.apply(ctx, w)
	})
	require.NoError(t, dlq.InsertDeadLetter(ctx, &entity.DeadLetter{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte("OLD"), Version: 10}))

	d.Start()
	d.Enqueue(entity.PendingWrite{Kind: entity.WriteKindCart, Key: "u1", Payload: []byte("NEW"), Version: 20})
	<-entered

	n, err := d.ReplayDeadLetters(ctx)
	require.NoError(t, err)
	close(release)
	require.NoError(t, d.Stop(ctx))

	assert.Zero(t, n)
	assert.Equal(t, "NEW", doc.current())
	assert.Empty(t, dlq.all())
}

func TestDispatcher_StaleWriteIsNotParked(t *testing.T) {
	d, dlq := newTestDispatcher(t, testConfig())
	var calls int
	d.Register(entity.WriteKindCart, func(context.Context, entity.PendingWrite) error {
		calls++

		return errors.Wrap(repository.ErrStaleWrite, "save cart")
	})
	d.Start()
	d.Enqueue(cartWrite(1))
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, calls)
	assert.Empty(t, dlq.all())
}

func TestDispatcher_Latest(t *testing.T) {
	d, _ := newTestDispatcher(t, testConfig())
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	d.Register(entity.WriteKindCart, func(context.Context, entity.PendingWrite) error {
		entered <- struct{}{}
		<-release

		return nil
	})

	_, ok := d.Latest(entity.WriteKindCart, "u1")
	assert.False(t, ok)

	d.Enqueue(cartWrite(1))
	latest, ok := d.Latest(entity.WriteKindCart, "u1")
	require.True(t, ok)
	assert.Equal(t, uint64(1), latest.Version)

	d.Start()
	<-entered
	latest, ok = d.Latest(entity.WriteKindCart, "u1")
	require.True(t, ok, "in-flight write is still the latest")
	assert.Equal(t, uint64(1), latest.Version)

	d.Enqueue(cartWrite(2))
	latest, _ = d.Latest(entity.WriteKindCart, "u1")
	assert.Equal(t, uint64(2), latest.Version)

	close(release)
	require.NoError(t, d.Stop(context.Background()))

	_, ok = d.Latest(entity.WriteKindCart, "u1")
	assert.False(t, ok)
}

func TestDispatcher_DropsWriteOlderThanInFlight(t *testing.T) {
	d, _ := newTestDispatcher(t, testConfig())
	rec := &recorder{}
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	d.Register(entity.WriteKindCart, func(_ context.Context, w entity.PendingWrite) error {
		rec.add(w)
		if w.Version == 5 {
			entered <- struct{}{}
			<-release
		}

		return nil
	})
	d.Start()
	d.Enqueue(cartWrite(5))
	<-entered
	d.Enqueue(cartWrite(4))
	close(release)
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, []uint64{5}, rec.versions())
}

func TestNextBackoff(t *testing.T) {
	base, limit := 100*time.Millisecond, 300*time.Millisecond

	assert.Equal(t, base, nextBackoff(0, base, limit))
	assert.Equal(t, 200*time.Millisecond, nextBackoff(base, base, limit))
	assert.Equal(t, limit, nextBackoff(200*time.Millisecond, base, limit))
}

func TestWithJitter(t *testing.T) {
	assert.Zero(t, withJitter(0))

	d := withJitter(time.Second)
	assert.GreaterOrEqual(t, d, time.Second)
	assert.Less(t, d, time.Second+jitterWindow)
}
