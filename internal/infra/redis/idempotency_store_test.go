package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCmdable is an in-memory stand-in for a redis client.
type fakeCmdable struct {
	values map[string]string
	ttls   map[string]time.Duration
	err    error
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")

	return cmd
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)

		return cmd
	}
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	cmd.SetVal("OK")

	return cmd
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx)
	value, ok := f.values[key]
	if !ok {
		cmd.SetErr(redis.Nil)

		return cmd
	}
	cmd.SetVal(value)

	return cmd
}

func (f *fakeCmdable) SetNX(ctx context.Context, key string, value any, ttl time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)

		return cmd
	}
	if _, ok := f.values[key]; ok {
		cmd.SetVal(false)

		return cmd
	}
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	cmd.SetVal(true)

	return cmd
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	for _, key := range keys {
		delete(f.values, key)
	}
	cmd.SetVal(int64(len(keys)))

	return cmd
}

func TestStore_ReserveCompleteReplay(t *testing.T) {
	ctx := context.Background()
	fake := newFakeCmdable()
	s := newStore(fake)

	result, reserved, err := s.Reserve(ctx, "uid-1", "key-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Empty(t, result)
	assert.Equal(t, time.Hour, fake.ttls["storefront:idempotency:uid-1:key-1"])

	// Still running.
	result, reserved, err = s.Reserve(ctx, "uid-1", "key-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Empty(t, result)

	require.NoError(t, s.Complete(ctx, "uid-1", "key-1", "order-9", time.Hour))

	result, reserved, err = s.Reserve(ctx, "uid-1", "key-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, "order-9", result)

	// Scopes are independent.
	_, reserved, err = s.Reserve(ctx, "uid-2", "key-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestStore_ReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	s := newStore(newFakeCmdable())

	_, reserved, err := s.Reserve(ctx, "uid", "k", time.Minute)
	require.NoError(t, err)
	require.True(t, reserved)

	require.NoError(t, s.Release(ctx, "uid", "k"))

	_, reserved, err = s.Reserve(ctx, "uid", "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestStore_PropagatesErrors(t *testing.T) {
	fake := newFakeCmdable()
	fake.err = assert.AnError
	s := newStore(fake)

	_, _, err := s.Reserve(context.Background(), "uid", "k", time.Minute)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorIs(t, s.Complete(context.Background(), "uid", "k", "v", time.Minute), assert.AnError)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore().(*memoryStore)
	m.now = func() time.Time { return now }

	_, reserved, err := m.Reserve(ctx, "uid", "k", time.Minute)
	require.NoError(t, err)
	require.True(t, reserved)
	require.NoError(t, m.Complete(ctx, "uid", "k", "order-1", time.Minute))

	result, reserved, err := m.Reserve(ctx, "uid", "k", time.Minute)
	require.NoError(t, err)
	assert.False(t, reserved)
	assert.Equal(t, "order-1", result)

	now = now.Add(2 * time.Minute)

	result, reserved, err = m.Reserve(ctx, "uid", "k", time.Minute)
	require.NoError(t, err)
	assert.True(t, reserved)
	assert.Empty(t, result)
}
