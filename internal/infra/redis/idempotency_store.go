// Package redis backs Idempotency-Key handling with a Redis server, or with
// process memory when no server is configured.
package redis

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyNamespace      = "storefront"
	idempotencyPrefix = "idempotency"

	// pendingMarker is stored while the owning request is still running.
	pendingMarker = "\x00pending"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	SetNX(context.Context, string, any, time.Duration) *redis.BoolCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// Params defines the dependencies of the idempotency store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed store when redis.url is set and an in-memory
// store otherwise.
func New(params Params) (service.IdempotencyStore, error) {
	if params.Config.Redis == nil || params.Config.Redis.URL == "" {
		params.Logger.Info("Redis not configured, idempotency keys are kept in memory")

		return NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis url")
	}
	client := redis.NewClient(opts)

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Redis connection established", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return newStore(client), nil
}

type store struct {
	client cmdable
}

func newStore(client cmdable) *store {
	return &store{client: client}
}

func (s *store) Reserve(ctx context.Context, scope, key string, ttl time.Duration) (string, bool, error) {
	redisKey := idempotencyKey(scope, key)

	// Two rounds cover the key expiring between SetNX and Get.
	for range 2 {
		ok, err := s.client.SetNX(ctx, redisKey, pendingMarker, ttl).Result()
		if err != nil {
			return "", false, errors.Wrap(err, "reserve idempotency key")
		}
		if ok {
			return "", true, nil
		}

		value, err := s.client.Get(ctx, redisKey).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return "", false, errors.Wrap(err, "read idempotency key")
		}
		if value == pendingMarker {
			return "", false, nil
		}

		return value, false, nil
	}

	return "", false, nil
}

func (s *store) Complete(ctx context.Context, scope, key, result string, ttl time.Duration) error {
	if err := s.client.Set(ctx, idempotencyKey(scope, key), result, ttl).Err(); err != nil {
		return errors.Wrap(err, "complete idempotency key")
	}

	return nil
}

func (s *store) Release(ctx context.Context, scope, key string) error {
	if err := s.client.Del(ctx, idempotencyKey(scope, key)).Err(); err != nil {
		return errors.Wrap(err, "release idempotency key")
	}

	return nil
}

func idempotencyKey(scope, key string) string {
	return strings.Join([]string{keyNamespace, idempotencyPrefix, scope, key}, ":")
}
