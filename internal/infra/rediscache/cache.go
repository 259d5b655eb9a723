package rediscache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"stayfinder/internal/infra"
	"stayfinder/internal/infra/observability"
	"stayfinder/internal/pkg/config"
)

// Cache is a JSON-over-Redis adapter for the read-through inventory cache.
type Cache struct {
	c       *redis.Client
	timeout time.Duration
}

func New(cfg config.RedisConfig, timeout time.Duration) *Cache {
	return &Cache{
		c: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		timeout: timeout,
	}
}

// NewWithClient wires an existing client; used by tests with miniredis.
func NewWithClient(c *redis.Client, timeout time.Duration) *Cache {
	return &Cache{c: c, timeout: timeout}
}

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveCache("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, infra.WrapRepoErr("failed to read cache", err)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return false, infra.WrapRepoErr("failed to decode cached value", err)
	}
	observability.ObserveCache("redis", "hit")
	return true, nil
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	b, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode value for cache", err)
	}
	observability.ObserveCache("redis", "set")
	if err := r.c.Set(ctx, key, b, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write cache", err)
	}
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	observability.ObserveCache("redis", "del")
	if err := r.c.Del(ctx, key).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate cache", err)
	}
	return nil
}

func (r *Cache) Close() error {
	return r.c.Close()
}
