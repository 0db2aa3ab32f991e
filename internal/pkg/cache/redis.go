// Package cache holds the advisory Redis cache. Cached availability is never
// authoritative: the engine recomputes availability under row locks before any
// mutation and only uses these values to answer best-effort reads.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const availableKeyPrefix = "inventory:available:"

type Config struct {
	Addr     string
	Password string
	DB       int
}

type RedisClient struct {
	rdb *redis.Client
}

func NewRedisClient(cfg *Config) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisClient{rdb: rdb}, nil
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// GetAvailable returns a cached availability value. A miss or any Redis error
// reports false; callers fall through to the store.
func (c *RedisClient) GetAvailable(ctx context.Context, sku string) (int, bool) {
	val, err := c.rdb.Get(ctx, availableKeyPrefix+sku).Result()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (c *RedisClient) SetAvailable(ctx context.Context, sku string, available int, ttl time.Duration) {
	c.rdb.Set(ctx, availableKeyPrefix+sku, strconv.Itoa(available), ttl)
}

// InvalidateAvailable drops cached values after a mutation commits.
func (c *RedisClient) InvalidateAvailable(ctx context.Context, skus ...string) {
	if len(skus) == 0 {
		return
	}
	keys := make([]string, len(skus))
	for i, sku := range skus {
		keys[i] = availableKeyPrefix + sku
	}
	c.rdb.Del(ctx, keys...)
}
