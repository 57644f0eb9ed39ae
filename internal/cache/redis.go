package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// RedisCache is a Cache backed by Redis. Values are JSON arrays and expiry is
// enforced server-side.
type RedisCache struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client redis.UniversalClient, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

// ConnectRedis creates a client and verifies the connection.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return rdb, nil
}

func (c *RedisCache) key(userID string) string {
	return c.prefix + userID
}

// Get implements Cache.
func (c *RedisCache) Get(ctx context.Context, userID string) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading recommendations for %s: %w", userID, err)
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("decoding recommendations for %s: %w", userID, err)
	}
	return ids, true, nil
}

// Set implements Cache. A non-positive ttl removes the entry.
func (c *RedisCache) Set(ctx context.Context, userID string, ids []string, ttl time.Duration) error {
	if ttl <= 0 {
		return c.client.Del(ctx, c.key(userID)).Err()
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encoding recommendations: %w", err)
	}

	if err := c.client.Set(ctx, c.key(userID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("writing recommendations for %s: %w", userID, err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
