// Package statscache stores encoded courier stats in Redis.
package statscache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "dispatch:courier-stats:"

// RedisStatsCache implements ports.StatsCache on top of a Redis client.
type RedisStatsCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStatsCache connects to redisURL. The URL format is
// redis://[:password@]host[:port][/database]. Every entry expires after ttl, which must be positive.
func NewRedisStatsCache(redisURL string, ttl time.Duration) (*RedisStatsCache, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("stats cache ttl %s is not positive", ttl)
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisStatsCache{
		client: redis.NewClient(opts),
		prefix: DefaultKeyPrefix,
		ttl:    ttl,
	}, nil
}

// Get returns the cached payload. A missing key is (nil, false, nil).
func (c *RedisStatsCache) Get(ctx context.Context, courierID int) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.key(courierID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get stats of courier %d: %w", courierID, err)
	}
	return val, true, nil
}

// Set stores payload under the courier key with the configured TTL.
func (c *RedisStatsCache) Set(ctx context.Context, courierID int, payload []byte) error {
	if err := c.client.Set(ctx, c.key(courierID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set stats of courier %d: %w", courierID, err)
	}
	return nil
}

// Invalidate drops the cached payload. Deleting a missing key is not an error.
func (c *RedisStatsCache) Invalidate(ctx context.Context, courierID int) error {
	if err := c.client.Del(ctx, c.key(courierID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats of courier %d: %w", courierID, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (c *RedisStatsCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (c *RedisStatsCache) Close() error {
	return c.client.Close()
}

func (c *RedisStatsCache) key(courierID int) string {
	return c.prefix + strconv.Itoa(courierID)
}
