package cmd

import (
	"context"
	"time"

	"dispatch/internal/adapters/out/redis/statscache"
)

const statsCachePingTimeout = 5 * time.Second

// NewStatsCache connects the courier stats cache and checks that Redis answers.
// It returns nil without error when REDIS_URL is empty.
func NewStatsCache(ctx context.Context, cfg Config) (*statscache.RedisStatsCache, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	cache, err := statscache.NewRedisStatsCache(cfg.RedisURL, cfg.StatsCacheTTL)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, statsCachePingTimeout)
	defer cancel()
	if err = cache.Ping(pingCtx); err != nil {
		_ = cache.Close()
		return nil, err
	}

	return cache, nil
}
