package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateKeyPrefix  = "medcard:rate:"
	blockKeyPrefix = "medcard:block:"
)

// RateLimiter is a fixed-window counter. A key that goes over the limit is
// blocked for blockTime, regardless of the window.
type RateLimiter struct {
	client    *redis.Client
	limit     int
	interval  time.Duration
	blockTime time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, interval, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		client:    client,
		limit:     limit,
		interval:  interval,
		blockTime: blockTime,
	}
}

func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	blocked, err := r.client.Exists(ctx, blockKeyPrefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("check block: %w", err)
	}
	if blocked > 0 {
		return false, nil
	}

	counterKey := rateKeyPrefix + key
	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, counterKey)
	pipe.ExpireNX(ctx, counterKey, r.interval)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("count hit: %w", err)
	}

	if incr.Val() <= int64(r.limit) {
		return true, nil
	}

	if r.blockTime > 0 {
		if err := r.client.Set(ctx, blockKeyPrefix+key, 1, r.blockTime).Err(); err != nil {
			return false, fmt.Errorf("set block: %w", err)
		}
	}
	return false, nil
}
