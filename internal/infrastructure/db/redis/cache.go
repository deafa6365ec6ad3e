package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/storefront/people-catalog/internal/api/metrics"
)

const defaultCacheTTL = 30 * time.Second

// generationKey holds the counter every Invalidate advances.
const generationKey = "query:generation"

var errStaleGeneration = errors.New("cache generation moved")

// QueryCache implements ports.QueryCache with JSON values under expiring keys.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewQueryCache wraps client. A non-positive ttl selects defaultCacheTTL.
func NewQueryCache(client *redis.Client, ttl time.Duration) *QueryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &QueryCache{client: client, ttl: ttl}
}

// Get decodes the value under key into dst. A missing key is a miss, not an
// error.
func (c *QueryCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
			return false, nil
		}
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Generation returns the invalidation counter; an absent key reads as zero.
func (c *QueryCache) Generation(ctx context.Context) (int64, error) {
	gen, err := readGeneration(ctx, c.client)
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

func readGeneration(ctx context.Context, r interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}) (int64, error) {
	gen, err := r.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set writes value under key if the generation still equals gen. The check
// and the write run under WATCH, so an Invalidate landing between them
// aborts the write. A skipped write is not an error.
func (c *QueryCache) Set(ctx context.Context, key string, value any, gen int64) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("cache set %s: %w", key, err)
	}
}

// Invalidate deletes keys and advances the generation in one transaction.
func (c *QueryCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.Incr(ctx, generationKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// NopCache satisfies ports.QueryCache when caching is disabled. Every lookup
// misses.
type NopCache struct{}

func (NopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (NopCache) Generation(context.Context) (int64, error) { return 0, nil }

func (NopCache) Set(context.Context, string, any, int64) error { return nil }

func (NopCache) Invalidate(context.Context, ...string) error { return nil }
