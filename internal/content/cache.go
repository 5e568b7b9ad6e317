package content

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCachePrefix namespaces cached content keys.
const DefaultCachePrefix = "flashlingo:content:"

// CachedFetcher keeps raw content in Redis in front of a slower fetcher. Redis
// failures are logged and fall through to the wrapped fetcher.
type CachedFetcher struct {
	next   Fetcher
	rdb    redis.UniversalClient
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewCachedFetcher wraps next with a Redis cache. A zero ttl keeps entries
// until evicted.
func NewCachedFetcher(next Fetcher, rdb redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CachedFetcher{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		prefix: DefaultCachePrefix,
		logger: logger,
	}
}

// Fetch returns the cached bytes for path, filling the cache on a miss.
// Fetch errors are never cached.
func (c *CachedFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	key := c.prefix + path

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		c.logger.Debug("content cache hit", "path", path)
		return data, nil
	case errors.Is(err, redis.Nil):
		c.logger.Debug("content cache miss", "path", path)
	default:
		c.logger.Warn("content cache read failed", "path", path, "error", err)
	}

	data, err = c.next.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("content cache write failed", "path", path, "error", err)
	}
	return data, nil
}

// Invalidate drops path from the cache.
func (c *CachedFetcher) Invalidate(ctx context.Context, path string) error {
	return c.rdb.Del(ctx, c.prefix+path).Err()
}
