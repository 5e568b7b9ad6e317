package content

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func TestCachedFetcher_MissThenHit(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &mapFetcher{files: map[string]string{"english/exam_01.json": sampleSet}}
	c := NewCachedFetcher(next, rdb, time.Minute, nil)
	ctx := context.Background()

	data, err := c.Fetch(ctx, "english/exam_01.json")
	require.NoError(t, err)
	assert.Equal(t, sampleSet, string(data))
	assert.Equal(t, 1, next.calls)
	assert.True(t, mr.Exists(DefaultCachePrefix+"english/exam_01.json"))
	assert.Equal(t, time.Minute, mr.TTL(DefaultCachePrefix+"english/exam_01.json"))

	data, err = c.Fetch(ctx, "english/exam_01.json")
	require.NoError(t, err)
	assert.Equal(t, sampleSet, string(data))
	assert.Equal(t, 1, next.calls, "second fetch should be served from cache")
}

func TestCachedFetcher_Expiry(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &mapFetcher{files: map[string]string{"a.json": "[]"}}
	c := NewCachedFetcher(next, rdb, time.Minute, nil)
	ctx := context.Background()

	_, err := c.Fetch(ctx, "a.json")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = c.Fetch(ctx, "a.json")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestCachedFetcher_ErrorsNotCached(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &mapFetcher{files: map[string]string{}}
	c := NewCachedFetcher(next, rdb, time.Minute, nil)

	_, err := c.Fetch(context.Background(), "missing.json")
	require.Error(t, err)
	assert.False(t, mr.Exists(DefaultCachePrefix+"missing.json"))
}

func TestCachedFetcher_RedisDownFallsThrough(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &mapFetcher{files: map[string]string{"a.json": "[]"}}
	c := NewCachedFetcher(next, rdb, time.Minute, nil)

	mr.SetError("ERR simulated failure")

	data, err := c.Fetch(context.Background(), "a.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, 1, next.calls)
}

func TestCachedFetcher_Invalidate(t *testing.T) {
	mr, rdb := newTestRedis(t)
	next := &mapFetcher{files: map[string]string{"a.json": "[]"}}
	c := NewCachedFetcher(next, rdb, 0, nil)
	ctx := context.Background()

	_, err := c.Fetch(ctx, "a.json")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, "a.json"))
	assert.False(t, mr.Exists(DefaultCachePrefix+"a.json"))
}
