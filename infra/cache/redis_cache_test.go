package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisRateCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRedisRateCache(client, "parcels:", logger), mr
}

func TestRedisRateCache_SetAndGet(t *testing.T) {
	t.Parallel()
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	fetchedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rate := &domain.CachedRate{
		Value:     95.5,
		Source:    "cbr",
		FetchedAt: fetchedAt,
		ExpiresAt: fetchedAt.Add(time.Hour),
	}
	require.NoError(t, c.Set(ctx, "usd_rate", rate, time.Hour))

	assert.True(t, mr.Exists("parcels:usd_rate"))
	assert.True(t, mr.Exists("parcels:usd_rate:last"))
	assert.Equal(t, time.Hour, mr.TTL("parcels:usd_rate"))
	assert.Equal(t, time.Duration(0), mr.TTL("parcels:usd_rate:last"))

	got, err := c.Get(ctx, "usd_rate")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 95.5, got.Value, 1e-9)
	assert.Equal(t, "cbr", got.Source)
	assert.True(t, fetchedAt.Equal(got.FetchedAt))
}

func TestRedisRateCache_ExpiryKeepsStale(t *testing.T) {
	t.Parallel()
	c, mr := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "usd_rate", &domain.CachedRate{Value: 91.2}, time.Hour))
	mr.FastForward(time.Hour + time.Second)

	fresh, err := c.Get(ctx, "usd_rate")
	require.NoError(t, err)
	assert.Nil(t, fresh)

	stale, err := c.GetStale(ctx, "usd_rate")
	require.NoError(t, err)
	require.NotNil(t, stale)
	assert.InDelta(t, 91.2, stale.Value, 1e-9)
}

func TestRedisRateCache_Miss(t *testing.T) {
	t.Parallel()
	c, _ := newTestRedisCache(t)
	ctx := context.Background()

	got, err := c.Get(ctx, "usd_rate")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = c.GetStale(ctx, "usd_rate")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisRateCache_CorruptValue(t *testing.T) {
	t.Parallel()
	c, mr := newTestRedisCache(t)
	require.NoError(t, mr.Set("parcels:usd_rate", "not-json"))

	_, err := c.Get(context.Background(), "usd_rate")
	require.Error(t, err)
}

func TestRedisRateCache_ServerDown(t *testing.T) {
	t.Parallel()
	c, mr := newTestRedisCache(t)
	mr.Close()

	_, err := c.GetStale(context.Background(), "usd_rate")
	require.Error(t, err)
	err = c.Set(context.Background(), "usd_rate", &domain.CachedRate{Value: 1}, time.Hour)
	require.Error(t, err)
}
