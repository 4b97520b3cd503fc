package infra

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	infra_cache "github.com/amirasaad/parcels/infra/cache"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Cache: &config.Cache{Driver: CacheDriverMemory},
		Redis: &config.Redis{KeyPrefix: "parcels:"},
		RateProvider: &config.RateProvider{
			URL:          "http://127.0.0.1:0/daily_json.js",
			Currency:     "USD",
			CacheKey:     "usd_rate",
			DefaultRate:  90,
			ContentTypes: []string{"application/json; charset=utf-8"},
		},
	}
}

func TestNewRateCache(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mr := miniredis.RunT(t)

	testCases := []struct {
		desc    string
		driver  string
		url     string
		wantErr bool
		check   func(t *testing.T, v any)
	}{
		{
			desc:   "memory",
			driver: CacheDriverMemory,
			check: func(t *testing.T, v any) {
				assert.IsType(t, &infra_cache.MemoryCache{}, v)
			},
		},
		{
			desc:   "redis",
			driver: CacheDriverRedis,
			url:    "redis://" + mr.Addr() + "/0",
			check: func(t *testing.T, v any) {
				assert.IsType(t, &infra_cache.RedisRateCache{}, v)
			},
		},
		{desc: "bad redis url", driver: CacheDriverRedis, url: "://nope", wantErr: true},
		{desc: "unknown driver", driver: "memcached", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			cfg.Cache.Driver = tc.driver
			cfg.Redis.URL = tc.url

			c, closeCache, err := NewRateCache(cfg, logger)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, c)
			assert.NoError(t, closeCache())
		})
	}
}

func TestNewRateSystem(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, closeRates, err := NewRateSystem(testConfig(), nil, logger)
	require.NoError(t, err)
	assert.NotNil(t, svc)
	assert.NoError(t, closeRates())
}

func TestNewRateSystem_CloseReleasesRedisClient(t *testing.T) {
	t.Parallel()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mr := miniredis.RunT(t)

	cfg := testConfig()
	cfg.Cache.Driver = CacheDriverRedis
	cfg.Redis.URL = "redis://" + mr.Addr() + "/0"

	svc, closeRates, err := NewRateSystem(cfg, nil, logger)
	require.NoError(t, err)
	_, err = svc.CurrentRate(context.Background())
	require.NoError(t, err)

	require.NoError(t, closeRates())
	_, err = svc.CurrentRate(context.Background())
	assert.ErrorIs(t, err, redis.ErrClosed)
}
