package infra

import (
	"fmt"
	"log/slog"

	infra_cache "github.com/amirasaad/parcels/infra/cache"
	"github.com/amirasaad/parcels/infra/metrics"
	infra_provider "github.com/amirasaad/parcels/infra/provider"
	"github.com/amirasaad/parcels/pkg/cache"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/redis/go-redis/v9"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// NewRateCache builds the rate cache selected by cfg.Cache.Driver. The
// returned func releases the cache's connections.
func NewRateCache(cfg *config.App, logger *slog.Logger) (cache.RateCache, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Cache.Driver {
	case CacheDriverRedis:
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.Error("Invalid Redis URL", "url", cfg.Redis.URL, "error", err)
			return nil, nil, err
		}
		if cfg.Redis.PoolSize > 0 {
			opt.PoolSize = cfg.Redis.PoolSize
		}
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout
		logger.Info("Using Redis for exchange rate cache", "addr", opt.Addr)
		c := infra_cache.NewRedisRateCacheWithOptions(opt, cfg.Redis.KeyPrefix, logger)
		return c, c.Close, nil
	case CacheDriverMemory, "":
		logger.Info("Using in-memory cache for exchange rates")
		return infra_cache.NewMemoryCache(), noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported cache driver %q", cfg.Cache.Driver)
	}
}

// NewRateSystem creates the rate service with its fetcher and cache. The
// returned func closes the cache.
func NewRateSystem(
	cfg *config.App,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*infra_provider.RateService, func() error, error) {
	rateCache, closeCache, err := NewRateCache(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	fetcher := infra_provider.NewCBRFetcher(cfg.RateProvider, logger)
	return infra_provider.NewRateService(fetcher, rateCache, cfg.RateProvider, m, logger), closeCache, nil
}
