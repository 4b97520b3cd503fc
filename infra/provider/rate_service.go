package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/parcels/infra/metrics"
	"github.com/amirasaad/parcels/pkg/cache"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/provider"
	"golang.org/x/sync/singleflight"
)

const (
	sourceStale   = "stale"
	sourceDefault = "default"
)

// RateService hands out the exchange rate used for pricing.
//
// Each GetRate fetches from the external source. On failure it falls back to
// the last cached value regardless of expiry, then to the configured default.
// Concurrent callers share one in-flight fetch, which makes the fetch the
// only writer of the cache key.
type RateService struct {
	fetcher     provider.RateFetcher
	cache       cache.RateCache
	key         string
	ttl         time.Duration
	defaultRate float64
	now         func() time.Time
	group       singleflight.Group
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

var _ provider.RateProvider = (*RateService)(nil)

// NewRateService creates a rate service. m may be nil.
func NewRateService(
	fetcher provider.RateFetcher,
	rateCache cache.RateCache,
	cfg *config.RateProvider,
	m *metrics.Metrics,
	logger *slog.Logger,
) *RateService {
	return &RateService{
		fetcher:     fetcher,
		cache:       rateCache,
		key:         cfg.CacheKey,
		ttl:         cfg.CacheTTL,
		defaultRate: cfg.DefaultRate,
		now:         time.Now,
		metrics:     m,
		logger:      logger.With("component", "rate_service"),
	}
}

// GetRate never fails to the caller.
//
// The shared fetch runs detached from any single caller's cancellation. A
// caller whose ctx ends first stops waiting and gets the fallback rate.
func (s *RateService) GetRate(ctx context.Context) float64 {
	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(s.key, func() (any, error) {
		return s.fetchOrFallback(detached), nil
	})

	var rate float64
	select {
	case res := <-ch:
		rate = res.Val.(float64)
	case <-ctx.Done():
		s.logger.Debug("Caller stopped waiting for exchange rate", "error", ctx.Err())
		rate = s.fallback(detached)
	}
	s.metrics.RecordRate(rate)
	return rate
}

// CurrentRate returns the cached rate if it has not expired, or nil.
func (s *RateService) CurrentRate(ctx context.Context) (*domain.CachedRate, error) {
	return s.cache.Get(ctx, s.key)
}

func (s *RateService) fetchOrFallback(ctx context.Context) float64 {
	value, err := s.fetcher.FetchRate(ctx)
	s.metrics.RecordRateFetch(s.fetcher.Name(), err)
	if err == nil {
		now := s.now()
		entry := &domain.CachedRate{
			Value:     value,
			Source:    s.fetcher.Name(),
			FetchedAt: now,
			ExpiresAt: now.Add(s.ttl),
		}
		if err := s.cache.Set(ctx, s.key, entry, s.ttl); err != nil {
			s.logger.Warn("Failed to cache exchange rate", "key", s.key, "error", err)
		}
		s.logger.Debug("Exchange rate fetched", "provider", s.fetcher.Name(), "rate", value)
		return value
	}

	s.logger.Warn("Exchange rate fetch failed, using fallback",
		"provider", s.fetcher.Name(),
		"error", err,
	)
	return s.fallback(ctx)
}

func (s *RateService) fallback(ctx context.Context) float64 {
	cached, err := s.cache.GetStale(ctx, s.key)
	if err != nil {
		s.logger.Warn("Failed to read cached exchange rate", "key", s.key, "error", err)
	}
	if err == nil && cached != nil {
		s.metrics.RecordRateFallback(sourceStale)
		s.logger.Info("Using last cached exchange rate",
			"rate", cached.Value,
			"fetched_at", cached.FetchedAt,
			"expired", cached.Expired(s.now()),
		)
		return cached.Value
	}

	s.metrics.RecordRateFallback(sourceDefault)
	s.logger.Info("Using default exchange rate", "rate", s.defaultRate)
	return s.defaultRate
}
