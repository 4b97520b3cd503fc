package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	infra_cache "github.com/amirasaad/parcels/infra/cache"
	"github.com/amirasaad/parcels/infra/metrics"
	"github.com/amirasaad/parcels/internal/fixtures/mocks"
	"github.com/amirasaad/parcels/pkg/config"
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/provider"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serviceConfig() *config.RateProvider {
	return &config.RateProvider{
		CacheKey:    "usd_rate",
		CacheTTL:    time.Hour,
		DefaultRate: 90.0,
	}
}

func TestRateService_SuccessCachesWithTTL(t *testing.T) {
	t.Parallel()
	srv := serve(http.StatusOK, "application/javascript; charset=utf-8", `var x = {"Valute":{"USD":{"Value":95.5}}};`)
	defer srv.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	cache := infra_cache.NewMemoryCacheWithClock(clock)
	svc := NewRateService(NewCBRFetcher(fetcherConfig(srv.URL), discardLogger()), cache, serviceConfig(), nil, discardLogger())
	svc.now = clock

	assert.InDelta(t, 95.5, svc.GetRate(context.Background()), 1e-9)

	cached, err := cache.Get(context.Background(), "usd_rate")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.InDelta(t, 95.5, cached.Value, 1e-9)
	assert.Equal(t, "cbr", cached.Source)
	assert.Equal(t, now.Add(time.Hour), cached.ExpiresAt)

	current, err := svc.CurrentRate(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.InDelta(t, 95.5, current.Value, 1e-9)
}

func TestRateService_FallbackToCachedValue(t *testing.T) {
	t.Parallel()
	fetcher := mocks.NewMockRateFetcher(t)
	fetcher.EXPECT().Name().Return("cbr")
	fetcher.EXPECT().FetchRate(mock.Anything).Return(0, fmt.Errorf("%w: dial tcp", provider.ErrNetworkFailure)).Once()

	cache := infra_cache.NewMemoryCache()
	require.NoError(t, cache.Set(context.Background(), "usd_rate", &domain.CachedRate{Value: 91.7}, time.Hour))

	svc := NewRateService(fetcher, cache, serviceConfig(), nil, discardLogger())
	assert.InDelta(t, 91.7, svc.GetRate(context.Background()), 1e-9)
}

func TestRateService_FallbackIgnoresExpiry(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	cache := infra_cache.NewMemoryCacheWithClock(clock)
	require.NoError(t, cache.Set(context.Background(), "usd_rate", &domain.CachedRate{Value: 91.7}, time.Hour))
	mu.Lock()
	now = now.Add(3 * time.Hour)
	mu.Unlock()

	fetcher := mocks.NewMockRateFetcher(t)
	fetcher.EXPECT().Name().Return("cbr")
	fetcher.EXPECT().FetchRate(mock.Anything).Return(0, provider.ErrBadStatus).Once()

	svc := NewRateService(fetcher, cache, serviceConfig(), nil, discardLogger())

	current, err := svc.CurrentRate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current, "expired value is not served by the TTL-respecting read")
	assert.InDelta(t, 91.7, svc.GetRate(context.Background()), 1e-9)
}

func TestRateService_FallbackToDefault(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	srv := serve(http.StatusOK, "application/json; charset=utf-8", `no json here`)
	defer srv.Close()

	cache := infra_cache.NewMemoryCache()
	svc := NewRateService(NewCBRFetcher(fetcherConfig(srv.URL), discardLogger()), cache, serviceConfig(), m, discardLogger())

	assert.InDelta(t, 90.0, svc.GetRate(context.Background()), 1e-9)

	cached, err := cache.GetStale(context.Background(), "usd_rate")
	require.NoError(t, err)
	assert.Nil(t, cached, "a failed fetch never writes the cache")
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateFetchesTotal.WithLabelValues("cbr", "malformed_payload")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateFallbacksTotal.WithLabelValues("default")), 0)
}

func TestRateService_ContentTypeRejectionFallsBack(t *testing.T) {
	t.Parallel()
	srv := serve(http.StatusOK, "text/plain; charset=utf-8", `{"Valute":{"USD":{"Value":95.5}}}`)
	defer srv.Close()

	cache := infra_cache.NewMemoryCache()
	require.NoError(t, cache.Set(context.Background(), "usd_rate", &domain.CachedRate{Value: 89.9}, time.Hour))
	svc := NewRateService(NewCBRFetcher(fetcherConfig(srv.URL), discardLogger()), cache, serviceConfig(), nil, discardLogger())

	assert.InDelta(t, 89.9, svc.GetRate(context.Background()), 1e-9)
}

func TestRateService_CacheReadErrorFallsBackToDefault(t *testing.T) {
	t.Parallel()
	fetcher := mocks.NewMockRateFetcher(t)
	fetcher.EXPECT().Name().Return("cbr")
	fetcher.EXPECT().FetchRate(mock.Anything).Return(0, provider.ErrNetworkFailure)

	cache := mocks.NewMockRateCache(t)
	cache.EXPECT().GetStale(mock.Anything, "usd_rate").Return(nil, errors.New("redis down"))

	svc := NewRateService(fetcher, cache, serviceConfig(), nil, discardLogger())
	assert.InDelta(t, 90.0, svc.GetRate(context.Background()), 1e-9)
}

func TestRateService_CacheWriteErrorStillReturnsRate(t *testing.T) {
	t.Parallel()
	fetcher := mocks.NewMockRateFetcher(t)
	fetcher.EXPECT().Name().Return("cbr")
	fetcher.EXPECT().FetchRate(mock.Anything).Return(95.5, nil)

	cache := mocks.NewMockRateCache(t)
	cache.EXPECT().Set(mock.Anything, "usd_rate", mock.Anything, time.Hour).Return(errors.New("redis down"))

	svc := NewRateService(fetcher, cache, serviceConfig(), nil, discardLogger())
	assert.InDelta(t, 95.5, svc.GetRate(context.Background()), 1e-9)
}

func TestRateService_ConcurrentCallersShareFetch(t *testing.T) {
	t.Parallel()
	var fetches int32
	release := make(chan struct{})
	fetcher := mocks.NewMockRateFetcher(t)
	fetcher.EXPECT().Name().Return("cbr")
	fetcher.EXPECT().FetchRate(mock.Anything).RunAndReturn(func(context.Context) (float64, error) {
		atomic.AddInt32(&fetches, 1)
		<-release
		return 92.0, nil
	})

	svc := NewRateService(fetcher, infra_cache.NewMemoryCache(), serviceConfig(), nil, discardLogger())

	const callers = 8
	var started, wg sync.WaitGroup
	results := make([]float64, callers)
	started.Add(callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			results[i] = svc.GetRate(context.Background())
		}()
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, r := range results {
		assert.InDelta(t, 92.0, r, 1e-9)
	}
	assert.Less(t, atomic.LoadInt32(&fetches), int32(callers))
}

func TestRateService_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	t.Parallel()
	fetching := make(chan struct{})
	release := make(chan struct{})
	fetcher := mocks.NewMockRateFetcher(t)
	fetcher.EXPECT().Name().Return("cbr")
	fetcher.EXPECT().FetchRate(mock.Anything).RunAndReturn(func(ctx context.Context) (float64, error) {
		close(fetching)
		<-release
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", provider.ErrNetworkFailure, err)
		}
		return 93.25, nil
	}).Once()

	svc := NewRateService(fetcher, infra_cache.NewMemoryCache(), serviceConfig(), nil, discardLogger())

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	first := make(chan float64, 1)
	go func() { first <- svc.GetRate(firstCtx) }()
	<-fetching

	second := make(chan float64, 1)
	go func() { second <- svc.GetRate(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	select {
	case r := <-first:
		assert.InDelta(t, 90.0, r, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting on the shared fetch")
	}

	close(release)
	select {
	case r := <-second:
		assert.InDelta(t, 93.25, r, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("second caller did not receive the fetched rate")
	}
}
