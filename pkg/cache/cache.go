package cache

import (
	"context"
	"time"

	"github.com/amirasaad/parcels/pkg/domain"
)

// RateCache defines the interface for caching exchange rates.
//
// Get honours the entry TTL and returns (nil, nil) on a miss or expired entry.
// GetStale returns the last value written under key regardless of expiry.
type RateCache interface {
	Get(ctx context.Context, key string) (*domain.CachedRate, error)
	GetStale(ctx context.Context, key string) (*domain.CachedRate, error)
	Set(ctx context.Context, key string, rate *domain.CachedRate, ttl time.Duration) error
}
