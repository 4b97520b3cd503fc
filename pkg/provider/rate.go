package provider

import (
	"context"

	"github.com/amirasaad/parcels/pkg/domain"
)

// RateFetcher fetches a live exchange rate from an external source.
type RateFetcher interface {
	// FetchRate returns the current rate or one of the failure errors.
	FetchRate(ctx context.Context) (float64, error)

	// Name returns the provider's name for logging and identification.
	Name() string
}

// RateProvider hands out the rate used for pricing. GetRate never fails:
// it degrades to the last cached value and then to a configured default.
type RateProvider interface {
	GetRate(ctx context.Context) float64
	CurrentRate(ctx context.Context) (*domain.CachedRate, error)
}
