package domain

import "time"

// CachedRate is a foreign-exchange rate (local currency per one USD) held in the cache.
type CachedRate struct {
	Value     float64   `json:"value"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the rate is stale at the given instant.
func (r *CachedRate) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
