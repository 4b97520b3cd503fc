package pricing

import (
	"time"

	"github.com/amirasaad/parcels/pkg/domain"
)

// TaskAcceptedResponse acknowledges a queued pricing run.
type TaskAcceptedResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
}

// RateResponse is the exchange rate currently held in the cache.
type RateResponse struct {
	Currency  string    `json:"currency"`
	Value     float64   `json:"value"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toRateResponse(currency string, r *domain.CachedRate) RateResponse {
	return RateResponse{
		Currency:  currency,
		Value:     r.Value,
		Source:    r.Source,
		FetchedAt: r.FetchedAt,
		ExpiresAt: r.ExpiresAt,
	}
}
