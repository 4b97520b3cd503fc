package repository

import (
	"context"

	"github.com/amirasaad/parcels/pkg/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParcelFilter narrows a session's parcel listing.
type ParcelFilter struct {
	Page         int
	PageSize     int
	ParcelTypeID *int64
	// Priced selects parcels with (true) or without (false) a delivery cost.
	Priced *bool
}

// Offset returns the number of rows to skip for the filter's page.
func (f ParcelFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// Limit returns the effective page size.
func (f ParcelFilter) Limit() int {
	if f.PageSize < 1 {
		return DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return f.PageSize
}

// ParcelRepository defines the interface for parcel data access operations.
type ParcelRepository interface {
	// Create persists the parcel and sets its ID.
	Create(ctx context.Context, parcel *domain.Parcel) error
	Get(ctx context.Context, id int64) (*domain.ParcelView, error)
	ListBySession(ctx context.Context, sessionID string, filter ParcelFilter) ([]domain.ParcelView, error)

	// ListUnpriced returns parcels without a delivery cost and locks them
	// for the rest of the enclosing transaction. Rows locked by another
	// transaction are skipped.
	ListUnpriced(ctx context.Context) ([]domain.Parcel, error)

	// SetDeliveryCost assigns a cost to a parcel that has none.
	// It reports false when the parcel was already priced.
	SetDeliveryCost(ctx context.Context, id int64, cost float64) (bool, error)
}

// ParcelTypeRepository defines the interface for parcel type reference data.
type ParcelTypeRepository interface {
	List(ctx context.Context) ([]domain.ParcelType, error)
	Get(ctx context.Context, id int64) (*domain.ParcelType, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, types []domain.ParcelType) error
}
