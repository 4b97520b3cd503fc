package parcel

import (
	"github.com/amirasaad/parcels/pkg/domain"
	"github.com/amirasaad/parcels/pkg/repository"
)

// RegisterRequest represents the request body for registering a parcel.
type RegisterRequest struct {
	Name         string  `json:"name" validate:"required,max=255"`
	Weight       float64 `json:"weight" validate:"gt=0"`
	ParcelTypeID int64   `json:"parcel_type_id" validate:"required,gt=0"`
	ContentValue float64 `json:"content_value" validate:"gt=0"`
}

// ListQuery represents the query parameters of the parcel listing.
type ListQuery struct {
	Page                   int    `query:"page" validate:"min=1"`
	PageSize               int    `query:"page_size" validate:"min=1,max=100"`
	ParcelTypeID           *int64 `query:"parcel_type_id" validate:"omitempty,gt=0"`
	DeliveryCostCalculated *bool  `query:"delivery_cost_calculated"`
}

func (q ListQuery) toFilter() repository.ParcelFilter {
	return repository.ParcelFilter{
		Page:         q.Page,
		PageSize:     q.PageSize,
		ParcelTypeID: q.ParcelTypeID,
		Priced:       q.DeliveryCostCalculated,
	}
}

// ParcelResponse is a parcel as returned to its owner.
// DeliveryCost is null until the pricing job has run.
type ParcelResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Weight       float64  `json:"weight"`
	ParcelTypeID int64    `json:"parcel_type_id"`
	ParcelType   string   `json:"parcel_type"`
	ContentValue float64  `json:"content_value"`
	DeliveryCost *float64 `json:"delivery_cost"`
}

// ParcelTypeResponse is one entry of the parcel type catalog.
type ParcelTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToResponse converts a parcel view to a response DTO
func ToResponse(v *domain.ParcelView) *ParcelResponse {
	if v == nil {
		return nil
	}
	return &ParcelResponse{
		ID:           v.ID,
		Name:         v.Name,
		Weight:       v.Weight,
		ParcelTypeID: v.ParcelTypeID,
		ParcelType:   v.ParcelType,
		ContentValue: v.ContentValue,
		DeliveryCost: v.DeliveryCost,
	}
}

func toResponses(views []domain.ParcelView) []*ParcelResponse {
	out := make([]*ParcelResponse, 0, len(views))
	for i := range views {
		out = append(out, ToResponse(&views[i]))
	}
	return out
}

func toTypeResponses(types []domain.ParcelType) []ParcelTypeResponse {
	out := make([]ParcelTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ParcelTypeResponse(t))
	}
	return out
}
