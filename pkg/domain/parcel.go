package domain

import (
	"fmt"
	"strings"
)

const (
	// WeightRate is the per-kilogram component of the delivery cost, in USD.
	WeightRate = 0.5
	// ContentValueRate is the share of the declared content value added to the cost.
	ContentValueRate = 0.01
	// UnknownParcelType is reported when a parcel references a missing type row.
	UnknownParcelType = "unknown"
)

// ParcelType is static reference data seeded once.
type ParcelType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Parcel is a registered shipment owned by a client session.
// DeliveryCost stays nil until the pricing job sets it and never changes afterwards.
type Parcel struct {
	ID           int64
	SessionID    string
	Name         string
	Weight       float64
	ContentValue float64
	ParcelTypeID int64
	DeliveryCost *float64
}

// ParcelView is a parcel joined with the name of its type.
type ParcelView struct {
	Parcel
	ParcelType string
}

// NewParcel validates the input and returns an unpriced parcel.
func NewParcel(
	sessionID, name string,
	weight, contentValue float64,
	parcelTypeID int64,
) (*Parcel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrEmptyParcelName)
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidWeight)
	}
	if contentValue <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, ErrInvalidContentValue)
	}
	return &Parcel{
		SessionID:    sessionID,
		Name:         name,
		Weight:       weight,
		ContentValue: contentValue,
		ParcelTypeID: parcelTypeID,
	}, nil
}

// Priced reports whether the delivery cost has been computed.
func (p *Parcel) Priced() bool {
	return p.DeliveryCost != nil
}

// OwnedBy reports whether the parcel belongs to the given session.
func (p *Parcel) OwnedBy(sessionID string) bool {
	return p.SessionID == sessionID
}

// DeliveryCost computes the delivery cost in local currency.
// No rounding is applied.
func DeliveryCost(weight, contentValue, rate float64) float64 {
	return (weight*WeightRate + contentValue*ContentValueRate) * rate
}
