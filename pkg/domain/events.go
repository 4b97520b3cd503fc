package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeParcelRegistered = "parcel.registered"
	EventTypeParcelPriced     = "parcel.priced"
)

// ParcelRegistered is emitted after a parcel is stored.
type ParcelRegistered struct {
	ParcelID     int64     `json:"parcel_id"`
	SessionID    string    `json:"session_id"`
	ParcelTypeID int64     `json:"parcel_type_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (ParcelRegistered) Type() string { return EventTypeParcelRegistered }

// Key partitions events of the same parcel together.
func (e ParcelRegistered) Key() string { return strconv.FormatInt(e.ParcelID, 10) }

// ParcelPriced is emitted once per parcel after the pricing run that
// assigned its delivery cost has committed.
type ParcelPriced struct {
	ParcelID     int64     `json:"parcel_id"`
	SessionID    string    `json:"session_id"`
	DeliveryCost float64   `json:"delivery_cost"`
	Rate         float64   `json:"rate"`
	RunID        uuid.UUID `json:"run_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (ParcelPriced) Type() string { return EventTypeParcelPriced }

func (e ParcelPriced) Key() string { return strconv.FormatInt(e.ParcelID, 10) }
