package parcel

import (
	"time"

	"github.com/amirasaad/parcels/pkg/domain"
)

// Parcel represents a parcel record in the database.
type Parcel struct {
	ID           int64    `gorm:"primaryKey"`
	SessionID    string   `gorm:"type:varchar(64);not null;index"`
	Name         string   `gorm:"type:varchar(255);not null"`
	Weight       float64  `gorm:"not null"`
	ContentValue float64  `gorm:"not null"`
	ParcelTypeID int64    `gorm:"not null;index"`
	DeliveryCost *float64 `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the Parcel model.
func (Parcel) TableName() string {
	return "parcels"
}

// viewRow is a parcel joined with its type name.
type viewRow struct {
	Parcel
	ParcelType string
}

func fromDomain(p *domain.Parcel) Parcel {
	return Parcel{
		ID:           p.ID,
		SessionID:    p.SessionID,
		Name:         p.Name,
		Weight:       p.Weight,
		ContentValue: p.ContentValue,
		ParcelTypeID: p.ParcelTypeID,
		DeliveryCost: p.DeliveryCost,
	}
}

func (m *Parcel) toDomain() domain.Parcel {
	return domain.Parcel{
		ID:           m.ID,
		SessionID:    m.SessionID,
		Name:         m.Name,
		Weight:       m.Weight,
		ContentValue: m.ContentValue,
		ParcelTypeID: m.ParcelTypeID,
		DeliveryCost: m.DeliveryCost,
	}
}

func (r *viewRow) toDomain() domain.ParcelView {
	typeName := r.ParcelType
	if typeName == "" {
		typeName = domain.UnknownParcelType
	}
	return domain.ParcelView{Parcel: r.Parcel.toDomain(), ParcelType: typeName}
}
