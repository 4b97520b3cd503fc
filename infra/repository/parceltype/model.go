package parceltype

import "github.com/amirasaad/parcels/pkg/domain"

// ParcelType represents a parcel type record in the database.
type ParcelType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(64);not null;uniqueIndex"`
}

// TableName specifies the table name for the ParcelType model.
func (ParcelType) TableName() string {
	return "parcel_types"
}

func (m *ParcelType) toDomain() domain.ParcelType {
	return domain.ParcelType{ID: m.ID, Name: m.Name}
}
