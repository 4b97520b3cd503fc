package parceltype

import (
	"context"

	"github.com/amirasaad/parcels/infra/repository/gormerr"
	"github.com/amirasaad/parcels/pkg/domain"
	repo "github.com/amirasaad/parcels/pkg/repository"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a parcel type repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.ParcelTypeRepository {
	return &repository{db: db}
}

// List implements repository.ParcelTypeRepository.
func (r *repository) List(ctx context.Context) ([]domain.ParcelType, error) {
	var models []ParcelType
	err := gormerr.WrapError(func() error {
		return r.db.WithContext(ctx).Order("id").Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	result := make([]domain.ParcelType, 0, len(models))
	for i := range models {
		result = append(result, models[i].toDomain())
	}
	return result, nil
}

// Get implements repository.ParcelTypeRepository.
func (r *repository) Get(ctx context.Context, id int64) (*domain.ParcelType, error) {
	var m ParcelType
	err := gormerr.WrapError(func() error {
		return r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	pt := m.toDomain()
	return &pt, nil
}

// Count implements repository.ParcelTypeRepository.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := gormerr.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&ParcelType{}).Count(&n).Error
	})
	return n, err
}

// CreateMany implements repository.ParcelTypeRepository.
func (r *repository) CreateMany(ctx context.Context, types []domain.ParcelType) error {
	if len(types) == 0 {
		return nil
	}
	models := make([]ParcelType, 0, len(types))
	for _, t := range types {
		models = append(models, ParcelType{ID: t.ID, Name: t.Name})
	}
	return gormerr.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&models).Error
	})
}
