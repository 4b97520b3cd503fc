package parcel

import (
	"context"

	"github.com/amirasaad/parcels/infra/repository/gormerr"
	"github.com/amirasaad/parcels/pkg/domain"
	repo "github.com/amirasaad/parcels/pkg/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a parcel repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.ParcelRepository {
	return &repository{db: db}
}

// Create implements repository.ParcelRepository.
func (r *repository) Create(ctx context.Context, parcel *domain.Parcel) error {
	m := fromDomain(parcel)
	err := gormerr.WrapError(func() error {
		return r.db.WithContext(ctx).Create(&m).Error
	})
	if err != nil {
		return err
	}
	parcel.ID = m.ID
	return nil
}

// Get implements repository.ParcelRepository.
func (r *repository) Get(ctx context.Context, id int64) (*domain.ParcelView, error) {
	var row viewRow
	err := gormerr.WrapError(func() error {
		return r.views(ctx).Where("parcels.id = ?", id).Take(&row).Error
	})
	if err != nil {
		return nil, err
	}
	view := row.toDomain()
	return &view, nil
}

// ListBySession implements repository.ParcelRepository.
func (r *repository) ListBySession(
	ctx context.Context,
	sessionID string,
	filter repo.ParcelFilter,
) ([]domain.ParcelView, error) {
	q := r.views(ctx).Where("parcels.session_id = ?", sessionID)
	if filter.ParcelTypeID != nil {
		q = q.Where("parcels.parcel_type_id = ?", *filter.ParcelTypeID)
	}
	if filter.Priced != nil {
		if *filter.Priced {
			q = q.Where("parcels.delivery_cost IS NOT NULL")
		} else {
			q = q.Where("parcels.delivery_cost IS NULL")
		}
	}

	var rows []viewRow
	err := gormerr.WrapError(func() error {
		return q.Order("parcels.id ASC").
			Limit(filter.Limit()).
			Offset(filter.Offset()).
			Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	result := make([]domain.ParcelView, 0, len(rows))
	for i := range rows {
		result = append(result, rows[i].toDomain())
	}
	return result, nil
}

// ListUnpriced implements repository.ParcelRepository.
func (r *repository) ListUnpriced(ctx context.Context) ([]domain.Parcel, error) {
	var models []Parcel
	err := gormerr.WrapError(func() error {
		return r.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("delivery_cost IS NULL").
			Order("id").
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}
	result := make([]domain.Parcel, 0, len(models))
	for i := range models {
		result = append(result, models[i].toDomain())
	}
	return result, nil
}

// SetDeliveryCost implements repository.ParcelRepository.
func (r *repository) SetDeliveryCost(ctx context.Context, id int64, cost float64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Parcel{}).
		Where("id = ? AND delivery_cost IS NULL", id).
		Update("delivery_cost", cost)
	if res.Error != nil {
		return false, gormerr.Annotate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("parcels").
		Select("parcels.*, COALESCE(parcel_types.name, ?) AS parcel_type", domain.UnknownParcelType).
		Joins("LEFT JOIN parcel_types ON parcel_types.id = parcels.parcel_type_id")
}
