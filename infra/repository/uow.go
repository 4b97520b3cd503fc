package repository

import (
	"context"
	"fmt"
	"reflect"

	"github.com/amirasaad/parcels/infra/repository/gormerr"
	"github.com/amirasaad/parcels/infra/repository/parcel"
	"github.com/amirasaad/parcels/infra/repository/parceltype"
	"github.com/amirasaad/parcels/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained inside Do share the transaction session.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

var _ repository.UnitOfWork = (*UoW)(nil)

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*repository.ParcelRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return parcel.New(db)
			},
			reflect.TypeOf((*repository.ParcelTypeRepository)(nil)).Elem(): func(db *gorm.DB) any {
				return parceltype.New(db)
			},
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
// Any error returned by fn, or by commit, rolls the transaction back.
// Database errors are annotated with their domain counterpart.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return gormerr.Annotate(err)
}

// GetRepository provides generic, type-safe access to repositories using the transaction session.
// Outside Do the repositories use the root session.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	return constructor(u.session()), nil
}

// ParcelRepository returns the parcel repository bound to the current session.
func (u *UoW) ParcelRepository() (repository.ParcelRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.ParcelRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.ParcelRepository), nil
}

// ParcelTypeRepository returns the parcel type repository bound to the current session.
func (u *UoW) ParcelTypeRepository() (repository.ParcelTypeRepository, error) {
	repoAny, err := u.GetRepository(reflect.TypeOf((*repository.ParcelTypeRepository)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	return repoAny.(repository.ParcelTypeRepository), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
