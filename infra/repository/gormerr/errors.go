// Package gormerr maps GORM errors to domain errors at the repository boundary.
package gormerr

import (
	"errors"
	"fmt"

	"github.com/amirasaad/parcels/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM errors to domain errors.
// This keeps infrastructure concerns (database errors) within the infrastructure layer.
// Traverses the error chain to find GORM errors and maps them to appropriate domain errors.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		case errors.Is(currentErr, gorm.ErrForeignKeyViolated):
			return domain.ErrUnknownParcelType
		case errors.Is(currentErr, gorm.ErrCheckConstraintViolated):
			return domain.ErrValidation
		}

		currentErr = errors.Unwrap(currentErr)
	}

	// Return original error if no mapping found
	return err
}

// Annotate prefixes err with its domain counterpart, keeping the GORM error
// in the chain. Errors that already carry their domain error are returned as is.
func Annotate(err error) error {
	mapped := MapGormErrorToDomain(err)
	if mapped == err || errors.Is(err, mapped) {
		return err
	}
	return fmt.Errorf("%w: %w", mapped, err)
}

// WrapError runs a GORM operation and annotates its error.
//
// Usage:
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(parcel).Error
//	})
func WrapError(op func() error) error {
	return Annotate(op())
}
