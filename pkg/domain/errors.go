package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrForbidden is returned when a session is not allowed to access a resource
	ErrForbidden = errors.New("forbidden")
	// ErrPersistenceFailure is returned when a batch of writes could not be committed
	ErrPersistenceFailure = errors.New("persistence failure")
)

// Parcel errors
var (
	ErrInvalidWeight       = errors.New("weight must be a positive number")
	ErrInvalidContentValue = errors.New("content value must be a positive number")
	ErrEmptyParcelName     = errors.New("parcel name must not be empty")
	ErrUnknownParcelType   = errors.New("unknown parcel type")
)
