package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForeignKey is the classified form of a foreign-key constraint violation.
var ErrForeignKey = errors.New("reference id invalid or missing")

// ErrMissingField is the classified form of a not-null constraint violation.
var ErrMissingField = errors.New("missing required field")

// ErrUnknownCollection indicates an operation targeted a collection the store
// does not track.
var ErrUnknownCollection = errors.New("collection does not exist")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks permission for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// MissingFieldError wraps ErrMissingField with the offending column name when
// it could be extracted from the underlying driver error.
func MissingFieldError(field string) error {
	if field == "" {
		return ErrMissingField
	}
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}
