package customerrors

import "errors"

// ValidationError covers malformed or missing input: non-numeric or
// negative rates, array length mismatches and duplicate price dates.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidation(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError covers references to unknown states, mandis, commodities
// or rate records.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFound(msg string) error {
	return &NotFoundError{Message: msg}
}

// ConflictError covers duplicate names on create or update.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflict(msg string) error {
	return &ConflictError{Message: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
