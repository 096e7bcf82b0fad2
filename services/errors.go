package services

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned by every mutation when no principal was
// resolved for the request. The message is surfaced to the caller verbatim.
var ErrUnauthenticated = errors.New("You must be logged in!")

// ForbiddenError means the principal was resolved but does not own the
// target booking. Action names the rejected category ("modify" or "delete").
type ForbiddenError struct {
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("You are not allowed to %s this booking.", e.Action)
}

// ValidationError carries a user-facing message for input that failed a
// format rule before any store contact.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError wraps a store failure. Error() is the generic message
// shown to the caller; the wrapped error goes to the logs only.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return e.Message
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
