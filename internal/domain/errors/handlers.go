package errors

import (
	"fmt"
)

// Validation builds a 400 error carrying one detail per offending field.
func Validation(message string, details ...string) error {
	return ErrValidationFailed.WithMessage(message).WithDetails(details...)
}

// Required is the common "<field> is required" validation failure.
func Required(field string) error {
	return Validation(fmt.Sprintf("%s is required", field))
}

// Dependency marks err as a failure of an external collaborator (blob store, database).
// The cause is kept for logging and never shown to clients.
func Dependency(base *BaseError, err error, message string) error {
	return &dependencyError{base: base, cause: err, context: message}
}

type dependencyError struct {
	base    *BaseError
	cause   error
	context string
}

func (e *dependencyError) Error() string {
	return e.context + ": " + e.cause.Error()
}

func (e *dependencyError) Unwrap() []error {
	return []error{e.base, e.cause}
}

func (e *dependencyError) HTTPCode() int     { return e.base.HTTPCode() }
func (e *dependencyError) ErrorCode() string { return e.base.ErrorCode() }
func (e *dependencyError) Message() string   { return e.base.Message() }
func (e *dependencyError) Details() []string { return nil }
