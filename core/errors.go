package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError reports malformed input, eg. an unknown course kind.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return err.Fields[0].Field + ": " + err.Fields[0].Error
		}
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

// ConflictError reports a duplicate primary key.
type ConflictError struct{ Err error }

func NewConflictError(msg string) error { return &ConflictError{errors.New(msg)} }

func (err ConflictError) Error() string { return err.Err.Error() }
func (err ConflictError) Unwrap() error { return err.Err }

// NotFoundError reports an unknown ID or a missing record.
type NotFoundError struct{ Err error }

func NewNotFoundError(msg string) error { return &NotFoundError{errors.New(msg)} }

func (err NotFoundError) Error() string { return err.Err.Error() }
func (err NotFoundError) Unwrap() error { return err.Err }

// AuthError reports a credential mismatch.
type AuthError struct{ Err error }

func NewAuthError(msg string) error { return &AuthError{errors.New(msg)} }

func (err AuthError) Error() string { return err.Err.Error() }
func (err AuthError) Unwrap() error { return err.Err }

// AuthzError reports an operation the account is not allowed to perform,
// eg. a teacher recording a session for a course they do not teach.
type AuthzError struct{ Err error }

func NewAuthzError(msg string) error { return &AuthzError{errors.New(msg)} }

func (err AuthzError) Error() string { return err.Err.Error() }
func (err AuthzError) Unwrap() error { return err.Err }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAuth(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

func IsAuthz(err error) bool {
	var target *AuthzError
	return errors.As(err, &target)
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
