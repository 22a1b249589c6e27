// Package errs defines the error taxonomy shared by the validation helpers,
// the repository and the console controller.
//
// Callers compare with errors.Is for the sentinels and errors.As for
// *ValidationError; both survive wrapping with fmt.Errorf("...: %w").
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation needs a country that is not stored.
	ErrNotFound = errors.New("country not found")

	// ErrAlreadyExists is returned when a create would duplicate a stored code.
	ErrAlreadyExists = errors.New("country already exists")
)

// ValidationError reports malformed user input for a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a *ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// CodeError attaches the country code an error refers to.
type CodeError struct {
	Code string
	Err  error
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("country %s: %v", e.Code, e.Err)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// ForCode wraps err with code. A nil err stays nil.
func ForCode(code string, err error) error {
	if err == nil {
		return nil
	}
	return &CodeError{Code: code, Err: err}
}

// CodeOf returns the code carried by err, or "" when there is none.
func CodeOf(err error) string {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}
