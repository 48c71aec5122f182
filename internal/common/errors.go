// Package common defines shared constants and sentinel errors used across
// the repository, service and HTTP layers. Callers should use errors.Is and
// errors.As to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUpstream     = errors.New("upstream error")

	// Validation errors.
	ErrorValidation        = errors.New("validation error")
	ErrorInvalidEmail      = errors.New("invalid email address")
	ErrorAlreadySubscribed = errors.New("email already subscribed")

	// Session errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError reports a rejected write. Fields lists the missing
// required fields in declaration order; Message overrides the default text
// for non-field problems such as an unknown enum value.
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// Unwrap lets errors.Is(err, ErrorValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrorValidation
}

// MissingFields builds a ValidationError for the given field names.
func MissingFields(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Invalid builds a ValidationError carrying a free-form message.
func Invalid(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
