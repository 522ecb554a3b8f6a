package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Domain errors surfaced to the HTTP layer.
var (
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNotFound           = errors.New("not found")
)

// ValidationError lists the input fields that failed validation, keyed by json name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewFieldError builds a ValidationError for a single field.
func NewFieldError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// validationFailure converts the result of a Validate call into a *ValidationError.
// Returns nil when err is nil.
func validationFailure(err error) error {
	if err == nil {
		return nil
	}
	var ve validation.Errors
	if errors.As(err, &ve) {
		out := &ValidationError{Fields: make(map[string]string, len(ve))}
		for field, fe := range ve {
			out.Fields[field] = fe.Error()
		}
		return out
	}
	// validation.InternalError and friends mean a broken rule, not bad input.
	return fmt.Errorf("validate input: %w", err)
}
