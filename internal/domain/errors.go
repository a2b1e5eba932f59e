package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnavailable     = errors.New("service unavailable")
	ErrConfiguration   = errors.New("configuration error")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to per-field argument failures.
// Use errors.Is(err, ErrInvalidArgument) for simple checks, or
// errors.As(err, &verr) to read verr.Fields.
type ValidationError struct {
	Fields map[string]string
}

// Required returns a ValidationError reporting a single missing field.
func Required(field string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: MsgRequired}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrInvalidArgument.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
