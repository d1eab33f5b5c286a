package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds returned by the service layer. Callers match
// them with errors.Is; richer errors below unwrap to one of these.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrValidationFailed     = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrReferenceUnresolved  = errors.New("reference unresolved")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenInvalid         = errors.New("invalid token")
)

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full set of violations found on a
// record. Callers typically surface the first one but may inspect all.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// ConflictError reports a uniqueness collision on a keyed field,
// whether caught by the pre-write guard or by the store's own unique
// constraint.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// ReferenceError reports a foreign identifier that does not name a
// live record.
type ReferenceError struct {
	Kind string
	ID   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not exist", e.Kind, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrReferenceUnresolved }
