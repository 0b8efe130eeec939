package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrPersistence     = errors.New("persistence failure")
	ErrUnexpectedShape = errors.New("unexpected shape")
	ErrConflict        = errors.New("conflict")
)

// ValidationError reports a missing or out-of-range input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError carries the entity name so handlers can answer
// "Disease not found" instead of a bare 404.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NotFound(entity string) error { return &NotFoundError{Entity: entity} }

// PersistenceError wraps a store failure. The store does not tell us
// whether a failure is transient, so neither do we.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }

func (e *PersistenceError) Is(target error) bool { return target == ErrPersistence }

func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// UnexpectedShapeError is returned when a value has the wrong JSON kind,
// e.g. an object where a list of strings was expected.
type UnexpectedShapeError struct {
	Field string
	Got   string
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("%s: unexpected %s", e.Field, e.Got)
}

func (e *UnexpectedShapeError) Is(target error) bool { return target == ErrUnexpectedShape }

// ConflictError is returned when a write would break a relationship,
// e.g. deleting a plant that still has diseases under the restrict policy.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func Conflict(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// Required returns a ValidationError when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	return &ValidationError{Field: field, Reason: "is required"}
}
