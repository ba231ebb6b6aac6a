package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	// ErrSchema marks input that no longer matches the fixed lookup tables
	// or the structure the source schema guarantees. It aborts a run.
	ErrSchema = errors.New("schema assumption violated")
)

// SchemaError describes a fatal mismatch between an input document and the
// schema the extractor was written for.
type SchemaError struct {
	SenseID string
	Field   string
	Value   string
	Message string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("schema: %s", e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	msg += ": " + e.Message
	if e.SenseID != "" {
		msg += fmt.Sprintf(" (sense %s)", e.SenseID)
	}
	return msg
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// NewSchemaError creates a SchemaError.
func NewSchemaError(senseID, field, value, message string) *SchemaError {
	return &SchemaError{SenseID: senseID, Field: field, Value: value, Message: message}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
