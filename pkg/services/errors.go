package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConcurrentModification is returned when optimistic locking fails
	ErrConcurrentModification = errors.New("concurrent modification detected")

	// ErrIllegalTransition is returned when a conversation state transition
	// is not allowed from the current state
	ErrIllegalTransition = errors.New("illegal state transition")

	// ErrBackpressure is returned when a recipient's delivery queue is full
	ErrBackpressure = errors.New("recipient queue full")

	// ErrUpstreamUnavailable is returned when a text generator or tool
	// backend cannot be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PermissionError is returned when an agent invokes a tool outside its
// declared capabilities.
type PermissionError struct {
	AgentID string
	Tool    string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("agent '%s' is not permitted to invoke tool '%s'", e.AgentID, e.Tool)
}

// IsPermissionError checks if an error is a permission error
func IsPermissionError(err error) bool {
	var pe *PermissionError
	return errors.As(err, &pe)
}
