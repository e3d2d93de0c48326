package model

import (
	"errors"
	"fmt"
)

// ErrInvalidJSON is returned when the request body cannot be decoded.
var ErrInvalidJSON = errors.New("invalid json in request body")

// ValidationKind classifies client-side validation failures.
type ValidationKind string

const (
	KindInvalidFormat           ValidationKind = "invalid_format"
	KindMissingField            ValidationKind = "missing_field"
	KindInvalidFieldType        ValidationKind = "invalid_field_type"
	KindInvalidNotificationType ValidationKind = "invalid_notification_type"
	KindInvalidPhoneFormat      ValidationKind = "invalid_phone_format"
	KindInvalidEmailFormat      ValidationKind = "invalid_email_format"
)

// ValidationError is a client mistake. Its Message is safe to return to the caller verbatim.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func NewValidationError(kind ValidationKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BackendError wraps a failed call to the messaging backend.
// The wrapped detail is for logs only and must not reach the caller.
type BackendError struct {
	Op  string
	Err error
}

func NewBackendError(op string, err error) *BackendError {
	return &BackendError{Op: op, Err: err}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
