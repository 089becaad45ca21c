package errors

import (
	"errors"
	"net/http"
)

// Sentinel errors returned by repositories and auth primitives.
var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Kind classifies a failure for transport.
type Kind string

const (
	KindValidationFailed   Kind = "validation_failed"
	KindRegistrationFailed Kind = "registration_failed"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindMissingToken       Kind = "missing_token"
	KindInvalidToken       Kind = "invalid_token"
	KindExpiredToken       Kind = "expired_token"
	KindRateLimited        Kind = "rate_limited"
	KindStoreUnavailable   Kind = "store_unavailable"
	KindUnknown            Kind = "unknown"
)

const unknownMessage = "An unknown error occurred."

var kindStatus = map[Kind]int{
	KindValidationFailed:   http.StatusBadRequest,
	KindRegistrationFailed: http.StatusBadRequest,
	KindInvalidCredentials: http.StatusUnauthorized,
	KindMissingToken:       http.StatusUnauthorized,
	KindInvalidToken:       http.StatusForbidden,
	KindExpiredToken:       http.StatusForbidden,
	KindRateLimited:        http.StatusTooManyRequests,
	KindStoreUnavailable:   http.StatusServiceUnavailable,
	KindUnknown:            http.StatusInternalServerError,
}

// Status returns the HTTP status bound to the kind.
func (k Kind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// Error is a classified failure. Message is safe to show to clients,
// Err keeps the internal cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

// New builds a classified error without an internal cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds a classified error keeping err as the internal cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a validation failure carrying field complaints.
func Validation(fields []FieldError) *Error {
	return &Error{Kind: KindValidationFailed, Message: "Validation errors occurred", Fields: fields}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status of the error kind.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Is matches another *Error by kind so callers can test errors.Is(err, New(KindX, "")).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Classify maps any error onto the taxonomy. Unclassified errors become
// KindUnknown with a generic message.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}
	if errors.Is(err, ErrStoreUnavailable) {
		return Wrap(KindStoreUnavailable, "Service temporarily unavailable", err)
	}
	return Wrap(KindUnknown, unknownMessage, err)
}

// KindOf reports the kind of err after classification.
func KindOf(err error) Kind {
	if c := Classify(err); c != nil {
		return c.Kind
	}
	return ""
}
