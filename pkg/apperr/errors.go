package apperr

import (
	"errors"
	"net/http"
)

// Error kinds, serialized as the "type" field of the error envelope.
const (
	TypeValidation     = "validation"
	TypeAuthentication = "authentication"
	TypeAuthorization  = "authorization"
	TypeNotFound       = "not_found"
	TypeConflict       = "conflict"
	TypeInternal       = "internal"
)

// Error is an application error that maps onto an HTTP status.
// Data carries optional details, e.g. field -> message for validation errors.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports bad or missing input. fields maps each violated
// field to its message and may be nil.
func Validation(msg string, fields map[string]string) *Error {
	var data any
	if len(fields) > 0 {
		data = fields
	}
	return &Error{Type: TypeValidation, Message: msg, Data: data}
}

// Authentication reports missing, malformed or expired credentials.
func Authentication(msg string) *Error {
	return &Error{Type: TypeAuthentication, Message: msg}
}

// Authorization reports an authenticated caller acting on a resource
// it does not own.
func Authorization(msg string) *Error {
	return &Error{Type: TypeAuthorization, Message: msg}
}

// NotFound reports a missing resource.
func NotFound(msg string) *Error {
	return &Error{Type: TypeNotFound, Message: msg}
}

// Conflict reports a duplicate unique field.
func Conflict(msg string) *Error {
	return &Error{Type: TypeConflict, Message: msg}
}

// From extracts an *Error from err, or returns nil if err is not one.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
