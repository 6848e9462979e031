package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the failure signal of a transport context: a remote operation that
// completed with a non-success HTTP status. The object model inspects the
// status code in exactly one place (conflict handling during database
// creation) and passes every other failure through to the caller unchanged.
type Error struct {
	// StatusCode is the HTTP status of the failed operation.
	StatusCode int
	// Code is the service-assigned error code, e.g. "Conflict" or "NotFound".
	Code string
	// Message is the service-provided error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("cosmos: %s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("cosmos: %s (%d)", e.Code, e.StatusCode)
}

// NewError creates an Error for the given status code with the service's
// default code string for that status.
func NewError(statusCode int, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       codeForStatus(statusCode),
		Message:    message,
	}
}

// IsStatus reports whether err is a transport Error with the given status.
func IsStatus(err error, statusCode int) bool {
	var te *Error
	return errors.As(err, &te) && te.StatusCode == statusCode
}

// IsConflict reports whether err is a 409 conflict failure.
func IsConflict(err error) bool {
	return IsStatus(err, http.StatusConflict)
}

// IsNotFound reports whether err is a 404 not-found failure.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

// AsError extracts the transport Error from err.
func AsError(err error) (*Error, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

func codeForStatus(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "BadRequest"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusPreconditionFailed:
		return "PreconditionFailed"
	case http.StatusRequestEntityTooLarge:
		return "RequestEntityTooLarge"
	case http.StatusTooManyRequests:
		return "TooManyRequests"
	default:
		return http.StatusText(statusCode)
	}
}
