package apperror

import (
	"errors"
	"net/http"
)

// ErrInvalidID is returned when an identifier is not a well-formed UUID
var ErrInvalidID = errors.New("invalid ID format")

// Error is a failure with a fixed HTTP status and client-facing message
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with the given status and message
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }

// StatusOf returns the status carried by err, or 0 if err is not an *Error
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}
