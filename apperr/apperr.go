package apperr

import (
	"errors"
	"net/http"
)

// Error is a domain error that knows which HTTP status it maps to. Services
// return it and the handler layer serializes it into the response envelope.
type Error struct {
	Status  int
	Message string
	Errors  any
}

func (e *Error) Error() string {
	return e.Message
}

// WithErrors attaches detail that the envelope exposes under "errors".
func (e *Error) WithErrors(detail any) *Error {
	e.Errors = detail
	return e
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// From classifies err: a *Error passes through unchanged, anything else
// becomes a 500 with a generic message so internals never leak to clients.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: "Internal Server Error",
		Errors:  "An unexpected error occurred",
	}
}
