// Package apperror carries status-coded errors from the usecase layer up to
// the single HTTP boundary that turns them into response envelopes.
package apperror

import (
	"errors"
	"net/http"
)

// AppError is the only error type that crosses the usecase boundary with a
// client-facing message. Anything else is treated as internal.
type AppError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(statusCode int, message string, details ...string) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Errors: details}
}

func BadRequest(message string, details ...string) *AppError {
	return New(http.StatusBadRequest, message, details...)
}

func Unauthorized(message string, details ...string) *AppError {
	return New(http.StatusUnauthorized, message, details...)
}

func Forbidden(message string, details ...string) *AppError {
	return New(http.StatusForbidden, message, details...)
}

func NotFound(message string, details ...string) *AppError {
	return New(http.StatusNotFound, message, details...)
}

func Internal(message string, details ...string) *AppError {
	return New(http.StatusInternalServerError, message, details...)
}

// From normalizes any error to an AppError. Unknown errors map to a generic
// 500 so storage internals never leak into the message field.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Something went wrong")
}

// StatusCode returns the HTTP status an error maps to.
func StatusCode(err error) int {
	return From(err).StatusCode
}

// IsStatus reports whether err maps to the given HTTP status.
func IsStatus(err error, statusCode int) bool {
	return StatusCode(err) == statusCode
}
