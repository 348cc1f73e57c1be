// Package errors defines the coded error type shared by domain services and the
// HTTP transport. Codes stay stable so handlers can translate them to statuses
// without inspecting message text.
package errors

import (
	stderrors "errors"
	"net/http"
)

type Code string

const (
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_failed"
	CodeNotFound   Code = "not_found"
	CodeConflict   Code = "conflict"
	CodeInternal   Code = "internal_error"
)

// Error carries a machine-readable code next to a human-readable message. The
// message is safe to surface to callers; it never embeds internal detail.
type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func New(code Code, message string) Error {
	return Error{Code: code, Message: message}
}

// Is reports whether err is a coded error with the given code.
func Is(err error, code Code) bool {
	var e Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors that
// did not originate in this package.
func CodeOf(err error) Code {
	var e Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the caller-safe message for err.
func MessageOf(err error) string {
	var e Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

// ToHTTPStatus maps error codes to HTTP statuses for the transport layer.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
