// Package apperrors defines the service-wide error taxonomy. Every failure
// that crosses a usecase boundary carries one of these codes so the HTTP
// layer can map it to a status without inspecting messages.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

type Code string

const (
	CodeInsufficientStock Code = "INSUFFICIENT_STOCK"
	CodeInvalidState      Code = "INVALID_STATE"
	CodeNotFound          Code = "NOT_FOUND"
	CodeConflict          Code = "CONFLICT"
	CodeValidation        Code = "VALIDATION_ERROR"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the taxonomy code from an error chain. The second return
// is false for errors that did not originate in a usecase (treated as 500s).
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func InsufficientStock(skus []string) *Error {
	return Newf(CodeInsufficientStock, "insufficient stock for %s", strings.Join(skus, ", "))
}

func InvalidState(id, from, to string) *Error {
	return Newf(CodeInvalidState, "reservation %s cannot move from %s to %s", id, from, to)
}

func NotFound(kind, id string) *Error {
	return Newf(CodeNotFound, "%s %s not found", kind, id)
}

func Validation(message string) *Error {
	return New(CodeValidation, message)
}

func Conflict(message string, err error) *Error {
	return Wrap(CodeConflict, message, err)
}
