// Package errors carries the typed application error the API layer maps onto
// HTTP responses.
package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation Code = "VALIDATION_ERROR"
	CodeNotFound   Code = "NOT_FOUND"
	CodeConflict   Code = "CONFLICT"
	CodeInternal   Code = "INTERNAL_ERROR"
	CodeDependency Code = "DEPENDENCY_ERROR"
)

// Metadata describes how a code is rendered at the HTTP boundary.
type Metadata struct {
	HTTPStatus     int
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

// MetadataFor maps a code to its HTTP rendering. Unknown codes fall back to
// the internal-error mapping so nothing leaks by accident.
func MetadataFor(code Code) Metadata {
	switch code {
	case CodeValidation:
		return Metadata{
			HTTPStatus:     http.StatusBadRequest,
			PublicMessage:  "validation failed",
			DetailsAllowed: true,
		}
	case CodeNotFound:
		return Metadata{
			HTTPStatus:    http.StatusNotFound,
			PublicMessage: "resource not found",
		}
	case CodeConflict:
		return Metadata{
			HTTPStatus:     http.StatusConflict,
			PublicMessage:  "conflict detected",
			DetailsAllowed: true,
		}
	case CodeDependency:
		return Metadata{
			HTTPStatus:     http.StatusServiceUnavailable,
			Retryable:      true,
			PublicMessage:  "dependency unavailable",
			DetailsAllowed: true,
		}
	default:
		return Metadata{
			HTTPStatus:    http.StatusInternalServerError,
			Retryable:     true,
			PublicMessage: "internal server error",
		}
	}
}

// Error pairs a code with an operator message, optional wire details, and an
// optional wrapped cause.
type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// As unwraps err to the typed Error if one is anywhere in the chain.
func As(err error) *Error {
	var typed *Error
	if err != nil && stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

// WithDetails attaches a payload surfaced to clients when the code allows it.
func (e *Error) WithDetails(details any) *Error {
	if e != nil {
		e.details = details
	}
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}
