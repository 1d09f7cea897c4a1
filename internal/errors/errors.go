package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the HTTP boundary can pick a status code.
type Kind int

const (
	// KindInternal is any failure that has not been classified.
	KindInternal Kind = iota
	// KindValidation is a request that broke one or more field rules.
	KindValidation
	// KindUnauthenticated is a request whose credentials were missing or wrong.
	KindUnauthenticated
	// KindForbidden is an authenticated caller acting on someone else's resource.
	KindForbidden
	// KindNotFound is a reference to a record that does not exist.
	KindNotFound
	// KindConstraint is a store constraint violation, such as a duplicate unique key.
	KindConstraint
)

// Error is a classified failure returned by services.
type Error struct {
	Kind    Kind
	Message string
	// Details holds one entry per failed validation rule.
	Details []string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports failed field rules, in the order they were declared.
func Validation(details []string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Details: details}
}

// Unauthenticated reports why credentials were rejected.
func Unauthenticated(reason string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: reason}
}

// Forbidden reports an ownership failure.
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound reports a missing record.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Constraint reports a store constraint violation with its detail.
func Constraint(detail string, err error) *Error {
	return &Error{Kind: KindConstraint, Message: detail, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Message string    `json:"message,omitempty"`
	Errors  []string  `json:"errors,omitempty"`
	Error   *struct{} `json:"error,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string, errs ...string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse. Server errors carry an
// empty "error" object next to the message.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	if len(e.Errors) > 0 {
		return ErrorResponse{Errors: e.Errors}
	}
	resp := ErrorResponse{Message: e.Message}
	if e.StatusCode >= http.StatusInternalServerError {
		resp.Error = &struct{}{}
	}
	return resp
}

// MapErrorToHTTP maps classified errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var e *Error
	if !errors.As(err, &e) {
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	switch e.Kind {
	case KindValidation:
		return NewHTTPError(http.StatusBadRequest, e.Error(), e.Details...)
	case KindConstraint:
		return NewHTTPError(http.StatusBadRequest, e.Error(), e.Error())
	case KindUnauthenticated:
		return NewHTTPError(http.StatusUnauthorized, e.Error())
	case KindForbidden:
		return NewHTTPError(http.StatusForbidden, e.Error())
	case KindNotFound:
		return NewHTTPError(http.StatusNotFound, e.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, e.Error())
	}
}
