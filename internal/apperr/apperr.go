// Package apperr defines the closed set of application error kinds and
// their HTTP status mapping.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error. The set is closed: every error
// surfaced to the transport layer carries exactly one of these kinds.
type Kind string

const (
	KindValidation Kind = "ValidationError"
	KindProcessing Kind = "ProcessingError"
	KindConnection Kind = "SalesforceConnectionError"
	KindEnrichment Kind = "EnrichmentServiceError"
	KindCache      Kind = "CacheError"
	KindRateLimit  Kind = "RateLimitError"
	KindInternal   Kind = "InternalServerError"
)

// Error is a typed application error. Field is set only for validation
// errors that can be attributed to a single request field.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Message + ": " + e.err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

// Validation creates a validation error attributed to a request field.
func Validation(message, field string) *Error {
	return &Error{Kind: KindValidation, Message: message, Field: field}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal if none is present.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindProcessing:
		return http.StatusUnprocessableEntity
	case KindConnection:
		return http.StatusServiceUnavailable
	case KindEnrichment:
		return http.StatusBadGateway
	case KindCache:
		return http.StatusInternalServerError
	case KindRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
