// Package services holds the listing query, listing mutation and
// reference-data services. Services receive the caller identity as an
// explicit argument and never read session state themselves.
package services

import "errors"

var (
	// ErrNotFound means the referenced property does not exist.
	ErrNotFound = errors.New("property not found")
	// ErrForbidden means the caller is not the owner of the property.
	ErrForbidden = errors.New("not authorized")
	// ErrUnauthenticated means no caller identity was supplied.
	ErrUnauthenticated = errors.New("user not authenticated")
)

// ValidationError reports a missing required field or an invalid enum
// value in a request payload. The caller must correct the input; the
// request is not retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
