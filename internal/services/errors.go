// Package services holds the resource-level business logic that sits between
// the HTTP handlers and the persistence accessors.
//
// This file defines the error taxonomy shared by every resource. Services
// classify each failure into exactly one Kind; translating a Kind into an
// HTTP status and machine code is left to the handler layer.
package services

import "fmt"

// Kind classifies a service failure.
type Kind int

const (
	// KindInternal covers store failures and broken store guarantees.
	KindInternal Kind = iota
	// KindValidation means the payload violated one or more field constraints.
	KindValidation
	// KindBadRequest means a path identifier was malformed.
	KindBadRequest
	// KindNotFound means a well-formed identifier matched no record.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is a classified service failure.
//
// Details is populated only for KindValidation and maps field names to
// violation messages. Cause keeps the underlying error for logs; it is never
// shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Invalid reports a payload that failed validation.
func Invalid(details map[string]string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: "request validation failed", Details: details, Cause: cause}
}

// BadRequest reports a malformed request element such as a path id.
func BadRequest(msg string, cause error) *Error {
	return &Error{Kind: KindBadRequest, Message: msg, Cause: cause}
}

// NotFound reports that no record of the named resource matched.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Internal wraps an unexpected failure. msg is shown to clients, so it must
// not carry store details; those stay in cause.
func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Cause: cause}
}
