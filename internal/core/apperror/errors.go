// Package apperror classifies failures into the kinds surfaced to API callers.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable classification of an error.
type Kind string

const (
	// KindValidation means the request failed field constraints.
	KindValidation Kind = "validation"
	// KindAuthentication means the provider rejected our credentials at login time.
	KindAuthentication Kind = "authentication"
	// KindUnauthorized means the provider rejected a previously acquired token on a call.
	KindUnauthorized Kind = "unauthorized"
	// KindNotFound means the provider has no entity with the requested id.
	KindNotFound Kind = "not_found"
	// KindUpstream covers every other provider or network failure.
	KindUpstream Kind = "upstream"
	// KindInternal is a failure inside the gateway itself.
	KindInternal Kind = "internal"
)

// Status returns the HTTP status used when surfacing this kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation, KindUpstream:
		return http.StatusBadRequest
	case KindAuthentication, KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified failure carrying the data a caller needs to react to it.
type Error struct {
	Kind     Kind
	Provider string
	Status   int
	Message  string
	Details  any
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := string(e.Kind)
	if e.Provider != "" {
		prefix = e.Provider + " " + prefix
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s error: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New creates an Error of the given kind with the kind's default status.
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Status:  kind.Status(),
		Message: message,
	}
}

// WithProvider records which provider produced the error.
func (e *Error) WithProvider(provider string) *Error {
	e.Provider = provider
	return e
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// WithDetails attaches structured diagnostic data.
func (e *Error) WithDetails(details any) *Error {
	e.Details = details
	return e
}

// Validation creates a validation error with per-field messages.
func Validation(message string, fields map[string]string) *Error {
	return New(KindValidation, message).WithDetails(fields)
}

// Authentication creates a login-time credential failure.
func Authentication(message string) *Error {
	return New(KindAuthentication, message)
}

// Unauthorized creates a token-rejected-on-call failure.
func Unauthorized(message string) *Error {
	return New(KindUnauthorized, message)
}

// NotFound creates a missing-entity failure.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Upstream creates a generic provider failure.
func Upstream(message string) *Error {
	return New(KindUpstream, message)
}

// Internal creates a gateway-side failure.
func Internal(message string) *Error {
	return New(KindInternal, message)
}

// Sentinels for errors.Is comparisons by kind.
var (
	ErrValidation     = &Error{Kind: KindValidation}
	ErrAuthentication = &Error{Kind: KindAuthentication}
	ErrUnauthorized   = &Error{Kind: KindUnauthorized}
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrUpstream       = &Error{Kind: KindUpstream}
)

// As extracts the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// IsTokenRejected reports whether err means the provider refused the current token,
// which is the only condition a fresh token can fix.
func IsTokenRejected(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// ResponseDetails captures an upstream response for the Details field.
// JSON bodies are kept structured, anything else as text.
func ResponseDetails(status int, body []byte) map[string]any {
	details := map[string]any{"status": status}
	var decoded any
	if json.Unmarshal(body, &decoded) == nil {
		details["body"] = decoded
	} else if len(body) > 0 {
		details["body"] = string(body)
	}
	return details
}
