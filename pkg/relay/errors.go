package relay

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a relay failure. Every kind maps onto an HTTP status code.
type Kind string

const (
	// KindInvalidArgument is a bad network, identifier or query parameter (400).
	KindInvalidArgument Kind = "InvalidArgument"
	// KindUnauthorized means the upstream rejected the API key (401).
	KindUnauthorized Kind = "Unauthorized"
	// KindNotFound means the upstream has no such token, wallet or pair (404).
	KindNotFound Kind = "NotFound"
	// KindUpstreamError is any other non-200 upstream answer; the upstream status is kept.
	KindUpstreamError Kind = "UpstreamError"
	// KindUpstreamUnavailable means no HTTP response was received from the upstream (500).
	KindUpstreamUnavailable Kind = "UpstreamUnavailable"
	// KindConfiguration means the relay is not configured to call the upstream (500).
	KindConfiguration Kind = "ConfigurationError"
)

// maxUpstreamMessageChars bounds how much of an upstream body is echoed in error messages.
const maxUpstreamMessageChars = 200

// Error is returned by every relay operation that does not yield an upstream body.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a *Error from err. Errors of any other type are reported as
// KindUpstreamUnavailable so callers always have a status to answer with.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}

	var relayErr *Error
	if errors.As(err, &relayErr) {
		return relayErr
	}

	return &Error{
		Kind:       KindUpstreamUnavailable,
		StatusCode: http.StatusInternalServerError,
		Message:    "unexpected relay failure",
		Err:        err,
	}
}

// IsKind reports whether err is a relay error of the given kind.
func IsKind(err error, kind Kind) bool {
	var relayErr *Error
	return errors.As(err, &relayErr) && relayErr.Kind == kind
}

// NewInvalidArgumentError creates a KindInvalidArgument error.
func NewInvalidArgumentError(format string, args ...any) error {
	return &Error{
		Kind:       KindInvalidArgument,
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf(format, args...),
	}
}

// NewConfigurationError creates a KindConfiguration error.
func NewConfigurationError(message string) error {
	return &Error{
		Kind:       KindConfiguration,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}

// NewUpstreamUnavailableError wraps a transport failure.
func NewUpstreamUnavailableError(err error) error {
	return &Error{
		Kind:       KindUpstreamUnavailable,
		StatusCode: http.StatusInternalServerError,
		Message:    "upstream service is unavailable",
		Err:        err,
	}
}
