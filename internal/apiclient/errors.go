package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError means the request never produced a response; the server was
// unreachable or the connection failed mid-flight.
type NetworkError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError means the server responded with a failure status. Message
// carries the server-supplied message when one was present.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

// ParseError means the response body was not valid JSON when JSON was
// expected.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %v", e.Err)
}

// Unwrap exposes the underlying decode error.
func (e *ParseError) Unwrap() error { return e.Err }

// IsAuthError reports whether err is a 401 from the server. Auth failures
// take precedence over generic error handling: they clear the session
// instead of surfacing an action-failure notification.
func IsAuthError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.StatusCode == http.StatusUnauthorized
}
