package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/venturelabs/vlops/internal/common"
)

// ErrMalformedPayload is returned when a response body cannot be decoded.
var ErrMalformedPayload = errors.New("malformed response payload")

// TransportError is a request that never produced an HTTP response.
type TransportError struct {
	Err    error
	Method string
	Path   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError is a non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	Status     string
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("API call failed: %s %s: %s", e.Method, e.Path, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap maps well-known status codes onto the shared sentinel errors.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return common.ErrInvalidInput
	case http.StatusTooManyRequests:
		return common.ErrRateLimit
	case http.StatusServiceUnavailable:
		return common.ErrUnavailable
	default:
		return nil
	}
}

// ErrorKind is the user-facing category of a failed call.
type ErrorKind string

// Error kinds.
const (
	KindConnectivity ErrorKind = "connectivity"
	KindNotFound     ErrorKind = "not_found"
	KindUnauthorized ErrorKind = "unauthorized"
	KindServer       ErrorKind = "server"
	KindGeneric      ErrorKind = "generic"
)

// Categorize maps an error from any provider call to its kind.
func Categorize(err error) ErrorKind {
	var statusErr *StatusError
	var transportErr *TransportError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &statusErr):
		switch code := statusErr.StatusCode; {
		case code == http.StatusNotFound:
			return KindNotFound
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return KindUnauthorized
		case code >= 500:
			return KindServer
		default:
			return KindGeneric
		}
	case errors.Is(err, context.Canceled):
		return KindGeneric
	case errors.As(err, &transportErr), errors.Is(err, context.DeadlineExceeded):
		return KindConnectivity
	case errors.Is(err, common.ErrNotFound):
		return KindNotFound
	default:
		return KindGeneric
	}
}

// UserMessage returns the short message shown to the operator for err.
func UserMessage(err error) string {
	switch Categorize(err) {
	case "":
		return ""
	case KindConnectivity:
		return "Unable to connect to server. Please check your connection."
	case KindNotFound:
		return "Resource not found."
	case KindUnauthorized:
		return "Unauthorized access. Please check your credentials."
	case KindServer:
		return "Server error. Please try again later."
	}

	var userErr *common.UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unexpected error occurred."
}
