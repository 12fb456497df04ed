package api

import (
	"errors"
	"fmt"
	nethttp "net/http"

	"go-weather/pkg/http"
)

// Error kinds returned by the gateways. Match them with errors.Is.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("upstream rejected credentials")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidResponse     = errors.New("invalid upstream response")
)

// GatewayError describes a failed upstream call.
type GatewayError struct {
	// Op is the gateway operation, e.g. "forecast.get".
	Op string
	// Kind is one of the Err* sentinels.
	Kind error
	// Status is the upstream HTTP status, 0 when no response was received.
	Status int
	// Message is the upstream error message, when it sent one.
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	} else if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// classifyError maps an http client failure to a GatewayError.
func classifyError(op string, status int, message string, err error) *GatewayError {
	gatewayErr := &GatewayError{Op: op, Status: status, Message: message, Cause: err}

	var decodeErr *http.DecodeError
	var statusErr *http.StatusError
	switch {
	case errors.As(err, &decodeErr):
		gatewayErr.Kind = ErrInvalidResponse
	case errors.As(err, &statusErr):
		gatewayErr.Kind = kindForStatus(statusErr.StatusCode)
	default:
		gatewayErr.Kind = ErrUpstreamUnavailable
	}
	return gatewayErr
}

func kindForStatus(status int) error {
	switch status {
	case nethttp.StatusNotFound:
		return ErrNotFound
	case nethttp.StatusUnauthorized, nethttp.StatusForbidden:
		return ErrUnauthorized
	default:
		return ErrUpstreamUnavailable
	}
}
