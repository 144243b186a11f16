package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed completion call. Every failure the client can
// produce carries exactly one of these, so the UI can decide how to present it.
type ErrorKind string

const (
	KindNetwork     ErrorKind = "network_error"
	KindAuth        ErrorKind = "auth_error"
	KindRateLimited ErrorKind = "rate_limited"
	KindServer      ErrorKind = "server_error"
	KindMalformed   ErrorKind = "malformed_response"
)

type APIError struct {
	Kind    ErrorKind
	Status  int // HTTP status when one was received, 0 otherwise
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// KindOf extracts the ErrorKind from an error chain. Unclassified errors
// report as KindNetwork, the catch-all for transport-level failures.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}

func classifyStatus(code int) ErrorKind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code == http.StatusTooManyRequests:
		return KindRateLimited
	default:
		// 5xx and any other unexpected status count as a server-side failure.
		return KindServer
	}
}
