package spotify

import (
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx reply from the Web API.
type StatusError struct {
	StatusCode int
	Endpoint   string
	// Message is the API's own error message, when it sent one.
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("spotify adapter: %s returned status %d", e.Endpoint, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// NotFound reports whether the resource does not exist.
func (e *StatusError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// RateLimited reports whether the API throttled the request.
func (e *StatusError) RateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }
