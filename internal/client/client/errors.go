package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrRejected is a 2xx response whose envelope says success=false.
	ErrRejected = errors.New("request rejected")
)

// APIError is a non-2xx response, or a 2xx one with success=false.
// Message is the server-provided text, if any.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status >= 200 && e.Status < 300:
		return ErrRejected
	case e.Status == http.StatusUnauthorized, e.Status == http.StatusForbidden:
		return ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= http.StatusInternalServerError:
		return ErrUnavailable
	default:
		return nil
	}
}

// newAPIError pulls a message out of either {"message": "..."} or
// {"error": {"message": "..."}} bodies.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(payload.Message)
	if apiErr.Message == "" && payload.Error != nil {
		apiErr.Message = strings.TrimSpace(payload.Error.Message)
	}
	return apiErr
}

// Message returns the server-provided message carried by err, or fallback
// when err is a transport failure or the server sent no message.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
