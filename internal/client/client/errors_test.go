package client

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError_Messages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"flat", `{"success":false,"message":"Email already in use"}`, "Email already in use"},
		{"nested", `{"success":false,"error":{"code":"VALIDATION","message":"bad input"}}`, "bad input"},
		{"none", `{"success":false}`, ""},
		{"not json", `<html>oops</html>`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newAPIError(http.StatusBadRequest, []byte(tt.body)).Message)
		})
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	assert.ErrorIs(t, &APIError{Status: 401}, ErrUnauthorized)
	assert.ErrorIs(t, &APIError{Status: 403}, ErrUnauthorized)
	assert.ErrorIs(t, &APIError{Status: 404}, ErrNotFound)
	assert.ErrorIs(t, &APIError{Status: 503}, ErrUnavailable)
	assert.ErrorIs(t, &APIError{Status: 200, Message: "Post is archived"}, ErrRejected)
	assert.Nil(t, errors.Unwrap(&APIError{Status: 400}))
}

func TestMessage(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", &APIError{Status: 400, Message: "Username taken"})

	assert.Equal(t, "Username taken", Message(wrapped, "Registration failed"))
	assert.Equal(t, "Registration failed", Message(&APIError{Status: 500}, "Registration failed"))
	assert.Equal(t, "Registration failed", Message(ErrUnavailable, "Registration failed"))
}
