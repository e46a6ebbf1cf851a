// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors raised before a request leaves the client.
	ErrorValidation = errors.New("validation error")

	// Token inspection errors.
	ErrInvalidToken = errors.New("invalid token")
)
