// Package common contains shared constants used across the techblog client
// packages.
package common

const (
	// AuthorizationHeaderName carries the bearer credential on outbound API
	// requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)

// Durable storage keys. Both are written together and cleared together.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)
