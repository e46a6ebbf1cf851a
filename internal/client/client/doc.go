// Package client is the typed HTTP client of the Tech Blog REST API.
//
// # Overview
//
// The package provides:
//  1. Transport-agnostic contracts (AuthAPI, PostsAPI, CategoriesAPI and the
//     umbrella Client) consumed by the session and search packages.
//  2. HTTPClient, a JSON-over-HTTP implementation that attaches the bearer
//     token and a request id to every call, opens one client span per
//     request and maps failures to sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     SQLite file that keeps the session between runs.
//
// # Error Handling
//
// Transport failures and timeouts wrap ErrUnavailable. Non-2xx responses
// are *APIError values whose Unwrap maps the status to ErrUnauthorized,
// ErrNotFound or ErrUnavailable. Message extracts the server text for
// display.
//
// # Authorization failures
//
// A 401 on any request except login, register and token verification
// calls Authenticator.Unauthorized, which the session manager turns into a
// process-wide forced logout.
package client
