// Package models defines the client-side shapes of the Tech Blog REST API:
// users, posts, categories, pagination and the response envelope.
package models
