// Package search holds the query state of list views (search results,
// latest posts, the admin post table) and resolves it against the API.
//
// Input changes are debounced; every request is tagged with a sequence
// number and only the response to the most recently issued request is
// applied, so a slow reply to an old query can never overwrite a newer one.
package search
