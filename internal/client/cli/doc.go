// Package cli provides the interactive Tech Blog terminal client.
//
// It wires configuration, durable session storage, the API client, the
// session manager and the list controllers into a REPL. On start the stored
// session is restored and the API's health is checked; commands then
// search, browse by category, page through and read posts, and (for
// signed-in authors) edit posts, categories, uploads and the profile.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
