// Package session owns the client's authentication state: the current user,
// the bearer token and the loading/error flags shown by the front end.
//
// State changes are expressed as Event values applied by Reduce; Store holds
// the current State and fans it out to subscribers; Manager runs the remote
// calls (restore, login, register, logout, profile update) and persists the
// credentials.
package session
