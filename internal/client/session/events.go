package session

import (
	"fmt"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// Event is a session transition. The set is closed: only the types below
// implement it.
type Event interface {
	sessionEvent()
}

type (
	// LoginStarted marks an in-flight login or register call.
	LoginStarted struct{}
	// LoginSucceeded installs an accepted user and token.
	LoginSucceeded struct {
		User  *models.User
		Token string
	}
	// LoginFailed records a rejected login or register. User and Token are
	// left as they were.
	LoginFailed struct {
		Message string
	}
	// LoggedOut resets the session to the empty, settled state.
	LoggedOut  struct{}
	LoadingSet struct {
		Loading bool
	}
	ErrorCleared struct{}
	// UserUpdated merges a server-returned profile into the current user.
	// Fields names the keys the server sent; nil means all of them.
	UserUpdated struct {
		User   *models.User
		Fields []string
	}
)

func (LoginStarted) sessionEvent()   {}
func (LoginSucceeded) sessionEvent() {}
func (LoginFailed) sessionEvent()    {}
func (LoggedOut) sessionEvent()      {}
func (LoadingSet) sessionEvent()     {}
func (ErrorCleared) sessionEvent()   {}
func (UserUpdated) sessionEvent()    {}

// Reduce returns the state that follows s after e.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case LoginStarted:
		s.IsLoading = true
		s.Error = ""
	case LoginSucceeded:
		s = State{User: e.User, Token: e.Token, IsAuthenticated: true}
	case LoginFailed:
		s.IsAuthenticated = false
		s.IsLoading = false
		s.Error = e.Message
	case LoggedOut:
		s = State{}
	case LoadingSet:
		s.IsLoading = e.Loading
	case ErrorCleared:
		s.Error = ""
	case UserUpdated:
		s.User = s.User.Merge(e.User, e.Fields...)
	default:
		panic(fmt.Sprintf("session: unhandled event %T", e))
	}
	return s
}

func eventName(e Event) string {
	switch e.(type) {
	case LoginStarted:
		return "login_started"
	case LoginSucceeded:
		return "login_succeeded"
	case LoginFailed:
		return "login_failed"
	case LoggedOut:
		return "logged_out"
	case LoadingSet:
		return "loading_set"
	case ErrorCleared:
		return "error_cleared"
	case UserUpdated:
		return "user_updated"
	}
	return fmt.Sprintf("%T", e)
}
