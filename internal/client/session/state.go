package session

import "github.com/dmitrijs2005/techblog/internal/client/models"

// State is a snapshot of the session. IsAuthenticated is only ever set by a
// successful login, register or token verification.
type State struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// initialState is the state before Restore has run.
func initialState() State {
	return State{IsLoading: true}
}

func (s State) clone() State {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
