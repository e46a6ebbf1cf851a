package session

import (
	"testing"

	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	u1 := &models.User{ID: "u1", FirstName: "Admin"}
	authed := State{User: u1, Token: "tok1", IsAuthenticated: true}

	tests := []struct {
		name string
		from State
		e    Event
		want State
	}{
		{"login started clears error", State{Error: "old"}, LoginStarted{}, State{IsLoading: true}},
		{"login succeeded", State{IsLoading: true, Error: "x"}, LoginSucceeded{User: u1, Token: "tok1"}, authed},
		{"login failed keeps user and token", State{User: u1, Token: "tok1", IsAuthenticated: true, IsLoading: true}, LoginFailed{Message: "bad"},
			State{User: u1, Token: "tok1", Error: "bad"}},
		{"logged out", State{User: u1, Token: "t", IsAuthenticated: true, Error: "e", IsLoading: true}, LoggedOut{}, State{}},
		{"loading set", State{IsLoading: true}, LoadingSet{Loading: false}, State{}},
		{"error cleared", State{Error: "e", Token: "t"}, ErrorCleared{}, State{Token: "t"}},
		{"user updated merges", authed, UserUpdated{User: &models.User{Bio: "hi"}, Fields: []string{"bio"}},
			State{User: &models.User{ID: "u1", FirstName: "Admin", Bio: "hi"}, Token: "tok1", IsAuthenticated: true}},
		{"user updated clears", State{User: &models.User{ID: "u1", FirstName: "Admin", Bio: "hi"}}, UserUpdated{User: &models.User{}, Fields: []string{"bio"}},
			State{User: &models.User{ID: "u1", FirstName: "Admin"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reduce(tt.from, tt.e))
		})
	}
}

func TestReduce_UserUpdatedDoesNotMutateInput(t *testing.T) {
	u := &models.User{ID: "u1"}
	Reduce(State{User: u}, UserUpdated{User: &models.User{Bio: "x"}, Fields: []string{"bio"}})
	assert.Empty(t, u.Bio)
}

func TestEventName(t *testing.T) {
	assert.Equal(t, "login_failed", eventName(LoginFailed{}))
	assert.Equal(t, "user_updated", eventName(UserUpdated{}))
}
