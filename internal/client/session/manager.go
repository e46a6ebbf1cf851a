package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/credentials"
	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/logging"
)

// Fallback messages used when the server gives none.
const (
	MsgLoginFailed         = "Invalid credentials"
	MsgRegistrationFailed  = "Registration failed"
	MsgProfileUpdateFailed = "Profile update failed"
	MsgReloadFailed        = "Could not load profile"
	MsgNotSignedIn         = "Not signed in"
)

// CredentialStore is the durable token+user storage.
type CredentialStore interface {
	Load(ctx context.Context) (*credentials.Credentials, error)
	Save(ctx context.Context, token string, user *models.User) error
	SaveUser(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

// Result is the outcome of a session operation. Exactly one of Data (when
// Success) or Error is meaningful.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
}

func failed[T any](msg string) Result[T] {
	return Result[T]{Error: msg}
}

type userLogoutKey struct{}

// Manager runs session operations against the API and keeps Store and the
// credential storage in step. Operations never return Go errors; failures
// are reported through Result or State.Error.
type Manager struct {
	api   client.AuthAPI
	creds CredentialStore
	store *Store
	log   logging.Logger

	hookMu         sync.RWMutex
	onForcedLogout func()
}

var _ client.Authenticator = (*Manager)(nil)

func NewManager(api client.AuthAPI, creds CredentialStore, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		api:   api,
		creds: creds,
		store: NewStore(),
		log:   log.With("component", "session"),
	}
}

// OnForcedLogout sets the function called after a 401 has ended the
// session, typically to send the user back to the login prompt.
func (m *Manager) OnForcedLogout(fn func()) {
	m.hookMu.Lock()
	m.onForcedLogout = fn
	m.hookMu.Unlock()
}

func (m *Manager) State() State {
	return m.store.State()
}

// Token returns the current bearer token, or "" when there is none.
func (m *Manager) Token() string {
	return m.store.State().Token
}

func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	return m.store.Subscribe(fn)
}

func (m *Manager) dispatch(ctx context.Context, e Event) State {
	s := m.store.Dispatch(e)
	m.log.Debug(ctx, "session transition",
		"event", eventName(e),
		"authenticated", s.IsAuthenticated,
		"loading", s.IsLoading,
	)
	return s
}

// Restore loads stored credentials and asks the server whether the token is
// still good. Anything short of an explicit acceptance clears storage.
func (m *Manager) Restore(ctx context.Context) {
	stored, err := m.creds.Load(ctx)
	if err != nil {
		if errors.Is(err, credentials.ErrIncomplete) {
			m.log.Info(ctx, "discarding incomplete stored session")
		} else {
			m.log.Warn(ctx, "failed to read stored session", "error", err)
		}
		m.clearStorage(ctx)
		m.dispatch(ctx, LoggedOut{})
		return
	}
	if stored == nil {
		m.dispatch(ctx, LoadingSet{Loading: false})
		return
	}

	ok, err := m.api.VerifyToken(ctx, stored.Token)
	if err != nil || !ok {
		if err != nil {
			m.log.Warn(ctx, "token verification failed", "error", err)
		} else {
			m.log.Info(ctx, "stored token rejected")
		}
		m.clearStorage(ctx)
		m.dispatch(ctx, LoggedOut{})
		return
	}

	m.dispatch(ctx, LoginSucceeded{User: stored.User, Token: stored.Token})
	m.log.Info(ctx, "session restored", "user", stored.User.ID)
}

// Login authenticates with an email or username.
func (m *Manager) Login(ctx context.Context, identifier, password string) Result[models.AuthResponse] {
	return m.authenticate(ctx, MsgLoginFailed, func(ctx context.Context) (*models.AuthResponse, error) {
		return m.api.Login(ctx, models.LoginRequest{Identifier: identifier, Password: password})
	})
}

// Register creates an account and signs in with it.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) Result[models.AuthResponse] {
	return m.authenticate(ctx, MsgRegistrationFailed, func(ctx context.Context) (*models.AuthResponse, error) {
		return m.api.Register(ctx, req)
	})
}

func (m *Manager) authenticate(ctx context.Context, fallback string, call func(context.Context) (*models.AuthResponse, error)) Result[models.AuthResponse] {
	m.dispatch(ctx, LoginStarted{})

	resp, err := call(ctx)
	if err != nil {
		msg := client.Message(err, fallback)
		m.log.Warn(ctx, "authentication failed", "error", err)
		m.dispatch(ctx, LoginFailed{Message: msg})
		return failed[models.AuthResponse](msg)
	}
	if resp == nil || !resp.Success || resp.Data.Token == "" || resp.Data.User == nil {
		msg := fallback
		if resp != nil && resp.Message != "" {
			msg = resp.Message
		}
		m.log.Warn(ctx, "authentication rejected")
		m.dispatch(ctx, LoginFailed{Message: msg})
		return failed[models.AuthResponse](msg)
	}

	if err := m.creds.Save(ctx, resp.Data.Token, resp.Data.User); err != nil {
		m.log.Warn(ctx, "failed to persist session", "error", err)
	}
	m.dispatch(ctx, LoginSucceeded{User: resp.Data.User, Token: resp.Data.Token})
	m.log.Info(ctx, "signed in", "user", resp.Data.User.ID)

	return Result[models.AuthResponse]{Success: true, Data: *resp}
}

// Logout tells the server and then unconditionally ends the local session.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(context.WithValue(ctx, userLogoutKey{}, true)); err != nil {
		m.log.Debug(ctx, "remote logout failed", "error", err)
	}
	m.clearStorage(ctx)
	m.dispatch(ctx, LoggedOut{})
}

// UpdateProfile sends patch as is. An unauthenticated call is not refused
// here; the server's rejection comes back as a failed Result.
func (m *Manager) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) Result[models.ProfileResponse] {
	resp, err := m.api.UpdateProfile(ctx, patch)
	if err != nil {
		m.log.Warn(ctx, "profile update failed", "error", err)
		return failed[models.ProfileResponse](client.Message(err, MsgProfileUpdateFailed))
	}
	if resp == nil || !resp.Success {
		msg := MsgProfileUpdateFailed
		if resp != nil && resp.Message != "" {
			msg = resp.Message
		}
		return failed[models.ProfileResponse](msg)
	}

	m.applyUser(ctx, UserUpdated{User: resp.Data.User, Fields: resp.Data.Fields})
	return Result[models.ProfileResponse]{Success: true, Data: *resp}
}

// ReloadUser replaces the session's user with the server's current record.
// A rejected token ends the session through Unauthorized.
func (m *Manager) ReloadUser(ctx context.Context) Result[*models.User] {
	if !m.State().IsAuthenticated {
		return failed[*models.User](MsgNotSignedIn)
	}
	u, err := m.api.Me(ctx)
	if err != nil {
		m.log.Warn(ctx, "profile reload failed", "error", err)
		return failed[*models.User](client.Message(err, MsgReloadFailed))
	}
	s := m.applyUser(ctx, UserUpdated{User: u})
	return Result[*models.User]{Success: true, Data: s.User}
}

func (m *Manager) applyUser(ctx context.Context, e UserUpdated) State {
	s := m.dispatch(ctx, e)
	if s.Token != "" && s.User != nil {
		if err := m.creds.SaveUser(ctx, s.User); err != nil {
			m.log.Warn(ctx, "failed to persist profile", "error", err)
		}
	}
	return s
}

func (m *Manager) ClearError() {
	m.store.Dispatch(ErrorCleared{})
}

// ForceLogout ends the session after the server refused its token.
func (m *Manager) ForceLogout(ctx context.Context) {
	m.clearStorage(ctx)
	m.dispatch(ctx, LoggedOut{})
	m.log.Info(ctx, "session ended by server")

	m.hookMu.RLock()
	hook := m.onForcedLogout
	m.hookMu.RUnlock()
	if hook != nil {
		hook()
	}
}

// Unauthorized is called by the HTTP client on any 401. A 401 answering
// the logout call itself is ignored since Logout clears the session anyway.
func (m *Manager) Unauthorized(ctx context.Context) {
	if v, _ := ctx.Value(userLogoutKey{}).(bool); v {
		return
	}
	m.ForceLogout(ctx)
}

func (m *Manager) clearStorage(ctx context.Context) {
	if err := m.creds.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to clear stored session", "error", err)
	}
}
