package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/techblog/internal/client/client"
	"github.com/dmitrijs2005/techblog/internal/client/credentials"
	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/client/repositories/metadata"
	"github.com/stretchr/testify/require"
)

// fakeAuthAPI returns canned responses and counts calls.
type fakeAuthAPI struct {
	mu sync.Mutex

	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	verifyOK     bool
	verifyErr    error
	logoutErr    error
	profileResp  *models.ProfileResponse
	profileErr   error
	meUser       *models.User
	meErr        error

	calls         map[string]int
	verifiedToken string
	lastLogin     models.LoginRequest
}

func (f *fakeAuthAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeAuthAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAuthAPI) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.record("login")
	f.lastLogin = req
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(context.Context, models.RegisterRequest) (*models.AuthResponse, error) {
	f.record("register")
	return f.registerResp, f.registerErr
}

func (f *fakeAuthAPI) VerifyToken(_ context.Context, token string) (bool, error) {
	f.record("verify")
	f.verifiedToken = token
	return f.verifyOK, f.verifyErr
}

func (f *fakeAuthAPI) Logout(context.Context) error {
	f.record("logout")
	return f.logoutErr
}

func (f *fakeAuthAPI) UpdateProfile(context.Context, models.ProfileUpdate) (*models.ProfileResponse, error) {
	f.record("profile")
	return f.profileResp, f.profileErr
}

func (f *fakeAuthAPI) Me(context.Context) (*models.User, error) {
	f.record("me")
	if f.meUser == nil && f.meErr == nil {
		return nil, client.ErrNotFound
	}
	return f.meUser, f.meErr
}

func authOK(token string, user *models.User) *models.AuthResponse {
	return &models.AuthResponse{Success: true, Data: models.AuthData{Token: token, User: user}}
}

// newCredentials returns a credential store over a fresh SQLite file and the
// raw repository behind it.
func newCredentials(t *testing.T) (*credentials.Store, metadata.Repository) {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := metadata.NewSQLiteRepository(db)
	return credentials.NewStore(repo), repo
}

func storedEntries(t *testing.T, repo metadata.Repository) map[string][]byte {
	t.Helper()
	m, err := repo.List(context.Background())
	require.NoError(t, err)
	return m
}
