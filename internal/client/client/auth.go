package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp, exemptFromForcedLogout()); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp, exemptFromForcedLogout()); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyToken reports whether the server accepts token. An explicit
// rejection (401/403 or success=false) is (false, nil); anything else that
// fails is returned as an error.
func (c *HTTPClient) VerifyToken(ctx context.Context, token string) (bool, error) {
	var resp models.Envelope[models.Empty]
	err := c.do(WithToken(ctx, token), http.MethodPost, "/auth/verify-token", nil, nil, &resp, exemptFromForcedLogout(), acceptRejection())
	switch {
	case errors.Is(err, ErrUnauthorized):
		return false, nil
	case err != nil:
		return false, err
	}
	return resp.Success, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch models.ProfileUpdate) (*models.ProfileResponse, error) {
	var resp models.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "/auth/profile", nil, patch, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var resp models.Envelope[models.ProfileData]
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data.User == nil {
		return nil, ErrNotFound
	}
	return resp.Data.User, nil
}
