package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/client/session"
	"github.com/dmitrijs2005/techblog/internal/common"
	"github.com/dmitrijs2005/techblog/internal/textx"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for an email or username and a password. A failed attempt
// prints the reason and clears it from the session.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Email or username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res := a.sessions.Login(ctx, identifier, string(password))
	if !res.Success {
		fmt.Fprintf(a.out, "Login failed: %s\n", res.Error)
		a.sessions.ClearError()
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", res.Data.Data.User.DisplayName())
	return nil
}

// Register prompts for the account fields, checks them locally and signs
// in with the new account.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)
	if req.FirstName, err = getSimpleText(a.reader, "First name (optional)", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name (optional)", a.out); err != nil {
		return err
	}

	switch {
	case textx.Blank(req.Username):
		fmt.Fprintln(a.out, "Username is required")
		return nil
	case !textx.ValidEmail(req.Email):
		fmt.Fprintln(a.out, "Please enter a valid email address")
		return nil
	case !textx.ValidPassword(req.Password):
		fmt.Fprintln(a.out, "Password must be at least 6 characters")
		return nil
	}

	res := a.sessions.Register(ctx, req)
	if !res.Success {
		fmt.Fprintf(a.out, "Registration failed: %s\n", res.Error)
		a.sessions.ClearError()
		return nil
	}
	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", res.Data.Data.User.DisplayName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	if a.active == a.admin {
		a.active = a.latest
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI refreshes the signed-in user from the server, then prints it and
// what the token says about its expiry. When the refresh fails the stored
// copy is shown.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if res := a.sessions.ReloadUser(ctx); !res.Success {
		if !a.isLoggedIn() {
			return nil
		}
		fmt.Fprintf(a.out, "Could not refresh profile: %s\n", res.Error)
	}
	s := a.sessions.State()
	u := s.User
	fmt.Fprintf(a.out, "%s", u.DisplayName())
	if u.Username != "" {
		fmt.Fprintf(a.out, " (@%s)", u.Username)
	}
	fmt.Fprintln(a.out)
	if u.Email != "" {
		fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	}
	if u.Role != "" {
		fmt.Fprintf(a.out, "Role: %s\n", u.Role)
	}
	if u.Avatar != "" {
		fmt.Fprintf(a.out, "Avatar: %s\n", u.Avatar)
	}
	if u.Bio != "" {
		fmt.Fprintf(a.out, "Bio: %s\n", u.Bio)
	}

	if claims, err := session.TokenClaims(s.Token); err == nil && !claims.ExpiresAt.IsZero() {
		if claims.Expired(time.Now()) {
			fmt.Fprintf(a.out, "Token expired at %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
		} else {
			fmt.Fprintf(a.out, "Token valid until %s\n", claims.ExpiresAt.Local().Format(time.RFC1123))
		}
	}
	return nil
}

// Profile prompts for the editable profile fields. An empty answer keeps
// the current value and "-" clears it.
func (a *App) Profile(ctx context.Context) error {
	var patch models.ProfileUpdate
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"First name", &patch.FirstName},
		{"Last name", &patch.LastName},
		{"Email", &patch.Email},
		{"Avatar URL", &patch.Avatar},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt+" (empty to keep, - to clear)", a.out)
		if err != nil {
			return err
		}
		*f.dst = profileAnswer(v)
	}
	bio, err := getMultiline(a.reader, "Bio (empty to keep, - to clear)", a.out)
	if err != nil {
		return err
	}
	patch.Bio = profileAnswer(bio)

	if patch == (models.ProfileUpdate{}) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	res := a.profile.Update(ctx, patch)
	if !res.Success {
		fmt.Fprintf(a.out, "Profile update failed: %s\n", res.Error)
		return nil
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

func profileAnswer(v string) *string {
	switch v {
	case "":
		return nil
	case "-":
		v = ""
	}
	return &v
}

func (a *App) Password(ctx context.Context) error {
	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)
	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	res := a.profile.ChangePassword(ctx, string(current), string(next))
	if !res.Success {
		fmt.Fprintf(a.out, "Password change failed: %s\n", res.Error)
		return nil
	}
	fmt.Fprintln(a.out, "Password changed.")
	return nil
}

func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return false
}

func blankOr(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
