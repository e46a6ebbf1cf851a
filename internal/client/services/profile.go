package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/client/session"
	"github.com/dmitrijs2005/techblog/internal/textx"
)

// ProfileUpdater is the session operation ProfileService delegates to.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, patch models.ProfileUpdate) session.Result[models.ProfileResponse]
}

// ProfileService checks a profile patch before handing it to the session.
// Rejected patches come back as failed results, like server rejections.
type ProfileService interface {
	Update(ctx context.Context, patch models.ProfileUpdate) session.Result[models.ProfileResponse]
	ChangePassword(ctx context.Context, current, next string) session.Result[models.ProfileResponse]
}

type profileService struct {
	sessions ProfileUpdater
}

func NewProfileService(sessions ProfileUpdater) ProfileService {
	return &profileService{sessions: sessions}
}

func (s *profileService) Update(ctx context.Context, patch models.ProfileUpdate) session.Result[models.ProfileResponse] {
	if msg := validateProfile(patch); msg != "" {
		return session.Result[models.ProfileResponse]{Error: msg}
	}
	return s.sessions.UpdateProfile(ctx, patch)
}

func (s *profileService) ChangePassword(ctx context.Context, current, next string) session.Result[models.ProfileResponse] {
	return s.Update(ctx, models.ProfileUpdate{CurrentPassword: &current, NewPassword: &next})
}

func validateProfile(p models.ProfileUpdate) string {
	if p.Email != nil && !textx.ValidEmail(strings.TrimSpace(*p.Email)) {
		return "Please enter a valid email address"
	}
	if p.Username != nil && textx.Blank(*p.Username) {
		return "Username cannot be empty"
	}
	if p.NewPassword != nil {
		if p.CurrentPassword == nil || *p.CurrentPassword == "" {
			return "Current password is required"
		}
		if !textx.ValidPassword(*p.NewPassword) {
			return "New password must be at least 6 characters"
		}
	}
	return ""
}
