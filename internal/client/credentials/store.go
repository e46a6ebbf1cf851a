// Package credentials persists the session's bearer token and user profile
// as two entries of the metadata store. Both are written together and
// cleared together.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/techblog/internal/common"
)

// ErrIncomplete is returned by Load when only one of the two entries is
// present or the user entry cannot be decoded.
var ErrIncomplete = errors.New("stored credentials are incomplete")

type Credentials struct {
	Token string
	User  *models.User
}

type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Load returns (nil, nil) when nothing is stored.
func (s *Store) Load(ctx context.Context) (*Credentials, error) {
	token, err := s.repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		return nil, err
	}
	rawUser, err := s.repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		return nil, err
	}

	switch {
	case len(token) == 0 && len(rawUser) == 0:
		return nil, nil
	case len(token) == 0 || len(rawUser) == 0:
		return nil, ErrIncomplete
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %v", ErrIncomplete, err)
	}
	return &Credentials{Token: string(token), User: &user}, nil
}

func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("save credentials: %w", ErrIncomplete)
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo.SetMany(ctx, map[string][]byte{
		common.StorageKeyToken: []byte(token),
		common.StorageKeyUser:  rawUser,
	})
}

// SaveUser replaces only the user entry, after a profile update.
func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.repo.Set(ctx, common.StorageKeyUser, rawUser)
}

func (s *Store) Clear(ctx context.Context) error {
	return s.repo.DeleteMany(ctx, common.StorageKeyToken, common.StorageKeyUser)
}
