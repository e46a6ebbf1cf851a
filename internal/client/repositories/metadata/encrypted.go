package metadata

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/techblog/internal/cryptox"
)

// SaltKey holds the key-derivation salt in the wrapped repository. It is
// stored in the clear and hidden from List.
const SaltKey = "_salt"

// EncryptedRepository seals every value before it reaches the wrapped
// repository. The key is derived from a secret and a per-store salt on
// first use.
type EncryptedRepository struct {
	inner  Repository
	secret []byte

	mu  sync.Mutex
	key []byte
}

func NewEncryptedRepository(inner Repository, secret string) *EncryptedRepository {
	return &EncryptedRepository{inner: inner, secret: []byte(secret)}
}

var _ Repository = (*EncryptedRepository)(nil)

// cipherKey loads the salt, creating it if the store has none yet.
func (r *EncryptedRepository) cipherKey(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.key != nil {
		return r.key, nil
	}

	salt, err := r.inner.Get(ctx, SaltKey)
	if err != nil {
		return nil, err
	}
	if len(salt) == 0 {
		if salt, err = cryptox.NewSalt(); err != nil {
			return nil, err
		}
		if err := r.inner.Set(ctx, SaltKey, salt); err != nil {
			return nil, err
		}
	}

	r.key = cryptox.DeriveKey(r.secret, salt)
	return r.key, nil
}

func (r *EncryptedRepository) seal(ctx context.Context, key string, value []byte) ([]byte, error) {
	k, err := r.cipherKey(ctx)
	if err != nil {
		return nil, err
	}
	sealed, err := cryptox.Seal(k, value)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt metadata[%s]: %w", key, err)
	}
	return sealed, nil
}

func (r *EncryptedRepository) open(ctx context.Context, key string, sealed []byte) ([]byte, error) {
	k, err := r.cipherKey(ctx)
	if err != nil {
		return nil, err
	}
	value, err := cryptox.Open(k, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *EncryptedRepository) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := r.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	return r.open(ctx, key, sealed)
}

func (r *EncryptedRepository) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := r.seal(ctx, key, value)
	if err != nil {
		return err
	}
	return r.inner.Set(ctx, key, sealed)
}

func (r *EncryptedRepository) Delete(ctx context.Context, key string) error {
	return r.inner.Delete(ctx, key)
}

func (r *EncryptedRepository) List(ctx context.Context) (map[string][]byte, error) {
	all, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for k, sealed := range all {
		if k == SaltKey {
			continue
		}
		v, err := r.open(ctx, k, sealed)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Clear also drops the salt; the next write starts a fresh one.
func (r *EncryptedRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.inner.Clear(ctx); err != nil {
		return err
	}
	r.key = nil
	return nil
}

func (r *EncryptedRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	sealed := make(map[string][]byte, len(values))
	for k, v := range values {
		s, err := r.seal(ctx, k, v)
		if err != nil {
			return err
		}
		sealed[k] = s
	}
	return r.inner.SetMany(ctx, sealed)
}

func (r *EncryptedRepository) DeleteMany(ctx context.Context, keys ...string) error {
	return r.inner.DeleteMany(ctx, keys...)
}
