package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncrypted_RoundTripStoresCiphertext(t *testing.T) {
	inner := NewSQLiteRepository(setupDB(t))
	r := NewEncryptedRepository(inner, "hunter2")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("tok1")))

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("tok1"), v)

	raw, err := inner.Get(ctx, "token")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tok1")

	salt, err := inner.Get(ctx, SaltKey)
	require.NoError(t, err)
	assert.NotEmpty(t, salt)
}

func TestEncrypted_MissingKey(t *testing.T) {
	r := NewEncryptedRepository(NewSQLiteRepository(setupDB(t)), "s")

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestEncrypted_SetManyAndListHideSalt(t *testing.T) {
	r := NewEncryptedRepository(NewSQLiteRepository(setupDB(t)), "s")
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		"token": []byte("t"),
		"user":  []byte(`{"id":"u1"}`),
	}))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"token": []byte("t"),
		"user":  []byte(`{"id":"u1"}`),
	}, all)

	require.NoError(t, r.DeleteMany(ctx, "token", "user"))
	all, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEncrypted_ReopenWithSameSecret(t *testing.T) {
	inner := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, NewEncryptedRepository(inner, "s").Set(ctx, "token", []byte("t")))

	v, err := NewEncryptedRepository(inner, "s").Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("t"), v)
}

func TestEncrypted_WrongSecretFails(t *testing.T) {
	inner := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, NewEncryptedRepository(inner, "right").Set(ctx, "token", []byte("t")))

	_, err := NewEncryptedRepository(inner, "wrong").Get(ctx, "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrypt metadata[token]")
}

func TestEncrypted_ClearResetsSalt(t *testing.T) {
	inner := NewSQLiteRepository(setupDB(t))
	r := NewEncryptedRepository(inner, "s")
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "token", []byte("t")))
	before, err := inner.Get(ctx, SaltKey)
	require.NoError(t, err)

	require.NoError(t, r.Clear(ctx))
	require.NoError(t, r.Set(ctx, "token", []byte("t2")))

	after, err := inner.Get(ctx, SaltKey)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	v, err := r.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("t2"), v)
}
