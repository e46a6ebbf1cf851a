package cryptox

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(secret, salt)
	key2 := DeriveKey(secret, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	expectedHex := "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39"
	if hex.EncodeToString(key1) != expectedHex {
		t.Errorf("expected %s, got %s", expectedHex, hex.EncodeToString(key1))
	}
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	secret := []byte("secret-password")

	key1 := DeriveKey(secret, []byte("salt-1"))
	key2 := DeriveKey(secret, []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestNewSalt(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	s2, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestSealOpen(t *testing.T) {
	key := DeriveKey([]byte("pw"), []byte("salt"))
	plaintext := []byte(`{"id":"u1"}`)

	sealed, err := Seal(key, plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "u1")

	again, err := Seal(key, plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per call")

	got, err := Open(key, sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestOpen_Failures(t *testing.T) {
	key := DeriveKey([]byte("pw"), []byte("salt"))
	sealed, err := Seal(key, []byte("token"))
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := Open(DeriveKey([]byte("other"), []byte("salt")), sealed)
		require.Error(t, err)
	})

	t.Run("tampered", func(t *testing.T) {
		bad := bytes.Clone(sealed)
		bad[len(bad)-1] ^= 0xff
		_, err := Open(key, bad)
		require.Error(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := Open(key, []byte{1, 2, 3})
		require.ErrorIs(t, err, ErrCiphertextTooShort)
	})

	t.Run("bad key size", func(t *testing.T) {
		_, err := Seal([]byte("short"), []byte("x"))
		require.Error(t, err)
	})
}
