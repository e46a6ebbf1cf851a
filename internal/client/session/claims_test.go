package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/techblog/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return tok
}

func TestTokenClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signed(t, jwt.RegisteredClaims{Subject: "u1", ExpiresAt: jwt.NewNumericDate(exp)})

	c, err := TokenClaims(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", c.Subject)
	assert.True(t, c.ExpiresAt.Equal(exp))
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(exp.Add(time.Second)))
}

func TestTokenClaims_UserIDFallback(t *testing.T) {
	tok := signed(t, jwt.MapClaims{"userId": "u9", "iat": time.Now().Unix()})

	c, err := TokenClaims(tok)
	require.NoError(t, err)
	assert.Equal(t, "u9", c.Subject)
	assert.False(t, c.IssuedAt.IsZero())
	assert.False(t, c.Expired(time.Now()), "no expiry means never expired")
}

func TestTokenClaims_Opaque(t *testing.T) {
	_, err := TokenClaims("tok1")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
