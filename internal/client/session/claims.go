package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/techblog/internal/common"
)

// Claims is what the client can read out of a bearer token without the
// signing key. It is for display only.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that is before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// TokenClaims decodes token without verifying its signature. Opaque
// (non-JWT) tokens return an error.
func TokenClaims(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	var c Claims
	c.Subject, _ = mc.GetSubject()
	if c.Subject == "" {
		for _, k := range []string{"userId", "id"} {
			if v, ok := mc[k].(string); ok && v != "" {
				c.Subject = v
				break
			}
		}
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	return c, nil
}
