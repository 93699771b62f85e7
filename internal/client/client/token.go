package client

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/satconsole/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// checkToken fails locally, before any request is sent, when there is no
// token or when the token is a JWT whose exp claim has passed. The signature
// is not verified; only the server can do that. Opaque tokens pass through.
func checkToken(token string, now time.Time) error {
	if token == "" {
		return fmt.Errorf("%w: %w", ErrUnauthorized, common.ErrNoToken)
	}
	if tokenExpired(token, now) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, common.ErrTokenExpired)
	}
	return nil
}

func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time)
}
