package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims the WorkHub server signs into a session token
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"Email"`
}

// Expired returns true if the token expiry has passed
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time)
}

// ParseClaims decodes the claims of a session token without verifying its signature,
// the signing key is only known to the server
func ParseClaims(token string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Claims{}, fmt.Errorf("failed to decode session token: %w", err)
	}
	return claims, nil
}
