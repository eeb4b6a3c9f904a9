package auth

import (
	"errors"
	"fmt"
	"time"

	autherrors "go-guardconsole/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the console reads from the auth API token.
type Claims struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal returns user_id, falling back to the standard sub claim.
func (c *Claims) Principal() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.RegisteredClaims.Subject
}

// ParseClaims decodes a bearer token. With a secret the signature is
// verified; without one the token is only decoded, since the auth API
// owns signing and every upstream call re-validates it.
func ParseClaims(token, secret string, now time.Time) (*Claims, error) {
	claims := &Claims{}

	if secret == "" {
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			return nil, autherrors.ErrInvalidToken
		}
		if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
			return nil, autherrors.ErrTokenExpired
		}
	} else {
		parser := jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithTimeFunc(func() time.Time { return now }),
		)
		_, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		if err != nil {
			return nil, autherrors.ErrInvalidToken
		}
	}

	if claims.Principal() == "" {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
