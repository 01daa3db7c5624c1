// Package session is the single owner of the persisted login: token plus
// user record. Every other package reads identity through a Provider instead
// of touching storage directly.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
)

type User = models.User

// Session is the authenticated identity. The zero value means logged out.
type Session struct {
	Token string
	User  User
}

func (s Session) Authenticated() bool { return s.Token != "" }

// Expired reports whether the token's exp claim is at or before now. Tokens
// without a readable exp never expire client-side.
func (s Session) Expired(now time.Time) bool {
	if s.Token == "" {
		return false
	}
	c, err := ParseClaims(s.Token)
	if err != nil || c.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(c.ExpiresAt)
}

// Claims are the fields the client reads out of the backend token.
type Claims struct {
	UserID    string
	Role      models.Role
	ExpiresAt time.Time
}

var ErrMalformedToken = errors.New("malformed token")

type tokenClaims struct {
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the token payload without checking the signature; the
// backend is the one that verifies it.
func ParseClaims(token string) (Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	c := Claims{UserID: tc.ID, Role: models.Role(tc.Role)}
	if c.UserID == "" {
		c.UserID = tc.Subject
	}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}
