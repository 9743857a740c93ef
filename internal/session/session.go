// Package session persists the session token issued by the task API.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ErrNoSession is returned when no session has been stored.
var ErrNoSession = errors.New("not logged in")

// Session is the client's view of a login.
// Token is kept exactly as the API issued it. Username and ExpiresAt are
// informational and only set when the token is a JWT carrying them.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Store persists at most one session.
type Store interface {
	// Load returns the stored session or ErrNoSession.
	Load() (Session, error)

	// Save replaces the stored session.
	Save(s Session) error

	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear() error
}

// FromToken builds a Session from a raw token. The token signature is not
// verified: the client has no key and only reads claims for display.
func FromToken(token string) Session {
	s := Session{Token: token}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return s
	}

	if name, ok := claims["username"].(string); ok {
		s.Username = name
	} else if sub, err := claims.GetSubject(); err == nil {
		s.Username = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.ExpiresAt = exp.Time
	}
	return s
}

// OAuth2Token returns the session as a bearer token.
func (s Session) OAuth2Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken: s.Token,
		TokenType:   "Bearer",
		Expiry:      s.ExpiresAt,
	}
}

// Valid reports whether the session has a token that has not expired.
// A session without a known expiry never expires.
func (s Session) Valid() bool {
	return s.OAuth2Token().Valid()
}
