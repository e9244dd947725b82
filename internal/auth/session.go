// Package auth resolves admin sessions from access tokens and decides
// whether a session may use the admin dashboard.
package auth

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when a request carries no usable session.
var ErrNoSession = errors.New("auth: no active session")

// Session is an authenticated user as asserted by a verified access token.
type Session struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type ctxKey string

const sessionKey ctxKey = "flexora.session"

// WithSession stores the session in context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext extracts the session if present.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok && s != nil
}
