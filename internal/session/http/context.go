// Package http provides the gateway session endpoints and the middleware that
// authenticates and rate limits requests by session.
package http

import (
	"context"

	sessionDomain "github.com/allisson/mediport/internal/session/domain"
)

// sessionKey is a context key type for storing the authenticated session.
type sessionKey struct{}

// WithSession stores the authenticated session in the context.
func WithSession(ctx context.Context, session *sessionDomain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSession retrieves the authenticated session from the context.
// Returns (nil, false) if no session was set.
func GetSession(ctx context.Context) (*sessionDomain.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*sessionDomain.Session)
	return session, ok && session != nil
}

// GetPrincipal resolves the operator of the authenticated session.
// Returns (nil, false) when the request is unauthenticated.
func GetPrincipal(ctx context.Context) (*sessionDomain.Principal, bool) {
	session, ok := GetSession(ctx)
	if !ok {
		return nil, false
	}
	principal, err := sessionDomain.LoadPrincipal(ctx, session)
	if err != nil {
		return nil, false
	}
	return principal, true
}
