// Package session is the single source of truth for "who is the current
// user, and do we know yet". The only durable piece of state is the bearer
// token, carried in a cookie under the application's origin; the identity
// behind it is re-resolved from the API on every navigation.
package session

import (
	"context"

	"styledecor/internal/domain"
)

// Status is the resolution state of a session.
type Status string

const (
	// StatusUnresolved means the token has not been verified yet. Gate
	// decisions made against it are meaningless and must not redirect.
	StatusUnresolved    Status = "unresolved"
	StatusAnonymous     Status = "anonymous"
	StatusAuthenticated Status = "authenticated"
)

// Session is the read-only projection handed to the gate and the pages.
// Status is Authenticated iff User is non-nil.
type Session struct {
	Token  string
	User   *domain.User
	Status Status
}

// Anonymous is the terminal no-identity session.
func Anonymous() Session {
	return Session{Status: StatusAnonymous}
}

// Authenticated reports whether the session carries a verified identity.
func (s Session) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// Role returns the session's role when authenticated.
func (s Session) Role() (domain.Role, bool) {
	if !s.Authenticated() {
		return "", false
	}
	return s.User.Role, true
}

type ctxKey struct{}

// WithSession stashes a resolved session in the request context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session resolved earlier in the request, if any.
// Absence means resolution has not run, i.e. the session is still unresolved.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
