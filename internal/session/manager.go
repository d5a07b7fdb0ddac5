package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"styledecor/internal/apiclient"
	"styledecor/internal/domain"
)

// API is the slice of the upstream client the session layer needs.
type API interface {
	Login(ctx context.Context, creds apiclient.Credentials) (string, domain.User, error)
	Register(ctx context.Context, reg apiclient.Registration) (string, domain.User, error)
	Profile(ctx context.Context, token string) (domain.User, error)
}

// cookieMaxAge keeps the token across reloads until logout or invalidation.
const cookieMaxAge = 7 * 24 * 60 * 60

// Manager owns every session transition. All writes to the persisted token
// go through Login, Register, Logout and the clear-on-failure path in
// Resolve; everything else only reads.
type Manager struct {
	api    API
	cookie string
	secure bool
	log    zerolog.Logger
}

// NewManager builds a Manager persisting the token under the given cookie name.
func NewManager(api API, cookieName string, secure bool, log zerolog.Logger) *Manager {
	return &Manager{api: api, cookie: cookieName, secure: secure, log: log}
}

// Token reads the persisted bearer token off a request, if present.
func (m *Manager) Token(r *http.Request) string {
	c, err := r.Cookie(m.cookie)
	if err != nil {
		return ""
	}
	return c.Value
}

// Resolve turns the persisted token into a terminal session: Anonymous when
// no token is present, Authenticated when the API vouches for it, and
// Anonymous with the cookie cleared on any resolution failure (expired or
// invalid token, unreachable API). It never returns StatusUnresolved.
func (m *Manager) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) Session {
	token := m.Token(r)
	if token == "" {
		return Anonymous()
	}

	user, err := m.api.Profile(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnavailable) {
			m.log.Warn().Err(err).Msg("session resolution unreachable, dropping token")
		} else {
			m.log.Debug().Err(err).Msg("stored token rejected")
		}
		m.clear(w)
		return Anonymous()
	}
	return Session{Token: token, User: &user, Status: StatusAuthenticated}
}

// Login authenticates against the API and persists the returned token. On
// failure the session is left untouched and the server's message is returned
// to the form.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, email, password string) (domain.User, error) {
	token, user, err := m.api.Login(ctx, apiclient.Credentials{Email: email, Password: password})
	if err != nil {
		return domain.User{}, err
	}
	m.set(w, token)
	return user, nil
}

// Register creates an account and signs the new user in.
func (m *Manager) Register(ctx context.Context, w http.ResponseWriter, reg apiclient.Registration) (domain.User, error) {
	token, user, err := m.api.Register(ctx, reg)
	if err != nil {
		return domain.User{}, err
	}
	m.set(w, token)
	return user, nil
}

// Logout drops the persisted token. It has no failure mode: the expired
// cookie rides this response, so an explicit logout always supersedes any
// stale in-flight login.
func (m *Manager) Logout(w http.ResponseWriter) {
	m.clear(w)
}

// Middleware resolves the session once per request and stashes it in the
// context for the gate and the pages. It must run before any gate decision.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := m.Resolve(r.Context(), w, r)
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

func (m *Manager) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
