package gate

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

func TestDecideTotality(t *testing.T) {
	adminOnly := domain.Roles(domain.RoleAdmin)
	decoratorAdmin := domain.Roles(domain.RoleDecorator, domain.RoleAdmin)

	tests := []struct {
		name    string
		status  session.Status
		role    domain.Role
		allowed domain.RoleSet
		want    Decision
	}{
		{"unresolved never redirects", session.StatusUnresolved, "", adminOnly, Pending},
		{"unresolved on open route", session.StatusUnresolved, "", nil, Pending},
		{"anonymous goes to login", session.StatusAnonymous, "", adminOnly, RedirectLogin},
		{"anonymous on any-role route still goes to login", session.StatusAnonymous, "", nil, RedirectLogin},
		{"allowed role renders", session.StatusAuthenticated, domain.RoleAdmin, adminOnly, Render},
		{"second allowed role renders", session.StatusAuthenticated, domain.RoleDecorator, decoratorAdmin, Render},
		{"wrong role bounces to dashboard", session.StatusAuthenticated, domain.RoleUser, adminOnly, RedirectDefault},
		{"nil set admits any authenticated user", session.StatusAuthenticated, domain.RoleUser, nil, Render},
		{"empty set admits any authenticated user", session.StatusAuthenticated, domain.RoleDecorator, domain.Roles(), Render},
		{"unknown role is not admitted", session.StatusAuthenticated, domain.Role("superuser"), adminOnly, RedirectDefault},
		{"unknown status fails closed", session.Status("corrupt"), domain.RoleAdmin, adminOnly, RedirectLogin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.status, tt.role, tt.allowed); got != tt.want {
				t.Errorf("Decide(%q, %q, %v) = %q, want %q", tt.status, tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}

// Widening the allowed set must never turn a Render into a redirect.
func TestDecideMonotonic(t *testing.T) {
	narrow := domain.Roles(domain.RoleDecorator)
	wide := domain.Roles(domain.RoleDecorator, domain.RoleAdmin)
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleDecorator, domain.RoleAdmin} {
		if Decide(session.StatusAuthenticated, role, narrow) == Render &&
			Decide(session.StatusAuthenticated, role, wide) != Render {
			t.Errorf("role %q rendered under %v but not under superset %v", role, narrow, wide)
		}
	}
}

func newGate() *Gate {
	return &Gate{
		LoginPath:   "/login",
		DefaultPath: "/dashboard",
		Pending: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("loading"))
		}),
	}
}

func serveGated(t *testing.T, sess *session.Session, allowed domain.RoleSet, target string) *httptest.ResponseRecorder {
	t.Helper()
	h := newGate().Require(allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("page"))
	}))
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sess != nil {
		req = req.WithContext(session.WithSession(req.Context(), *sess))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireAnonymousRedirectCarriesFrom(t *testing.T) {
	sess := session.Anonymous()
	rec := serveGated(t, &sess, domain.Roles(domain.RoleAdmin), "/dashboard/revenue?range=month")

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	loc, err := url.Parse(rec.Header().Get("Location"))
	if err != nil {
		t.Fatalf("bad Location header: %v", err)
	}
	if loc.Path != "/login" {
		t.Errorf("redirect path = %q, want /login", loc.Path)
	}
	if got := loc.Query().Get(FromParam); got != "/dashboard/revenue?range=month" {
		t.Errorf("from = %q, want original request URI", got)
	}
}

func TestRequireWrongRoleRedirectsToDefault(t *testing.T) {
	user := domain.User{ID: "u1", Role: domain.RoleUser}
	sess := session.Session{Token: "tok", User: &user, Status: session.StatusAuthenticated}
	rec := serveGated(t, &sess, domain.Roles(domain.RoleAdmin), "/dashboard/revenue")

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestRequireAllowedRoleRenders(t *testing.T) {
	user := domain.User{ID: "a1", Role: domain.RoleAdmin}
	sess := session.Session{Token: "tok", User: &user, Status: session.StatusAuthenticated}
	rec := serveGated(t, &sess, domain.Roles(domain.RoleAdmin), "/dashboard/revenue")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "page" {
		t.Errorf("body = %q, want page", body)
	}
}

func TestRequireMissingSessionShowsPending(t *testing.T) {
	rec := serveGated(t, nil, domain.Roles(domain.RoleAdmin), "/dashboard/revenue")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "loading" {
		t.Errorf("body = %q, want loading", body)
	}
}

func TestResumeTarget(t *testing.T) {
	tests := []struct {
		name string
		from string
		want string
	}{
		{"local path", "/dashboard/my-bookings", "/dashboard/my-bookings"},
		{"local path with query", "/services/42?x=1", "/services/42?x=1"},
		{"missing", "", "/dashboard"},
		{"absolute url", "https://evil.example/", "/dashboard"},
		{"protocol-relative", "//evil.example/", "/dashboard"},
		{"relative", "dashboard", "/dashboard"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/login"
			if tt.from != "" {
				target += "?" + FromParam + "=" + url.QueryEscape(tt.from)
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if got := ResumeTarget(req, "/dashboard"); got != tt.want {
				t.Errorf("ResumeTarget(%q) = %q, want %q", tt.from, got, tt.want)
			}
		})
	}
}
