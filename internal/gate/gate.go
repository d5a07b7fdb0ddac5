// Package gate decides, per protected route render, whether to show the
// page, bounce to login, or bounce to the dashboard landing page.
package gate

import (
	"net/http"
	"net/url"
	"strings"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

// Decision is the outcome of an access check.
type Decision string

const (
	// Render allows the requested page through.
	Render Decision = "render"
	// RedirectLogin sends an anonymous visitor to the login page, carrying
	// the requested path so login can resume it.
	RedirectLogin Decision = "redirect-login"
	// RedirectDefault sends a valid but unauthorized user to the dashboard
	// landing page. Not an error: an expected navigational outcome.
	RedirectDefault Decision = "redirect-default"
	// Pending shows a neutral loading response while identity is still
	// resolving, so no flash-redirect happens on a meaningless state.
	Pending Decision = "pending"
)

// Decide maps session state and a route's allowed-role set to exactly one
// Decision. It is pure and total: every input combination, including roles
// and statuses this build has never seen, lands on one outcome. An empty or
// nil allowed set admits any authenticated user.
func Decide(status session.Status, role domain.Role, allowed domain.RoleSet) Decision {
	switch status {
	case session.StatusUnresolved:
		return Pending
	case session.StatusAuthenticated:
		if len(allowed) == 0 || allowed.Contains(role) {
			return Render
		}
		return RedirectDefault
	default:
		// Anonymous, and anything unrecognized, fails closed to login.
		return RedirectLogin
	}
}

// FromParam is the query parameter carrying the path to resume after login.
const FromParam = "from"

// Gate wires Decide into the router. Sessions must be resolved into the
// request context before any Gate middleware runs; an absent session is
// treated as unresolved.
type Gate struct {
	LoginPath   string
	DefaultPath string
	Pending     http.Handler
}

// Require guards a route subtree with the given allowed-role set.
func (g *Gate) Require(allowed domain.RoleSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			status := session.StatusUnresolved
			var role domain.Role
			if ok {
				status = sess.Status
				if got, has := sess.Role(); has {
					role = got
				}
			}

			switch Decide(status, role, allowed) {
			case Render:
				next.ServeHTTP(w, r)
			case RedirectLogin:
				target := g.LoginPath + "?" + FromParam + "=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, target, http.StatusFound)
			case RedirectDefault:
				http.Redirect(w, r, g.DefaultPath, http.StatusFound)
			case Pending:
				if g.Pending != nil {
					g.Pending.ServeHTTP(w, r)
					return
				}
				w.WriteHeader(http.StatusServiceUnavailable)
			}
		})
	}
}

// ResumeTarget extracts a safe post-login destination from the request:
// the captured path when it is local, the fallback otherwise.
func ResumeTarget(r *http.Request, fallback string) string {
	from := r.FormValue(FromParam)
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") {
		return fallback
	}
	return from
}
