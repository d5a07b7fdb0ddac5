package web

import (
	"net/http"
	"net/url"

	"styledecor/internal/apiclient"
	"styledecor/internal/gate"
	"styledecor/internal/session"
)

type authFormData struct {
	From  string
	Email string
	Name  string
	Error string
}

// LoginForm shows the sign-in page; a visitor that already has a session is
// sent straight to the dashboard.
func (a *App) LoginForm(w http.ResponseWriter, r *http.Request) {
	if sess, _ := session.FromContext(r.Context()); sess.Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	a.render(w, r, http.StatusOK, "login", authFormData{From: gate.ResumeTarget(r, "")})
}

// Login handles the credentials form. Failure keeps the form on screen with
// the server's message and touches no session state; success persists the
// token and resumes the originally requested path.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := a.Sessions.Login(r.Context(), w, email, password)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.Status < 500 {
			a.render(w, r, http.StatusUnprocessableEntity, "login", authFormData{
				From:  gate.ResumeTarget(r, ""),
				Email: email,
				Error: apiErr.Message,
			})
			return
		}
		a.fail(w, r, err)
		return
	}

	a.Log.Info().Str("user", user.ID).Str("role", string(user.Role)).Msg("login")
	http.Redirect(w, r, gate.ResumeTarget(r, "/"), http.StatusSeeOther)
}

// RegisterForm shows the sign-up page.
func (a *App) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if sess, _ := session.FromContext(r.Context()); sess.Authenticated() {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	a.render(w, r, http.StatusOK, "register", authFormData{From: gate.ResumeTarget(r, "")})
}

// Register creates an account and signs the new user in.
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	reg := apiclient.Registration{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		PhotoURL: r.FormValue("photo_url"),
	}

	user, err := a.Sessions.Register(r.Context(), w, reg)
	if err != nil {
		if apiErr, ok := asAPIError(err); ok && apiErr.Status < 500 {
			a.render(w, r, http.StatusUnprocessableEntity, "register", authFormData{
				From:  gate.ResumeTarget(r, ""),
				Name:  reg.Name,
				Email: reg.Email,
				Error: apiErr.Message,
			})
			return
		}
		a.fail(w, r, err)
		return
	}

	a.Log.Info().Str("user", user.ID).Msg("registered")
	http.Redirect(w, r, gate.ResumeTarget(r, "/"), http.StatusSeeOther)
}

// Logout clears the session. Best effort by design: it always succeeds
// locally, whatever the API thinks.
func (a *App) Logout(w http.ResponseWriter, r *http.Request) {
	a.Sessions.Logout(w)
	http.Redirect(w, r, "/?notice="+url.QueryEscape("Logged out successfully."), http.StatusSeeOther)
}
