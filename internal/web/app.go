// Package web is the page layer: handlers that fetch from the upstream API
// and render HTML. Everything here is presentational; access decisions live
// in the gate and the route table.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"styledecor/internal/apiclient"
	"styledecor/internal/domain"
	"styledecor/internal/gate"
	"styledecor/internal/infra"
	"styledecor/internal/session"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// App bundles everything the page handlers need.
type App struct {
	Config   *infra.Config
	Log      infra.Logger
	API      *apiclient.Client
	Sessions *session.Manager

	pages map[string]*template.Template
}

// NewApp parses the embedded template set and wires the handler container.
func NewApp(cfg *infra.Config, log infra.Logger, api *apiclient.Client, sessions *session.Manager) (*App, error) {
	a := &App{Config: cfg, Log: log, API: api, Sessions: sessions}
	if err := a.parseTemplates(); err != nil {
		return nil, err
	}
	return a, nil
}

// pageLayouts maps each page template to the layout that frames it.
var pageLayouts = map[string]string{
	"home":              "layout",
	"services":          "layout",
	"service_details":   "layout",
	"about":             "layout",
	"contact":           "layout",
	"coverage_map":      "layout",
	"login":             "layout",
	"register":          "layout",
	"error":             "layout",
	"loading":           "layout",
	"profile":           "dash_layout",
	"my_bookings":       "dash_layout",
	"payment":           "dash_layout",
	"payment_history":   "dash_layout",
	"manage_bookings":   "dash_layout",
	"manage_services":   "dash_layout",
	"manage_users":      "dash_layout",
	"revenue":           "dash_layout",
	"analytics":         "dash_layout",
	"assigned_projects": "dash_layout",
}

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

func (a *App) parseTemplates() error {
	a.pages = make(map[string]*template.Template, len(pageLayouts))
	for page, layout := range pageLayouts {
		t, err := template.New(layout+".gohtml").Funcs(templateFuncs).ParseFS(templateFS,
			"templates/"+layout+".gohtml",
			"templates/"+page+".gohtml",
		)
		if err != nil {
			return fmt.Errorf("web: parse %s: %w", page, err)
		}
		a.pages[page] = t
	}
	return nil
}

// render executes a page template with the shared view envelope.
func (a *App) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	t, ok := a.pages[page]
	if !ok {
		a.Log.Error().Str("page", page).Msg("unknown template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	vd := a.viewData(r, data)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, pageLayouts[page], vd); err != nil {
		a.Log.Error().Err(err).Str("page", page).Msg("template execution failed")
	}
}

// fail maps a fetch error onto the right user-facing response: expired
// sessions bounce through login, everything else lands on the error page
// with a retry-able message.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		a.Sessions.Logout(w)
		target := "/login?" + gate.FromParam + "=" + url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, target, http.StatusFound)
	case errors.Is(err, domain.ErrNotFound):
		a.Log.Debug().Err(err).Str("path", r.URL.Path).Msg("upstream 404")
		a.renderError(w, r, http.StatusNotFound, "We couldn't find what you were looking for.")
	case errors.Is(err, domain.ErrForbidden):
		a.renderError(w, r, http.StatusForbidden, "Your account isn't allowed to do that.")
	default:
		a.Log.Error().Err(err).Str("path", r.URL.Path).Msg("upstream call failed")
		a.renderError(w, r, http.StatusBadGateway, "Something went wrong talking to the booking service. Please try again.")
	}
}

func (a *App) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	a.render(w, r, status, "error", errorData{Status: status, Message: message})
}

type errorData struct {
	Status  int
	Message string
}

func asAPIError(err error) (*apiclient.APIError, bool) {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// NotFound is the router's fallback handler.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request) {
	a.renderError(w, r, http.StatusNotFound, "Page not found.")
}

// Loading is the neutral response the gate shows while identity resolves.
func (a *App) Loading(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "loading", nil)
}

// Health is the JSON liveness probe.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
