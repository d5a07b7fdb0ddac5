package web

import (
	"net/http"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"styledecor/internal/domain"
	"styledecor/internal/middleware"
	"styledecor/internal/nav"
	"styledecor/internal/session"
)

// ViewData is the envelope every template receives. Page payloads ride in
// Data; the rest is shared chrome state.
type ViewData struct {
	Session session.Session
	Menu    []nav.Item
	Locale  string
	Country string
	Notice  string
	Error   string
	Path    string
	Data    any
}

func (a *App) viewData(r *http.Request, data any) ViewData {
	sess, _ := session.FromContext(r.Context())
	vd := ViewData{
		Session: sess,
		Locale:  middleware.LocaleFromContext(r.Context()),
		Country: middleware.CountryFromContext(r.Context()),
		Notice:  r.URL.Query().Get("notice"),
		Error:   r.URL.Query().Get("error"),
		Path:    r.URL.Path,
		Data:    data,
	}
	if role, ok := sess.Role(); ok {
		vd.Menu = nav.MenuFor(role)
	}
	return vd
}

// User exposes the signed-in user to templates, nil when anonymous.
func (v ViewData) User() *domain.User {
	return v.Session.User
}

// Price formats an amount in BDT with locale-aware digit grouping.
func (v ViewData) Price(amount int) string {
	tag := language.English
	if v.Locale == "bn" {
		tag = language.Bengali
	}
	p := message.NewPrinter(tag)
	return p.Sprintf("%v BDT", number.Decimal(amount))
}

// Date renders a timestamp for display, blank for zero times.
func (v ViewData) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
