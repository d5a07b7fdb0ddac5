package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"styledecor/internal/domain"
	"styledecor/internal/gate"
	"styledecor/internal/middleware"
	"styledecor/internal/routes"
)

// PublicTree is the ungated route tree: marketing pages, the catalog and the
// auth forms.
func (a *App) PublicTree() routes.Node {
	return routes.Node{
		Path: "/",
		GET:  a.Home,
		Children: []routes.Node{
			{Path: "services", GET: a.Services},
			{Path: "services/{id}", GET: a.ServiceDetails, POST: a.BookService},
			{Path: "about", GET: a.About},
			{Path: "contact", GET: a.Contact},
			{Path: "coverage-map", GET: a.CoverageMap},
			{Path: "login", GET: a.LoginForm, POST: a.Login},
			{Path: "register", GET: a.RegisterForm, POST: a.Register},
			{Path: "logout", POST: a.Logout},
		},
	}
}

// ProtectedTree is the dashboard. The root admits every role with dashboard
// access; each child narrows to its own allowed set.
func (a *App) ProtectedTree() routes.Node {
	anyRole := domain.AllRoles()
	return routes.Node{
		Path:    "dashboard",
		Allowed: anyRole,
		GET:     a.Profile,
		Children: []routes.Node{
			{Path: "profile", Allowed: anyRole, GET: a.Profile},
			{Path: "my-bookings", Allowed: anyRole, GET: a.MyBookings, POST: a.CancelBooking},
			{Path: "payment-history", Allowed: domain.Roles(domain.RoleUser, domain.RoleAdmin), GET: a.PaymentHistory},
			{Path: "payments/{bookingID}", Allowed: domain.Roles(domain.RoleUser, domain.RoleAdmin), GET: a.Payment, POST: a.ConfirmPayment},
			{Path: "manage-bookings", Allowed: domain.Roles(domain.RoleAdmin), GET: a.ManageBookings, POST: a.AssignDecorator},
			{Path: "manage-services", Allowed: domain.Roles(domain.RoleAdmin), GET: a.ManageServices},
			{Path: "manage-users", Allowed: domain.Roles(domain.RoleAdmin), GET: a.ManageUsers, POST: a.UserAction},
			{Path: "revenue", Allowed: domain.Roles(domain.RoleAdmin), GET: a.Revenue},
			{Path: "analytics", Allowed: domain.Roles(domain.RoleAdmin), GET: a.Analytics},
			{Path: "assigned-projects", Allowed: domain.Roles(domain.RoleDecorator, domain.RoleAdmin), GET: a.AssignedProjects, POST: a.UpdateProjectStatus},
		},
	}
}

// Router validates the route tables and assembles the full handler chain.
func (a *App) Router(lookup middleware.CountryLookup) (http.Handler, error) {
	protected := a.ProtectedTree()
	if err := routes.Validate(protected); err != nil {
		return nil, err
	}

	g := &gate.Gate{
		LoginPath:   "/login",
		DefaultPath: "/dashboard",
		Pending:     http.HandlerFunc(a.Loading),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(a.Log))
	r.Use(middleware.RateLimit(a.Config.RateLimitPerMin, time.Minute))
	r.Use(middleware.Region(a.Config.DefaultLocale, lookup))
	r.Use(a.Sessions.Middleware)

	r.Get("/healthz", a.Health)
	routes.Mount(r, g, a.PublicTree())
	routes.Mount(r, g, protected)
	r.NotFound(a.NotFound)

	return r, nil
}
