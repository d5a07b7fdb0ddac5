package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"styledecor/internal/domain"
	"styledecor/internal/gate"
	"styledecor/internal/session"
)

type servicesData struct {
	Services   []domain.Service
	Categories []string
	Query      domain.ServiceQuery
	Pagination domain.Pagination
}

// Services renders the catalog with search, category and sort filters.
func (a *App) Services(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := domain.ServiceQuery{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
		Page:     atoiDefault(r.URL.Query().Get("page"), 1),
		Limit:    12,
	}

	services, pagination, err := a.API.ListServices(ctx, q)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	categories, err := a.API.ServiceCategories(ctx)
	if err != nil {
		a.Log.Warn().Err(err).Msg("service categories unavailable")
	}

	a.render(w, r, http.StatusOK, "services", servicesData{
		Services:   services,
		Categories: categories,
		Query:      q,
		Pagination: pagination,
	})
}

type serviceDetailsData struct {
	Service domain.Service
}

// ServiceDetails renders one service with its booking form.
func (a *App) ServiceDetails(w http.ResponseWriter, r *http.Request) {
	service, err := a.API.GetService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, http.StatusOK, "service_details", serviceDetailsData{Service: service})
}

// BookService handles the booking form on the service details page. Booking
// needs an identity; anonymous visitors detour through login and resume here.
func (a *App) BookService(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	if !sess.Authenticated() {
		target := "/login?" + gate.FromParam + "=" + url.QueryEscape(r.URL.Path)
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	id := chi.URLParam(r, "id")
	service, err := a.API.GetService(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	req := domain.BookingRequest{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		ServiceCost: service.Cost,
		BookingDate: r.FormValue("booking_date"),
		Location:    r.FormValue("location"),
	}
	if req.BookingDate == "" || req.Location == "" {
		http.Redirect(w, r, "/services/"+url.PathEscape(id)+"?error="+url.QueryEscape("Date and location are required."), http.StatusSeeOther)
		return
	}

	if _, err := a.API.CreateBooking(r.Context(), sess.Token, req); err != nil {
		a.actionFailed(w, r, "/services/"+url.PathEscape(id), err)
		return
	}
	http.Redirect(w, r, "/dashboard/my-bookings?notice="+url.QueryEscape("Booking placed! We'll confirm it shortly."), http.StatusSeeOther)
}

// actionFailed sends a form action error back to its page, or through the
// usual failure path when the call failed for session or transport reasons.
func (a *App) actionFailed(w http.ResponseWriter, r *http.Request, backTo string, err error) {
	if apiErr, ok := asAPIError(err); ok {
		switch {
		case apiErr.Status == http.StatusUnauthorized:
			// fall through to fail: the session is gone
		case apiErr.Status < 500 && apiErr.Message != "":
			http.Redirect(w, r, backTo+"?error="+url.QueryEscape(apiErr.Message), http.StatusSeeOther)
			return
		}
	}
	a.fail(w, r, err)
}

func atoiDefault(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return fallback
}
