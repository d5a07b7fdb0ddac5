package web

import (
	"net/http"
	"net/url"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

type myBookingsData struct {
	Bookings   []domain.Booking
	Pagination domain.Pagination
}

// MyBookings lists the customer's own bookings with pagination.
func (a *App) MyBookings(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	page := atoiDefault(r.URL.Query().Get("page"), 1)

	bookings, pagination, err := a.API.MyBookings(r.Context(), sess.Token, page, 10)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, http.StatusOK, "my_bookings", myBookingsData{Bookings: bookings, Pagination: pagination})
}

// CancelBooking handles the cancel form on the bookings list.
func (a *App) CancelBooking(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	id := r.FormValue("booking_id")
	if id == "" {
		http.Redirect(w, r, "/dashboard/my-bookings", http.StatusSeeOther)
		return
	}
	if err := a.API.CancelBooking(r.Context(), sess.Token, id); err != nil {
		a.actionFailed(w, r, "/dashboard/my-bookings", err)
		return
	}
	http.Redirect(w, r, "/dashboard/my-bookings?notice="+url.QueryEscape("Booking cancelled successfully."), http.StatusSeeOther)
}

type manageBookingsData struct {
	Bookings   []domain.Booking
	Decorators []domain.Decorator
}

// ManageBookings is the admin view of every booking with decorator
// assignment controls.
func (a *App) ManageBookings(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	bookings, err := a.API.AllBookings(r.Context(), sess.Token, 100)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	decorators, err := a.API.ListDecorators(r.Context())
	if err != nil {
		a.Log.Warn().Err(err).Msg("decorator list unavailable")
	}

	a.render(w, r, http.StatusOK, "manage_bookings", manageBookingsData{
		Bookings:   bookings,
		Decorators: decorators,
	})
}

// AssignDecorator handles the assignment form on the manage-bookings page.
func (a *App) AssignDecorator(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	bookingID := r.FormValue("booking_id")
	decoratorID := r.FormValue("decorator_id")
	if bookingID == "" || decoratorID == "" {
		http.Redirect(w, r, "/dashboard/manage-bookings?error="+url.QueryEscape("Pick a booking and a decorator."), http.StatusSeeOther)
		return
	}
	if err := a.API.AssignDecorator(r.Context(), sess.Token, bookingID, decoratorID); err != nil {
		a.actionFailed(w, r, "/dashboard/manage-bookings", err)
		return
	}
	http.Redirect(w, r, "/dashboard/manage-bookings?notice="+url.QueryEscape("Decorator assigned."), http.StatusSeeOther)
}

type manageServicesData struct {
	Services   []domain.Service
	Pagination domain.Pagination
}

// ManageServices is the admin catalog overview.
func (a *App) ManageServices(w http.ResponseWriter, r *http.Request) {
	page := atoiDefault(r.URL.Query().Get("page"), 1)
	services, pagination, err := a.API.ListServices(r.Context(), domain.ServiceQuery{Page: page, Limit: 20})
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, http.StatusOK, "manage_services", manageServicesData{Services: services, Pagination: pagination})
}
