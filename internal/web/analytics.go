package web

import (
	"net/http"
	"time"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

type revenueData struct {
	Payments []domain.Payment
	Summary  domain.RevenueSummary
}

// Revenue is the admin revenue dashboard: running total plus month and day
// slices computed from the payment feed.
func (a *App) Revenue(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	payments, totalRevenue, err := a.API.AllPayments(r.Context(), sess.Token)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	summary := domain.Summarize(payments, time.Now())
	if totalRevenue > 0 {
		// Prefer the API's own running total when it reports one; the local
		// fold only covers the page the API returned.
		summary.Total = totalRevenue
	}

	a.render(w, r, http.StatusOK, "revenue", revenueData{Payments: payments, Summary: summary})
}

type analyticsData struct {
	Analytics domain.BookingAnalytics
	Total     int
}

// Analytics is the admin demand dashboard: bookings per service and status
// distribution.
func (a *App) Analytics(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	bookings, err := a.API.AllBookings(r.Context(), sess.Token, 1000)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	a.render(w, r, http.StatusOK, "analytics", analyticsData{
		Analytics: domain.Analyze(bookings),
		Total:     len(bookings),
	})
}
