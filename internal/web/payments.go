package web

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

type paymentData struct {
	BookingID string
	Intent    domain.PaymentIntent
}

// Payment renders the checkout page for a booking. The card element itself
// is a hosted third-party widget; this page only threads the intent handle
// through and takes the confirmation post-back.
func (a *App) Payment(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	bookingID := chi.URLParam(r, "bookingID")

	intent, err := a.API.CreatePaymentIntent(r.Context(), sess.Token, bookingID)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, http.StatusOK, "payment", paymentData{BookingID: bookingID, Intent: intent})
}

// ConfirmPayment records a widget-settled payment and returns the customer
// to their bookings.
func (a *App) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	bookingID := chi.URLParam(r, "bookingID")
	intentID := r.FormValue("payment_intent_id")
	transactionID := r.FormValue("transaction_id")

	if err := a.API.ConfirmPayment(r.Context(), sess.Token, bookingID, intentID, transactionID); err != nil {
		a.actionFailed(w, r, "/dashboard/payments/"+url.PathEscape(bookingID), err)
		return
	}
	http.Redirect(w, r, "/dashboard/my-bookings?notice="+url.QueryEscape("Payment successful!"), http.StatusSeeOther)
}

type paymentHistoryData struct {
	Payments []domain.Payment
}

// PaymentHistory lists the customer's settled payments.
func (a *App) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	payments, err := a.API.PaymentHistory(r.Context(), sess.Token)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, http.StatusOK, "payment_history", paymentHistoryData{Payments: payments})
}
