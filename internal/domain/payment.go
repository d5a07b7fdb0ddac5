package domain

import "time"

// Payment is a settled card payment for a booking.
type Payment struct {
	ID            string
	BookingID     string
	ServiceName   string
	Amount        int
	TransactionID string
	Status        string
	UserEmail     string
	CreatedAt     time.Time
}

// PaymentIntent is the hosted widget handle the API hands back before the
// card element takes over. The widget protocol itself is out of scope; the
// front-end only threads the identifiers through.
type PaymentIntent struct {
	ClientSecret string
	IntentID     string
	Amount       int
}

// RevenueSummary aggregates payments for the admin revenue page.
type RevenueSummary struct {
	Total     int
	ThisMonth int
	Today     int
}

// Summarize folds payments into revenue buckets relative to now.
func Summarize(payments []Payment, now time.Time) RevenueSummary {
	var sum RevenueSummary
	y, m, d := now.Date()
	for _, p := range payments {
		sum.Total += p.Amount
		py, pm, pd := p.CreatedAt.Date()
		if py == y && pm == m {
			sum.ThisMonth += p.Amount
			if pd == d {
				sum.Today += p.Amount
			}
		}
	}
	return sum
}
