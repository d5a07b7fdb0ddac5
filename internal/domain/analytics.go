package domain

import "sort"

// DemandEntry is one bar of the service-demand chart.
type DemandEntry struct {
	Service  string
	Bookings int
}

// BookingAnalytics aggregates bookings for the admin analytics page.
type BookingAnalytics struct {
	Demand       []DemandEntry
	StatusCounts map[BookingStatus]int
}

// Analyze folds a booking list into per-service demand and status
// distribution. Demand is sorted by count descending, name ascending on ties,
// so the chart is stable across refreshes.
func Analyze(bookings []Booking) BookingAnalytics {
	demand := map[string]int{}
	status := map[BookingStatus]int{}
	for _, b := range bookings {
		demand[b.ServiceName]++
		status[b.Status]++
	}
	entries := make([]DemandEntry, 0, len(demand))
	for name, count := range demand {
		entries = append(entries, DemandEntry{Service: name, Bookings: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Bookings != entries[j].Bookings {
			return entries[i].Bookings > entries[j].Bookings
		}
		return entries[i].Service < entries[j].Service
	})
	return BookingAnalytics{Demand: entries, StatusCounts: status}
}
