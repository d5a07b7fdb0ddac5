package web

import (
	"net/http"
	"net/url"
	"time"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

type projectsData struct {
	View     string
	Bookings []domain.Booking
	// Earnings is the completed-project total, shown on the earnings view.
	Earnings int
}

// AssignedProjects is the decorator workspace. The default view lists all
// assigned projects; view=schedule narrows to today's, view=earnings sums
// completed work.
func (a *App) AssignedProjects(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	bookings, err := a.API.AssignedBookings(r.Context(), sess.Token)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	view := r.URL.Query().Get("view")
	data := projectsData{View: view}
	switch view {
	case "schedule":
		today := time.Now()
		for _, b := range bookings {
			if sameDay(b.BookingDate, today) {
				data.Bookings = append(data.Bookings, b)
			}
		}
	case "earnings":
		for _, b := range bookings {
			if b.ProjectStatus == domain.ProjectCompleted {
				data.Bookings = append(data.Bookings, b)
				data.Earnings += b.ServiceCost
			}
		}
	default:
		data.View = ""
		data.Bookings = bookings
	}

	a.render(w, r, http.StatusOK, "assigned_projects", data)
}

// UpdateProjectStatus handles the status form on a project card.
func (a *App) UpdateProjectStatus(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	bookingID := r.FormValue("booking_id")
	status := domain.ProjectStatus(r.FormValue("project_status"))

	switch status {
	case domain.ProjectAssigned, domain.ProjectInProgress, domain.ProjectCompleted:
	default:
		http.Redirect(w, r, "/dashboard/assigned-projects?error="+url.QueryEscape("Unknown project status."), http.StatusSeeOther)
		return
	}

	if err := a.API.UpdateProjectStatus(r.Context(), sess.Token, bookingID, status); err != nil {
		a.actionFailed(w, r, "/dashboard/assigned-projects", err)
		return
	}
	http.Redirect(w, r, "/dashboard/assigned-projects?notice="+url.QueryEscape("Project status updated."), http.StatusSeeOther)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
