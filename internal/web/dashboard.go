package web

import "net/http"

// Profile is the default dashboard page: the signed-in user's own details.
// The gate guarantees an authenticated session by the time this runs.
func (a *App) Profile(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "profile", nil)
}
