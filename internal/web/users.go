package web

import (
	"net/http"
	"net/url"

	"styledecor/internal/domain"
	"styledecor/internal/session"
)

type manageUsersData struct {
	Users []domain.User
}

// ManageUsers is the admin account list with promotion and suspension
// controls.
func (a *App) ManageUsers(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())

	users, err := a.API.AllUsers(r.Context(), sess.Token)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.render(w, r, http.StatusOK, "manage_users", manageUsersData{Users: users})
}

// UserAction dispatches the manage-users forms: promote to decorator, or
// toggle active/suspended. Role changes take effect for the affected user on
// their next session resolution.
func (a *App) UserAction(w http.ResponseWriter, r *http.Request) {
	sess, _ := session.FromContext(r.Context())
	userID := r.FormValue("user_id")
	backTo := "/dashboard/manage-users"

	var err error
	var notice string
	switch r.FormValue("action") {
	case "make-decorator":
		err = a.API.MakeDecorator(r.Context(), sess.Token, userID, r.FormValue("specialization"))
		notice = "User promoted to decorator."
	case "toggle-status":
		err = a.API.ToggleUserStatus(r.Context(), sess.Token, userID)
		notice = "User status updated."
	default:
		http.Redirect(w, r, backTo, http.StatusSeeOther)
		return
	}

	if err != nil {
		a.actionFailed(w, r, backTo, err)
		return
	}
	http.Redirect(w, r, backTo+"?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}
