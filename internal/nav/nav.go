// Package nav derives the dashboard sidebar from the signed-in role. The
// menu is advisory UI only: the gate is the enforcement point, and the test
// suite pins the invariant that no list ever offers a link the gate would
// bounce.
package nav

import "styledecor/internal/domain"

// Item is one sidebar entry. Icon names the glyph the template shows.
type Item struct {
	Path  string
	Label string
	Icon  string
}

// The lists are static per role; an entry meant for several roles is
// duplicated into each role's list.
var (
	userMenu = []Item{
		{Path: "/dashboard", Label: "Overview", Icon: "layout-dashboard"},
		{Path: "/dashboard/profile", Label: "My Profile", Icon: "user"},
		{Path: "/dashboard/my-bookings", Label: "My Bookings", Icon: "calendar"},
		{Path: "/dashboard/payment-history", Label: "Payment History", Icon: "credit-card"},
	}

	adminMenu = []Item{
		{Path: "/dashboard", Label: "Overview", Icon: "layout-dashboard"},
		{Path: "/dashboard/manage-services", Label: "Manage Services", Icon: "package"},
		{Path: "/dashboard/manage-bookings", Label: "Manage Bookings", Icon: "clipboard-list"},
		{Path: "/dashboard/manage-users", Label: "Manage Users", Icon: "users"},
		{Path: "/dashboard/revenue", Label: "Revenue", Icon: "dollar-sign"},
		{Path: "/dashboard/analytics", Label: "Analytics", Icon: "bar-chart"},
		{Path: "/dashboard/assigned-projects", Label: "Assigned Projects", Icon: "calendar"},
	}

	decoratorMenu = []Item{
		{Path: "/dashboard", Label: "Overview", Icon: "layout-dashboard"},
		{Path: "/dashboard/assigned-projects", Label: "Assigned Projects", Icon: "calendar"},
		{Path: "/dashboard/assigned-projects?view=schedule", Label: "Today's Schedule", Icon: "clipboard-list"},
		{Path: "/dashboard/assigned-projects?view=earnings", Label: "Earnings", Icon: "dollar-sign"},
	}
)

// MenuFor selects the sidebar list for a role. Unknown roles fall back to
// the customer menu, matching the gate's treatment of the default dashboard
// pages.
func MenuFor(role domain.Role) []Item {
	switch role {
	case domain.RoleAdmin:
		return adminMenu
	case domain.RoleDecorator:
		return decoratorMenu
	default:
		return userMenu
	}
}
