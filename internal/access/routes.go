package access

import "github.com/Harshitk-cp/tenantdesk/internal/domain"

type View string

const (
	ViewAdminDashboard   View = "admin_dashboard"
	ViewSettings         View = "settings"
	ViewUsers            View = "users"
	ViewManagerDashboard View = "manager_dashboard"
	ViewViewerDashboard  View = "viewer_dashboard"
	ViewAnalyticsDetail  View = "analytics_detail"
	ViewDemo             View = "demo"
	ViewNotFound         View = "not_found"
)

// Route binds a path pattern to a view. Public routes skip the guard
// entirely; otherwise an empty RequiredRoles admits any signed-in session.
type Route struct {
	Pattern       string
	View          View
	RequiredRoles []domain.Role
	Public        bool
}

var routes = []Route{
	{Pattern: "/demo", View: ViewDemo, Public: true},
	{Pattern: "/", View: ViewAdminDashboard, RequiredRoles: []domain.Role{domain.RoleAdmin}},
	{Pattern: "/settings", View: ViewSettings, RequiredRoles: []domain.Role{domain.RoleAdmin}},
	{Pattern: "/users", View: ViewUsers, RequiredRoles: []domain.Role{domain.RoleAdmin}},
	{Pattern: "/manager-dashboard", View: ViewManagerDashboard, RequiredRoles: []domain.Role{domain.RoleManager}},
	{Pattern: "/viewer-dashboard", View: ViewViewerDashboard, RequiredRoles: []domain.Role{domain.RoleViewer}},
	{Pattern: "/analytics/{metric}", View: ViewAnalyticsDetail, RequiredRoles: []domain.Role{domain.RoleAdmin, domain.RoleManager}},
}

// Routes returns a copy of the static route table. Unmatched paths resolve to
// ViewNotFound.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}
