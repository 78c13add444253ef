package access

import "github.com/Harshitk-cp/tenantdesk/internal/domain"

type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`

	requires Requirement
}

var navigation = []NavItem{
	{Name: "Admin Dashboard", Href: "/", requires: AnyRole(domain.RoleAdmin)},
	{Name: "Manager Dashboard", Href: "/manager-dashboard", requires: AnyRole(domain.RoleManager)},
	{Name: "My Dashboard", Href: "/viewer-dashboard", requires: AnyRole(domain.RoleViewer)},
	{Name: "Users", Href: "/users", requires: HasPermission(domain.PermManageUsers)},
	{Name: "Settings", Href: "/settings", requires: HasPermission(domain.PermManageSettings)},
}

// Navigation returns the sidebar entries subject may follow.
func Navigation(subject domain.Subject) []NavItem {
	out := make([]NavItem, 0, len(navigation))
	for _, item := range navigation {
		if Allows(subject, item.requires) {
			out = append(out, item)
		}
	}
	return out
}
