package domain

import "time"

// Identity is an entry in the fixed credential table.
type Identity struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Role         Role          `json:"role"`
	TenantID     string        `json:"tenant_id"`
	Permissions  PermissionSet `json:"permissions"`
	PasswordHash []byte        `json:"-"`
}

// Session is the currently authenticated operator.
type Session struct {
	Token       string        `json:"-"`
	ID          string        `json:"id"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Role        Role          `json:"role"`
	TenantID    string        `json:"tenant_id"`
	Permissions PermissionSet `json:"permissions"`
	SignedInAt  time.Time     `json:"signed_in_at"`
}

func (s *Session) RoleOf() Role {
	return s.Role
}

func (s *Session) HasPermission(p Permission) bool {
	return s.Permissions.Has(p)
}

// LandingPath is the view a role is sent to after signing in.
func LandingPath(r Role) string {
	switch r {
	case RoleManager:
		return "/manager-dashboard"
	case RoleViewer:
		return "/viewer-dashboard"
	default:
		return "/"
	}
}
