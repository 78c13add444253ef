package domain

import "strings"

// User is a member of a tenant's roster. It is distinct from Session.
type User struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Role        Role          `json:"role"`
	TenantID    string        `json:"tenant_id"`
	Permissions PermissionSet `json:"permissions"`
	Department  string        `json:"department,omitempty"`
}

func (u User) Clone() User {
	u.Permissions = u.Permissions.Clone()
	return u
}

// UserPatch is a merge-patch over User. The id is never patched.
type UserPatch struct {
	Name        *string        `json:"name,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Role        *Role          `json:"role,omitempty"`
	TenantID    *string        `json:"tenant_id,omitempty"`
	Permissions *PermissionSet `json:"permissions,omitempty"`
	Department  *string        `json:"department,omitempty"`
}

func (u User) Apply(p UserPatch) User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Role != nil {
		out.Role = *p.Role
	}
	if p.TenantID != nil {
		out.TenantID = *p.TenantID
	}
	if p.Permissions != nil {
		out.Permissions = p.Permissions.Clone()
	}
	if p.Department != nil {
		out.Department = *p.Department
	}
	return out
}

// UserFilter narrows a roster listing. Zero values match everything.
type UserFilter struct {
	Search     string
	Role       Role
	Department string
}

func (f UserFilter) Matches(u User) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(u.Name), q) && !strings.Contains(strings.ToLower(u.Email), q) {
			return false
		}
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Department != "" && u.Department != f.Department {
		return false
	}
	return true
}

func (u *User) RoleOf() Role {
	return u.Role
}

func (u *User) HasPermission(p Permission) bool {
	return u.Permissions.Has(p)
}
