package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Role is the coarse access tier of a session or tenant member.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// Roles lists every role in descending order of privilege.
var Roles = []Role{RoleAdmin, RoleManager, RoleViewer}

func (r Role) Valid() bool {
	return slices.Contains(Roles, r)
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Permission is a capability token gating feature visibility, independent of role.
type Permission string

const (
	PermViewAll        Permission = "view_all"
	PermEditAll        Permission = "edit_all"
	PermManageUsers    Permission = "manage_users"
	PermManageSettings Permission = "manage_settings"
	PermViewDepartment Permission = "view_department"
	PermEditDepartment Permission = "edit_department"
	PermManageTeam     Permission = "manage_team"
	PermViewAssigned   Permission = "view_assigned"
)

var defaultPermissions = map[Role][]Permission{
	RoleAdmin:   {PermViewAll, PermEditAll, PermManageUsers, PermManageSettings},
	RoleManager: {PermViewDepartment, PermEditDepartment, PermManageTeam},
	RoleViewer:  {PermViewAssigned},
}

// DefaultPermissions returns a fresh set holding the permissions granted to
// a newly created or re-roled member.
func DefaultPermissions(r Role) PermissionSet {
	return NewPermissionSet(defaultPermissions[r]...)
}

// PermissionSet is an unordered set of permissions. It encodes to JSON as a
// sorted array.
type PermissionSet map[Permission]struct{}

func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

func (s PermissionSet) Slice() []Permission {
	out := make([]Permission, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s PermissionSet) Clone() PermissionSet {
	return NewPermissionSet(s.Slice()...)
}

func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

func (s *PermissionSet) UnmarshalJSON(b []byte) error {
	var perms []Permission
	if err := json.Unmarshal(b, &perms); err != nil {
		return err
	}
	*s = NewPermissionSet(perms...)
	return nil
}
