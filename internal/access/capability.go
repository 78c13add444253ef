// Package access decides what a signed-in operator may see: the per-route
// role guard, the capability check behind every view and navigation item, and
// the static route table itself.
package access

import (
	"slices"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

type requirementKind int

const (
	kindNone requirementKind = iota
	kindRole
	kindPermission
)

// Requirement is either a role-membership or a permission-membership check.
// The zero value is satisfied by any subject.
type Requirement struct {
	kind       requirementKind
	roles      []domain.Role
	permission domain.Permission
}

func AnyRole(roles ...domain.Role) Requirement {
	return Requirement{kind: kindRole, roles: roles}
}

func HasPermission(p domain.Permission) Requirement {
	return Requirement{kind: kindPermission, permission: p}
}

// Allows is the single capability check. A nil subject satisfies nothing but
// the zero Requirement.
func Allows(subject domain.Subject, req Requirement) bool {
	switch req.kind {
	case kindRole:
		return subject != nil && slices.Contains(req.roles, subject.RoleOf())
	case kindPermission:
		return subject != nil && subject.HasPermission(req.permission)
	default:
		return true
	}
}
