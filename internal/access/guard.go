package access

import (
	"slices"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

type Outcome int

const (
	Render Outcome = iota
	ShowSignIn
	ShowAccessDenied
)

func (o Outcome) String() string {
	switch o {
	case Render:
		return "render"
	case ShowSignIn:
		return "sign_in"
	case ShowAccessDenied:
		return "access_denied"
	}
	return "unknown"
}

// Decision is the result of guarding one navigation. Role and RequiredRoles
// are only set for ShowAccessDenied.
type Decision struct {
	Outcome       Outcome
	Role          domain.Role
	RequiredRoles []domain.Role
}

// Decide guards a single navigation. An empty requiredRoles admits any
// signed-in session.
func Decide(sess *domain.Session, requiredRoles []domain.Role) Decision {
	if sess == nil {
		return Decision{Outcome: ShowSignIn}
	}
	if len(requiredRoles) > 0 && !Allows(sess, AnyRole(requiredRoles...)) {
		return Decision{
			Outcome:       ShowAccessDenied,
			Role:          sess.Role,
			RequiredRoles: slices.Clone(requiredRoles),
		}
	}
	return Decision{Outcome: Render}
}
