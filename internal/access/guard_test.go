package access

import (
	"testing"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sessionFor(role domain.Role) *domain.Session {
	return &domain.Session{
		ID:          "1",
		Role:        role,
		TenantID:    "acme-corp",
		Permissions: domain.DefaultPermissions(role),
	}
}

func TestDecide_NoSessionShowsSignInForEveryRoute(t *testing.T) {
	for _, route := range Routes() {
		d := Decide(nil, route.RequiredRoles)
		assert.Equal(t, ShowSignIn, d.Outcome, route.Pattern)
	}
	assert.Equal(t, ShowSignIn, Decide(nil, nil).Outcome)
}

func TestDecide_DeniesRolesOutsideRequiredSet(t *testing.T) {
	for _, role := range domain.Roles {
		sess := sessionFor(role)
		for _, route := range Routes() {
			if len(route.RequiredRoles) == 0 {
				continue
			}

			d := Decide(sess, route.RequiredRoles)
			allowed := false
			for _, r := range route.RequiredRoles {
				if r == role {
					allowed = true
				}
			}

			if allowed {
				assert.Equal(t, Render, d.Outcome, "%s on %s", role, route.Pattern)
				continue
			}
			assert.Equal(t, ShowAccessDenied, d.Outcome, "%s on %s", role, route.Pattern)
			assert.Equal(t, role, d.Role)
			assert.Equal(t, route.RequiredRoles, d.RequiredRoles)
		}
	}
}

func TestDecide_NoRequiredRolesRenders(t *testing.T) {
	d := Decide(sessionFor(domain.RoleViewer), nil)
	assert.Equal(t, Render, d.Outcome)
	assert.Empty(t, d.RequiredRoles)
}

func TestDecide_RequiredRolesAreCopied(t *testing.T) {
	required := []domain.Role{domain.RoleAdmin}
	d := Decide(sessionFor(domain.RoleViewer), required)
	required[0] = domain.RoleViewer

	assert.Equal(t, []domain.Role{domain.RoleAdmin}, d.RequiredRoles)
}

func TestRoutes_AnalyticsAdmitsAdminAndManager(t *testing.T) {
	var found bool
	for _, r := range Routes() {
		if r.View == ViewAnalyticsDetail {
			found = true
			assert.Equal(t, "/analytics/{metric}", r.Pattern)
			assert.ElementsMatch(t, []domain.Role{domain.RoleAdmin, domain.RoleManager}, r.RequiredRoles)
		}
		if r.View == ViewDemo {
			assert.True(t, r.Public)
		}
	}
	assert.True(t, found)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "sign_in", ShowSignIn.String())
	assert.Equal(t, "access_denied", ShowAccessDenied.String())
}
