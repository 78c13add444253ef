package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/tenantdesk/internal/access"
	"github.com/Harshitk-cp/tenantdesk/internal/domain"
)

type signInBody struct {
	View  string `json:"view"`
	Error string `json:"error"`
}

type accessDeniedBody struct {
	View          string        `json:"view"`
	Error         string        `json:"error"`
	Role          domain.Role   `json:"role,omitempty"`
	RequiredRoles []domain.Role `json:"required_roles,omitempty"`
}

// RequireRoles guards a route with access.Decide. An empty role list admits
// any signed-in session.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := access.Decide(SessionFromContext(r.Context()), roles)
			switch d.Outcome {
			case access.ShowSignIn:
				writeJSON(w, http.StatusUnauthorized, signInBody{
					View:  access.ShowSignIn.String(),
					Error: "authentication required",
				})
			case access.ShowAccessDenied:
				writeJSON(w, http.StatusForbidden, accessDeniedBody{
					View:          access.ShowAccessDenied.String(),
					Error:         "you don't have permission to access this page",
					Role:          d.Role,
					RequiredRoles: d.RequiredRoles,
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// RequirePermission rejects sessions lacking perm.
func RequirePermission(perm domain.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil {
				writeJSON(w, http.StatusUnauthorized, signInBody{
					View:  access.ShowSignIn.String(),
					Error: "authentication required",
				})
				return
			}
			if !access.Allows(sess, access.HasPermission(perm)) {
				writeJSON(w, http.StatusForbidden, accessDeniedBody{
					View:  access.ShowAccessDenied.String(),
					Error: "missing permission " + string(perm),
					Role:  sess.Role,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TenantChecker reports whether a session may act on the active tenant.
type TenantChecker interface {
	Loading() bool
	CheckSession(sess *domain.Session) error
}

// RequireSessionTenant rejects a session whose tenant is not the active one
// with 409. While no tenant is active the request passes through, and the
// handler answers for the loading state.
func RequireSessionTenant(tc TenantChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromContext(r.Context())
			if sess == nil {
				writeJSON(w, http.StatusUnauthorized, signInBody{
					View:  access.ShowSignIn.String(),
					Error: "authentication required",
				})
				return
			}
			if tc.Loading() {
				next.ServeHTTP(w, r)
				return
			}
			if err := tc.CheckSession(sess); err != nil {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
