package handlers

import (
	"net/http"

	"github.com/Harshitk-cp/tenantdesk/internal/access"
	"github.com/Harshitk-cp/tenantdesk/internal/api/middleware"
	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

// ViewHandler renders the guarded dashboard views as JSON documents. Every
// response carries a "view" discriminator naming what the client should show.
type ViewHandler struct {
	svc *service.TenantService
}

func NewViewHandler(svc *service.TenantService) *ViewHandler {
	return &ViewHandler{svc: svc}
}

// Handler returns the renderer for v.
func (h *ViewHandler) Handler(v access.View) http.HandlerFunc {
	switch v {
	case access.ViewAdminDashboard:
		return h.tenantScoped(v, h.adminDashboard)
	case access.ViewSettings:
		return h.tenantScoped(v, h.settings)
	case access.ViewUsers:
		return h.tenantScoped(v, h.users)
	case access.ViewManagerDashboard:
		return h.tenantScoped(v, h.managerDashboard)
	case access.ViewViewerDashboard:
		return h.tenantScoped(v, h.viewerDashboard)
	case access.ViewAnalyticsDetail:
		return h.tenantScoped(v, h.analyticsDetail)
	case access.ViewDemo:
		return h.demo
	default:
		return h.NotFound
	}
}

func (h *ViewHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"view":  access.ViewNotFound,
		"path":  r.URL.Path,
		"error": "page not found",
	})
}

type viewContext struct {
	session *domain.Session
	tenant  *domain.Tenant
}

type renderFunc func(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool)

// tenantScoped resolves the active tenant, rejects a session from another
// tenant, and wraps the rendered payload.
func (h *ViewHandler) tenantScoped(v access.View, render renderFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := middleware.SessionFromContext(r.Context())
		if h.svc.Loading() {
			writeJSON(w, http.StatusOK, map[string]any{"view": v, "loading": true})
			return
		}
		if err := h.svc.CheckSession(sess); err != nil {
			writeServiceError(w, err, "failed to render view")
			return
		}
		tenant, err := h.svc.ActiveTenant(r.Context())
		if err != nil {
			writeServiceError(w, err, "failed to render view")
			return
		}

		data, ok := render(w, r, viewContext{session: sess, tenant: tenant})
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"view":   v,
			"tenant": tenant,
			"data":   data,
		})
	}
}

func (h *ViewHandler) adminDashboard(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool) {
	analytics, err := h.svc.Analytics()
	if err != nil {
		writeServiceError(w, err, "failed to load analytics")
		return nil, false
	}
	users, err := h.svc.Users(r.Context(), domain.UserFilter{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load users")
		return nil, false
	}

	byRole := make(map[domain.Role]int, len(domain.Roles))
	for _, role := range domain.Roles {
		byRole[role] = 0
	}
	for _, u := range users {
		byRole[u.Role]++
	}

	return map[string]any{
		"analytics":     analytics,
		"user_count":    len(users),
		"users_by_role": byRole,
		"full_access":   access.Allows(vc.session, access.HasPermission(domain.PermViewAll)),
	}, true
}

func (h *ViewHandler) settings(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool) {
	return map[string]any{
		"settings": vc.tenant.Settings,
		"can_edit": access.Allows(vc.session, access.HasPermission(domain.PermManageSettings)),
	}, true
}

func (h *ViewHandler) users(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool) {
	filter, err := filterFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	users, err := h.svc.Users(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load users")
		return nil, false
	}
	return map[string]any{
		"users":      users,
		"can_manage": access.Allows(vc.session, access.HasPermission(domain.PermManageUsers)),
	}, true
}

func (h *ViewHandler) managerDashboard(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool) {
	analytics, err := h.svc.Analytics()
	if err != nil {
		writeServiceError(w, err, "failed to load analytics")
		return nil, false
	}
	team, err := h.svc.Users(r.Context(), domain.UserFilter{Role: domain.RoleViewer})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load team")
		return nil, false
	}
	return map[string]any{
		"analytics":       analytics,
		"team":            team,
		"can_manage_team": access.Allows(vc.session, access.HasPermission(domain.PermManageTeam)),
	}, true
}

type seriesSummary struct {
	Current int `json:"current"`
	Change  int `json:"change"`
}

func (h *ViewHandler) viewerDashboard(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool) {
	analytics, err := h.svc.Analytics()
	if err != nil {
		writeServiceError(w, err, "failed to load analytics")
		return nil, false
	}

	summary := make(map[domain.Metric]seriesSummary, len(domain.Metrics))
	for _, m := range domain.Metrics {
		s, _ := analytics.Series(m)
		summary[m] = seriesSummary{Current: s.Current, Change: s.Change}
	}
	return map[string]any{
		"summary":      summary,
		"generated_at": analytics.GeneratedAt,
	}, true
}

func (h *ViewHandler) analyticsDetail(w http.ResponseWriter, r *http.Request, vc viewContext) (any, bool) {
	metric := domain.Metric(chi.URLParam(r, "metric"))
	analytics, err := h.svc.Analytics()
	if err != nil {
		writeServiceError(w, err, "failed to load analytics")
		return nil, false
	}
	series, ok := analytics.Series(metric)
	if !ok {
		h.NotFound(w, r)
		return nil, false
	}
	return map[string]any{
		"metric": metric,
		"series": series,
	}, true
}

type roleMatrixEntry struct {
	Role        domain.Role          `json:"role"`
	Permissions domain.PermissionSet `json:"permissions"`
	Landing     string               `json:"landing"`
}

func (h *ViewHandler) demo(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.Tenants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tenants")
		return
	}

	matrix := make([]roleMatrixEntry, 0, len(domain.Roles))
	for _, role := range domain.Roles {
		matrix = append(matrix, roleMatrixEntry{
			Role:        role,
			Permissions: domain.DefaultPermissions(role),
			Landing:     domain.LandingPath(role),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"view":    access.ViewDemo,
		"tenants": tenants,
		"roles":   matrix,
	})
}
