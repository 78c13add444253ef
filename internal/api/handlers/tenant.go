package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/tenantdesk/internal/api/middleware"
	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/service"
)

type TenantHandler struct {
	svc *service.TenantService
}

func NewTenantHandler(svc *service.TenantService) *TenantHandler {
	return &TenantHandler{svc: svc}
}

type workspaceResponse struct {
	Tenant       *domain.Tenant `json:"tenant"`
	ActingMember *domain.User   `json:"acting_member"`
	Loading      bool           `json:"loading"`
}

func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.Tenants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tenants")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tenants": tenants})
}

func (h *TenantHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.svc.Loading() {
		writeJSON(w, http.StatusOK, workspaceResponse{Loading: true})
		return
	}

	tenant, err := h.svc.ActiveTenant(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to get tenant")
		return
	}
	member, err := h.svc.ActingMember(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get acting member")
		return
	}
	writeJSON(w, http.StatusOK, workspaceResponse{Tenant: tenant, ActingMember: member})
}

type selectTenantRequest struct {
	TenantID string `json:"tenant_id"`
}

// Select switches the active tenant. Operators may only select their own
// tenant; anything else would break the session/tenant pairing views rely on.
func (h *TenantHandler) Select(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}

	var req selectTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TenantID == "" {
		writeError(w, http.StatusBadRequest, "tenant_id is required")
		return
	}
	if req.TenantID != sess.TenantID {
		writeError(w, http.StatusForbidden, "tenant access denied")
		return
	}

	tenant, err := h.svc.SelectTenant(r.Context(), req.TenantID)
	if err != nil {
		writeServiceError(w, err, "failed to select tenant")
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}

func (h *TenantHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tenant, err := h.svc.UpdateTenantSettings(r.Context(), patch)
	if err != nil {
		writeServiceError(w, err, "failed to update settings")
		return
	}
	writeJSON(w, http.StatusOK, tenant)
}
