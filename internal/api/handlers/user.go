package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	svc *service.TenantService
}

func NewUserHandler(svc *service.TenantService) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserRequest struct {
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Role        domain.Role          `json:"role"`
	TenantID    string               `json:"tenant_id"`
	Permissions domain.PermissionSet `json:"permissions"`
	Department  string               `json:"department"`
}

type changeRoleRequest struct {
	Role domain.Role `json:"role"`
}

func filterFromRequest(r *http.Request) (domain.UserFilter, error) {
	q := r.URL.Query()
	f := domain.UserFilter{
		Search:     q.Get("search"),
		Department: q.Get("department"),
	}
	if raw := q.Get("role"); raw != "" {
		role, err := domain.ParseRole(raw)
		if err != nil {
			return f, err
		}
		f.Role = role
	}
	return f, nil
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	users, err := h.svc.Users(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleViewer
	}
	if req.TenantID != "" && req.TenantID != h.svc.ActiveTenantID() {
		writeError(w, http.StatusForbidden, "tenant access denied")
		return
	}

	u, err := h.svc.AddUser(r.Context(), domain.User{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		TenantID:    req.TenantID,
		Permissions: req.Permissions,
		Department:  req.Department,
	})
	if err != nil {
		writeServiceError(w, err, "failed to add user")
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.User(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err, "failed to get user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	// Members cannot be moved between tenants through this API.
	if patch.TenantID != nil && *patch.TenantID != h.svc.ActiveTenantID() {
		writeError(w, http.StatusForbidden, "tenant access denied")
		return
	}

	u, err := h.svc.UpdateUser(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeServiceError(w, err, "failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Role.Valid() {
		writeError(w, http.StatusBadRequest, "role must be one of admin, manager, viewer")
		return
	}

	u, err := h.svc.ChangeRole(r.Context(), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		writeServiceError(w, err, "failed to change role")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err, "failed to remove user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
