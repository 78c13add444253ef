package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Harshitk-cp/tenantdesk/internal/access"
	"github.com/Harshitk-cp/tenantdesk/internal/api/middleware"
	"github.com/Harshitk-cp/tenantdesk/internal/domain"
	"github.com/Harshitk-cp/tenantdesk/internal/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	sessions *service.SessionService
	tenants  *service.TenantService
	logger   *zap.Logger
}

func NewAuthHandler(sessions *service.SessionService, tenants *service.TenantService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, tenants: tenants, logger: logger}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
	Landing string          `json:"landing"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	sess, err := h.sessions.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err, "sign-in failed")
		return
	}

	// Keep the workspace on the operator's own tenant.
	if h.tenants.ActiveTenantID() != sess.TenantID {
		if _, err := h.tenants.SelectTenant(r.Context(), sess.TenantID); err != nil {
			h.logger.Error("failed to select session tenant",
				zap.String("tenant_id", sess.TenantID),
				zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, signInResponse{
		Token:   sess.Token,
		Session: sess,
		Landing: domain.LandingPath(sess.Role),
	})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "sign-out failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *AuthHandler) Navigation(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromContext(r.Context())
	if sess == nil {
		writeError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": access.Navigation(sess)})
}
