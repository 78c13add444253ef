package handlers

import (
	"net/http"

	"github.com/Harshitk-cp/tenantdesk/internal/service"
)

type AnalyticsHandler struct {
	svc *service.TenantService
}

func NewAnalyticsHandler(svc *service.TenantService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.Analytics()
	if err != nil {
		writeServiceError(w, err, "failed to get analytics")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *AnalyticsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.svc.Loading() {
		writeError(w, http.StatusConflict, service.ErrNoActiveTenant.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.svc.RefreshAnalytics(r.Context()))
}
