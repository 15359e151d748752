package handler

import (
	"context"
	"net/http"

	"github.com/duarte/gocontas/internal/adapter/http/dto"
	"github.com/duarte/gocontas/internal/adapter/http/middleware"
	"github.com/duarte/gocontas/internal/usecase"
)

// DashboardService defines the behavior needed by DashboardHandler.
type DashboardService interface {
	GetSummary(ctx context.Context, tenantID string) (*usecase.DashboardSummary, error)
}

// DashboardHandler handles the tenant summary panel.
type DashboardHandler struct {
	dashboardUC DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardUC DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// Get returns the current-month dashboard summary.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())
	summary, err := h.dashboardUC.GetSummary(r.Context(), tenantID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute dashboard", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DashboardFromUseCase(summary))
}
