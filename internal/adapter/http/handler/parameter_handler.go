package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duarte/gocontas/internal/adapter/http/dto"
	"github.com/duarte/gocontas/internal/adapter/http/middleware"
)

// ParameterService defines the behavior needed by ParameterHandler.
type ParameterService interface {
	Get(ctx context.Context, tenantID, key string) (string, error)
	Set(ctx context.Context, tenantID, key, value string) error
}

// ParameterHandler handles tenant parameter HTTP requests.
type ParameterHandler struct {
	parameterUC ParameterService
}

// NewParameterHandler creates a new ParameterHandler.
func NewParameterHandler(parameterUC ParameterService) *ParameterHandler {
	return &ParameterHandler{parameterUC: parameterUC}
}

// Get returns the value of a tenant parameter.
func (h *ParameterHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing parameter key", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	value, err := h.parameterUC.Get(r.Context(), tenantID, key)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get parameter", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ParameterResponse{Key: key, Value: value})
}

// Set upserts a tenant parameter.
func (h *ParameterHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		writeError(w, http.StatusBadRequest, "missing parameter key", "")
		return
	}

	var req dto.SetParameterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	if err := h.parameterUC.Set(r.Context(), tenantID, key, req.Value); err != nil {
		writeError(w, mapDomainError(err), "failed to set parameter", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ParameterResponse{Key: key, Value: req.Value})
}
