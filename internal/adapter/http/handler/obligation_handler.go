package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/duarte/gocontas/internal/adapter/http/dto"
	"github.com/duarte/gocontas/internal/adapter/http/middleware"
	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
)

// ObligationService defines the behavior needed by ObligationHandler.
type ObligationService interface {
	CreateObligation(ctx context.Context, input usecase.CreateObligationInput) ([]*domain.Obligation, error)
	GetObligation(ctx context.Context, tenantID, id string) (*domain.Obligation, error)
	Report(ctx context.Context, input usecase.ListObligationsInput) (*usecase.ObligationsReport, error)
	UpdateObligation(ctx context.Context, input usecase.UpdateObligationInput) (*domain.Obligation, error)
	DeleteObligation(ctx context.Context, tenantID, id string) error
}

// SettlementService defines the behavior needed for settling obligations.
type SettlementService interface {
	Settle(ctx context.Context, input usecase.SettleInput) (*domain.LedgerEntry, error)
}

// ObligationHandler handles obligation-related HTTP requests.
type ObligationHandler struct {
	obligationUC ObligationService
	settlementUC SettlementService
}

// NewObligationHandler creates a new ObligationHandler.
func NewObligationHandler(obligationUC ObligationService, settlementUC SettlementService) *ObligationHandler {
	return &ObligationHandler{
		obligationUC: obligationUC,
		settlementUC: settlementUC,
	}
}

// Create creates an obligation or an installment series.
func (h *ObligationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	obligations, err := h.obligationUC.CreateObligation(r.Context(), req.ToUseCaseInput(tenantID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create obligation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ObligationsFromDomain(obligations))
}

// Get retrieves an obligation by ID.
func (h *ObligationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	obligation, err := h.obligationUC.GetObligation(r.Context(), tenantID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get obligation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ObligationFromDomain(obligation))
}

// ListReceivables lists receivables with the report total.
func (h *ObligationHandler) ListReceivables(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.KindReceivable)
}

// ListPayables lists payables with the report total.
func (h *ObligationHandler) ListPayables(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, domain.KindPayable)
}

func (h *ObligationHandler) list(w http.ResponseWriter, r *http.Request, kind domain.CategoryKind) {
	input := usecase.ListObligationsInput{
		TenantID:  middleware.TenantFromContext(r.Context()),
		Kind:      kind,
		PartyName: r.URL.Query().Get("party_name"),
		Status:    domain.ObligationStatus(r.URL.Query().Get("status")),
	}

	if from := parseDateQuery(r, "due_from"); !from.IsZero() {
		input.DueFrom = &from
	}
	if to := parseDateQuery(r, "due_to"); !to.IsZero() {
		input.DueTo = &to
	}

	report, err := h.obligationUC.Report(r.Context(), input)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list obligations", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ObligationsReportFromUseCase(report))
}

// Update edits a not-yet-paid obligation.
func (h *ObligationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	var req dto.UpdateObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	obligation, err := h.obligationUC.UpdateObligation(r.Context(), req.ToUseCaseInput(tenantID, id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update obligation", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ObligationFromDomain(obligation))
}

// Delete deletes an obligation unless it has been paid.
func (h *ObligationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	if err := h.obligationUC.DeleteObligation(r.Context(), tenantID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete obligation", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Settle marks an obligation as paid and posts the matching ledger entry.
func (h *ObligationHandler) Settle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing obligation ID", "")
		return
	}

	var req dto.SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	entry, err := h.settlementUC.Settle(r.Context(), req.ToUseCaseInput(tenantID, id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to settle obligation", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}
