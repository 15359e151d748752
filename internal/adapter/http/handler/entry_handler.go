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

// LedgerService defines the behavior needed by EntryHandler.
type LedgerService interface {
	CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.LedgerEntry, error)
	GetEntry(ctx context.Context, tenantID, id string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, tenantID, id string) error
}

// EntryHandler handles ledger entry HTTP requests.
type EntryHandler struct {
	ledgerUC LedgerService
}

// NewEntryHandler creates a new EntryHandler.
func NewEntryHandler(ledgerUC LedgerService) *EntryHandler {
	return &EntryHandler{ledgerUC: ledgerUC}
}

// Create posts a manual ledger entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	entry, err := h.ledgerUC.CreateEntry(r.Context(), req.ToUseCaseInput(tenantID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create entry", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Get retrieves a ledger entry by ID.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	entry, err := h.ledgerUC.GetEntry(r.Context(), tenantID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get entry", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// List lists ledger entries for a period, newest first. Missing range bounds
// default to first-of-month through today.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledgerUC.ListEntries(r.Context(), usecase.ListEntriesInput{
		TenantID:      middleware.TenantFromContext(r.Context()),
		CashAccountID: r.URL.Query().Get("cash_account_id"),
		From:          parseDateQuery(r, "from"),
		To:            parseDateQuery(r, "to"),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.EntriesFromDomain(entries))
}

// Delete removes a ledger entry. A settlement entry reverts its obligation to
// pending.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	if err := h.ledgerUC.DeleteEntry(r.Context(), tenantID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete entry", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
