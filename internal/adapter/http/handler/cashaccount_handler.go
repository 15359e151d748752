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

// CashAccountService defines the behavior needed by CashAccountHandler.
type CashAccountService interface {
	CreateCashAccount(ctx context.Context, input usecase.CreateCashAccountInput) (*domain.CashAccount, error)
	GetCashAccount(ctx context.Context, tenantID, id string) (*domain.CashAccount, error)
	UpdateCashAccount(ctx context.Context, input usecase.UpdateCashAccountInput) (*domain.CashAccount, error)
	DeleteCashAccount(ctx context.Context, tenantID, id string) error
	ListCashAccounts(ctx context.Context, tenantID string) ([]*domain.CashAccount, error)
}

// CashAccountHandler handles cash account HTTP requests.
type CashAccountHandler struct {
	cashAccountUC CashAccountService
}

// NewCashAccountHandler creates a new CashAccountHandler.
func NewCashAccountHandler(cashAccountUC CashAccountService) *CashAccountHandler {
	return &CashAccountHandler{cashAccountUC: cashAccountUC}
}

// Create creates a new cash account.
func (h *CashAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	account, err := h.cashAccountUC.CreateCashAccount(r.Context(), req.ToUseCaseInput(tenantID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create cash account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.CashAccountFromDomain(account))
}

// Get retrieves a cash account by ID.
func (h *CashAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash account ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	account, err := h.cashAccountUC.GetCashAccount(r.Context(), tenantID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get cash account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashAccountFromDomain(account))
}

// Update edits a cash account.
func (h *CashAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash account ID", "")
		return
	}

	var req dto.UpdateCashAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	account, err := h.cashAccountUC.UpdateCashAccount(r.Context(), req.ToUseCaseInput(tenantID, id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update cash account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashAccountFromDomain(account))
}

// Delete deletes a cash account unless ledger entries reference it.
func (h *CashAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing cash account ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	if err := h.cashAccountUC.DeleteCashAccount(r.Context(), tenantID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete cash account", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists the tenant's cash accounts ordered by name.
func (h *CashAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantFromContext(r.Context())
	accounts, err := h.cashAccountUC.ListCashAccounts(r.Context(), tenantID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list cash accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.CashAccountsFromDomain(accounts))
}
