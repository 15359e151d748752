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

// PartyService defines the behavior needed by PartyHandler.
type PartyService interface {
	CreateParty(ctx context.Context, input usecase.CreatePartyInput) (*domain.Party, error)
	GetParty(ctx context.Context, tenantID, id string) (*domain.Party, error)
	UpdateParty(ctx context.Context, input usecase.UpdatePartyInput) (*domain.Party, error)
	DeleteParty(ctx context.Context, tenantID, id string) error
	ListParties(ctx context.Context, input usecase.ListPartiesInput) ([]*domain.Party, error)
}

// PartyHandler handles registrant HTTP requests.
type PartyHandler struct {
	partyUC PartyService
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(partyUC PartyService) *PartyHandler {
	return &PartyHandler{partyUC: partyUC}
}

// Create registers a new party.
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	party, err := h.partyUC.CreateParty(r.Context(), req.ToUseCaseInput(tenantID))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create party", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PartyFromDomain(party))
}

// Get retrieves a party by ID.
func (h *PartyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	party, err := h.partyUC.GetParty(r.Context(), tenantID, id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get party", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// Update edits a party.
func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	var req dto.UpdatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	party, err := h.partyUC.UpdateParty(r.Context(), req.ToUseCaseInput(tenantID, id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update party", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// Delete deletes a party unless obligations reference it.
func (h *PartyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	if err := h.partyUC.DeleteParty(r.Context(), tenantID, id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete party", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists parties ordered by name.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	parties, err := h.partyUC.ListParties(r.Context(), usecase.ListPartiesInput{
		TenantID:   middleware.TenantFromContext(r.Context()),
		NameFilter: r.URL.Query().Get("name"),
		Limit:      parseIntQuery(r, "limit", 0),
		Offset:     parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list parties", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PartiesFromDomain(parties))
}
