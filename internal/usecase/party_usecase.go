package usecase

import (
	"context"
	"time"

	"github.com/duarte/gocontas/internal/domain"
)

// PartyUseCase handles registrant business logic.
type PartyUseCase struct {
	partyRepo PartyRepository
	idGen     IDGenerator
}

// NewPartyUseCase creates a new PartyUseCase.
func NewPartyUseCase(partyRepo PartyRepository, idGen IDGenerator) *PartyUseCase {
	return &PartyUseCase{
		partyRepo: partyRepo,
		idGen:     idGen,
	}
}

// CreatePartyInput represents input for registering a party.
type CreatePartyInput struct {
	TenantID           string
	RegistrationNumber int64
	Name               string
	TaxID              string
	Email              string
	Phone              string
	City               string
	State              string
	AdmissionDate      time.Time
	Notes              string
}

// CreateParty registers a new party. Uniqueness of registration number and
// tax id within the tenant is enforced by the store; a violation surfaces as
// ErrDuplicateParty.
func (uc *PartyUseCase) CreateParty(ctx context.Context, input CreatePartyInput) (*domain.Party, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingDescription
	}

	now := time.Now().UTC()
	party := &domain.Party{
		ID:                 uc.idGen.Generate(),
		TenantID:           input.TenantID,
		RegistrationNumber: input.RegistrationNumber,
		Name:               input.Name,
		TaxID:              input.TaxID,
		Email:              input.Email,
		Phone:              input.Phone,
		City:               input.City,
		State:              input.State,
		Status:             domain.PartyActive,
		AdmissionDate:      input.AdmissionDate,
		Notes:              input.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by id within the tenant.
func (uc *PartyUseCase) GetParty(ctx context.Context, tenantID, id string) (*domain.Party, error) {
	return uc.partyRepo.GetByID(ctx, tenantID, id)
}

// UpdatePartyInput represents input for editing a party.
type UpdatePartyInput struct {
	TenantID           string
	ID                 string
	RegistrationNumber int64
	Name               string
	TaxID              string
	Email              string
	Phone              string
	City               string
	State              string
	Status             domain.PartyStatus
	AdmissionDate      time.Time
	Notes              string
}

// UpdateParty edits a party.
func (uc *PartyUseCase) UpdateParty(ctx context.Context, input UpdatePartyInput) (*domain.Party, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingDescription
	}

	party, err := uc.partyRepo.GetByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	party.RegistrationNumber = input.RegistrationNumber
	party.Name = input.Name
	party.TaxID = input.TaxID
	party.Email = input.Email
	party.Phone = input.Phone
	party.City = input.City
	party.State = input.State
	party.Status = input.Status
	party.AdmissionDate = input.AdmissionDate
	party.Notes = input.Notes
	party.UpdatedAt = time.Now().UTC()

	if err := uc.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// DeleteParty deletes a party unless obligations reference it.
func (uc *PartyUseCase) DeleteParty(ctx context.Context, tenantID, id string) error {
	if _, err := uc.partyRepo.GetByID(ctx, tenantID, id); err != nil {
		return err
	}

	inUse, err := uc.partyRepo.HasObligations(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrPartyInUse
	}

	return uc.partyRepo.Delete(ctx, tenantID, id)
}

// ListPartiesInput represents input for listing parties.
type ListPartiesInput struct {
	TenantID   string
	NameFilter string
	Limit      int
	Offset     int
}

// ListParties lists parties ordered by name, optionally filtered by a
// case-insensitive name substring.
func (uc *PartyUseCase) ListParties(ctx context.Context, input ListPartiesInput) ([]*domain.Party, error) {
	if input.Limit <= 0 {
		input.Limit = 50
	}
	if input.Limit > 200 {
		input.Limit = 200
	}

	return uc.partyRepo.List(ctx, input.TenantID, input.NameFilter, input.Limit, input.Offset)
}
