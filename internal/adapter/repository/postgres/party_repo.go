package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/postgres/generated"
)

const pgErrUniqueViolation = "23505"

// PartyRepository implements usecase.PartyRepository.
type PartyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new party. Per-tenant unique constraints on registration
// number and tax id surface as ErrDuplicateParty.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	err := r.queries.CreateParty(ctx, generated.CreatePartyParams{
		ID:                 party.ID,
		TenantID:           party.TenantID,
		RegistrationNumber: party.RegistrationNumber,
		Name:               party.Name,
		TaxID:              party.TaxID,
		Email:              party.Email,
		Phone:              party.Phone,
		City:               party.City,
		State:              party.State,
		Status:             string(party.Status),
		AdmissionDate:      timeToPgTimestamptz(party.AdmissionDate),
		Notes:              party.Notes,
		CreatedAt:          timeToPgTimestamptz(party.CreatedAt),
		UpdatedAt:          timeToPgTimestamptz(party.UpdatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateParty
		}

		return err
	}

	return nil
}

// GetByID retrieves a party by ID within the tenant.
func (r *PartyRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Party, error) {
	row, err := r.queries.GetPartyByID(ctx, generated.GetPartyByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return rowToParty(row), nil
}

// Update updates a party.
func (r *PartyRepository) Update(ctx context.Context, party *domain.Party) error {
	err := r.queries.UpdateParty(ctx, generated.UpdatePartyParams{
		TenantID:           party.TenantID,
		ID:                 party.ID,
		RegistrationNumber: party.RegistrationNumber,
		Name:               party.Name,
		TaxID:              party.TaxID,
		Email:              party.Email,
		Phone:              party.Phone,
		City:               party.City,
		State:              party.State,
		Status:             string(party.Status),
		AdmissionDate:      timeToPgTimestamptz(party.AdmissionDate),
		Notes:              party.Notes,
		UpdatedAt:          timeToPgTimestamptz(party.UpdatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrDuplicateParty
		}

		return err
	}

	return nil
}

// Delete deletes a party.
func (r *PartyRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.queries.DeleteParty(ctx, generated.DeletePartyParams{
		TenantID: tenantID,
		ID:       id,
	})
}

// List lists parties ordered by name, optionally filtered by a
// case-insensitive name substring.
func (r *PartyRepository) List(ctx context.Context, tenantID, nameFilter string, limit, offset int) ([]*domain.Party, error) {
	rows, err := r.queries.ListParties(ctx, generated.ListPartiesParams{
		TenantID: tenantID,
		Name:     nameFilter,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		return nil, err
	}

	parties := make([]*domain.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, rowToParty(row))
	}

	return parties, nil
}

// Count counts the tenant's parties.
func (r *PartyRepository) Count(ctx context.Context, tenantID string) (int64, error) {
	return r.queries.CountParties(ctx, tenantID)
}

// CountByStatus counts the tenant's parties with the given status.
func (r *PartyRepository) CountByStatus(ctx context.Context, tenantID string, status domain.PartyStatus) (int64, error) {
	return r.queries.CountPartiesByStatus(ctx, generated.CountPartiesByStatusParams{
		TenantID: tenantID,
		Status:   string(status),
	})
}

// HasObligations reports whether any obligation references the party.
func (r *PartyRepository) HasObligations(ctx context.Context, tenantID, id string) (bool, error) {
	return r.queries.PartyHasObligations(ctx, generated.PartyHasObligationsParams{
		TenantID: tenantID,
		PartyID:  stringToPgText(id),
	})
}

func rowToParty(row generated.Party) *domain.Party {
	return &domain.Party{
		ID:                 row.ID,
		TenantID:           row.TenantID,
		RegistrationNumber: row.RegistrationNumber,
		Name:               row.Name,
		TaxID:              row.TaxID,
		Email:              row.Email,
		Phone:              row.Phone,
		City:               row.City,
		State:              row.State,
		Status:             domain.PartyStatus(row.Status),
		AdmissionDate:      row.AdmissionDate.Time,
		Notes:              row.Notes,
		CreatedAt:          row.CreatedAt.Time,
		UpdatedAt:          row.UpdatedAt.Time,
	}
}
