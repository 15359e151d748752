package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/postgres/generated"
	"github.com/duarte/gocontas/internal/usecase"
)

// ObligationRepository implements usecase.ObligationRepository.
type ObligationRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewObligationRepository creates a new ObligationRepository.
func NewObligationRepository(pool *pgxpool.Pool) *ObligationRepository {
	return &ObligationRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates an obligation inside the given transaction.
func (r *ObligationRepository) Create(ctx context.Context, tx usecase.Transaction, obligation *domain.Obligation) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.CreateObligation(ctx, generated.CreateObligationParams{
		ID:          obligation.ID,
		TenantID:    obligation.TenantID,
		CategoryID:  obligation.CategoryID,
		PartyID:     stringToPgText(obligation.PartyID),
		Description: obligation.Description,
		DocumentRef: obligation.DocumentRef,
		Amount:      decimalToNumeric(obligation.Amount),
		DueDate:     timeToPgTimestamptz(obligation.DueDate),
		Status:      string(obligation.Status),
		CreatedAt:   timeToPgTimestamptz(obligation.CreatedAt),
		UpdatedAt:   timeToPgTimestamptz(obligation.UpdatedAt),
	})
}

// GetByID retrieves an obligation by ID within the tenant.
func (r *ObligationRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Obligation, error) {
	row, err := r.queries.GetObligationByID(ctx, generated.GetObligationByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrObligationNotFound
		}

		return nil, err
	}

	return rowToObligation(row), nil
}

// GetByIDForUpdate retrieves an obligation with a FOR UPDATE lock.
func (r *ObligationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, tenantID, id string) (*domain.Obligation, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetObligationByIDForUpdate(ctx, generated.GetObligationByIDForUpdateParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrObligationNotFound
		}

		return nil, err
	}

	return rowToObligation(row), nil
}

// Update updates an obligation's editable fields.
func (r *ObligationRepository) Update(ctx context.Context, obligation *domain.Obligation) error {
	return r.queries.UpdateObligation(ctx, generated.UpdateObligationParams{
		TenantID:    obligation.TenantID,
		ID:          obligation.ID,
		CategoryID:  obligation.CategoryID,
		PartyID:     stringToPgText(obligation.PartyID),
		Description: obligation.Description,
		Amount:      decimalToNumeric(obligation.Amount),
		DueDate:     timeToPgTimestamptz(obligation.DueDate),
		UpdatedAt:   timeToPgTimestamptz(obligation.UpdatedAt),
	})
}

// UpdateStatus flips an obligation's status inside the given transaction.
func (r *ObligationRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, tenantID, id string, status domain.ObligationStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateObligationStatus(ctx, generated.UpdateObligationStatusParams{
		TenantID:  tenantID,
		ID:        id,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// Delete deletes an obligation.
func (r *ObligationRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.queries.DeleteObligation(ctx, generated.DeleteObligationParams{
		TenantID: tenantID,
		ID:       id,
	})
}

// List lists obligations matching the filter, ordered by due date.
func (r *ObligationRepository) List(ctx context.Context, tenantID string, filter usecase.ObligationFilter) ([]*domain.Obligation, error) {
	rows, err := r.queries.ListObligations(ctx, filterToListParams(tenantID, filter))
	if err != nil {
		return nil, err
	}

	obligations := make([]*domain.Obligation, 0, len(rows))
	for _, row := range rows {
		obligations = append(obligations, rowToObligation(row))
	}

	return obligations, nil
}

// SumAmount sums the amounts of obligations matching the filter.
func (r *ObligationRepository) SumAmount(ctx context.Context, tenantID string, filter usecase.ObligationFilter) (decimal.Decimal, error) {
	p := filterToListParams(tenantID, filter)

	total, err := r.queries.SumObligations(ctx, generated.SumObligationsParams{
		TenantID:  p.TenantID,
		Kind:      p.Kind,
		DueFrom:   p.DueFrom,
		DueTo:     p.DueTo,
		PartyName: p.PartyName,
		Status:    p.Status,
		Overdue:   p.Overdue,
		Today:     p.Today,
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// filterToListParams lowers the usecase filter onto the query parameters. The
// virtual Overdue status becomes the pending-and-past-due predicate.
func filterToListParams(tenantID string, filter usecase.ObligationFilter) generated.ListObligationsParams {
	p := generated.ListObligationsParams{
		TenantID:  tenantID,
		Kind:      string(filter.Kind),
		PartyName: filter.PartyName,
		RowLimit:  int32(filter.Limit),
	}

	if filter.DueFrom != nil {
		p.DueFrom = timeToPgTimestamptz(*filter.DueFrom)
	}
	if filter.DueTo != nil {
		p.DueTo = timeToPgTimestamptz(*filter.DueTo)
	}

	if filter.Status == domain.ObligationOverdue {
		p.Overdue = true
		p.Today = timeToPgTimestamptz(filter.Today)
	} else if filter.Status != "" {
		p.Status = string(filter.Status)
	}

	return p
}

func rowToObligation(row generated.Obligation) *domain.Obligation {
	return &domain.Obligation{
		ID:          row.ID,
		TenantID:    row.TenantID,
		CategoryID:  row.CategoryID,
		PartyID:     pgTextToString(row.PartyID),
		Description: row.Description,
		DocumentRef: row.DocumentRef,
		Amount:      numericToDecimal(row.Amount),
		DueDate:     row.DueDate.Time,
		Status:      domain.ObligationStatus(row.Status),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
