package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/postgres/generated"
)

// CashAccountRepository implements usecase.CashAccountRepository.
type CashAccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCashAccountRepository creates a new CashAccountRepository.
func NewCashAccountRepository(pool *pgxpool.Pool) *CashAccountRepository {
	return &CashAccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new cash account.
func (r *CashAccountRepository) Create(ctx context.Context, account *domain.CashAccount) error {
	return r.queries.CreateCashAccount(ctx, generated.CreateCashAccountParams{
		ID:             account.ID,
		TenantID:       account.TenantID,
		Name:           account.Name,
		OpeningBalance: decimalToNumeric(account.OpeningBalance),
		CreatedAt:      timeToPgTimestamptz(account.CreatedAt),
		UpdatedAt:      timeToPgTimestamptz(account.UpdatedAt),
	})
}

// GetByID retrieves a cash account by ID within the tenant.
func (r *CashAccountRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.CashAccount, error) {
	row, err := r.queries.GetCashAccountByID(ctx, generated.GetCashAccountByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCashAccountNotFound
		}

		return nil, err
	}

	return rowToCashAccount(row), nil
}

// Update updates a cash account.
func (r *CashAccountRepository) Update(ctx context.Context, account *domain.CashAccount) error {
	return r.queries.UpdateCashAccount(ctx, generated.UpdateCashAccountParams{
		TenantID:       account.TenantID,
		ID:             account.ID,
		Name:           account.Name,
		OpeningBalance: decimalToNumeric(account.OpeningBalance),
		UpdatedAt:      timeToPgTimestamptz(account.UpdatedAt),
	})
}

// Delete deletes a cash account.
func (r *CashAccountRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.queries.DeleteCashAccount(ctx, generated.DeleteCashAccountParams{
		TenantID: tenantID,
		ID:       id,
	})
}

// List lists the tenant's cash accounts ordered by name.
func (r *CashAccountRepository) List(ctx context.Context, tenantID string) ([]*domain.CashAccount, error) {
	rows, err := r.queries.ListCashAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.CashAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, rowToCashAccount(row))
	}

	return accounts, nil
}

func rowToCashAccount(row generated.CashAccount) *domain.CashAccount {
	return &domain.CashAccount{
		ID:             row.ID,
		TenantID:       row.TenantID,
		Name:           row.Name,
		OpeningBalance: numericToDecimal(row.OpeningBalance),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func stringToPgText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func pgTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}
