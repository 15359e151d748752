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

// LedgerEntryRepository implements usecase.LedgerEntryRepository.
type LedgerEntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewLedgerEntryRepository creates a new LedgerEntryRepository.
func NewLedgerEntryRepository(pool *pgxpool.Pool) *LedgerEntryRepository {
	return &LedgerEntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create posts a ledger entry outside any transaction.
func (r *LedgerEntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	return r.queries.CreateLedgerEntry(ctx, entryToCreateParams(entry))
}

// CreateTx posts a ledger entry inside the given transaction.
func (r *LedgerEntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.CreateLedgerEntry(ctx, entryToCreateParams(entry))
}

// GetByID retrieves a ledger entry by ID within the tenant.
func (r *LedgerEntryRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.LedgerEntry, error) {
	row, err := r.queries.GetLedgerEntryByID(ctx, generated.GetLedgerEntryByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToLedgerEntry(row), nil
}

// DeleteTx deletes a ledger entry inside the given transaction.
func (r *LedgerEntryRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, tenantID, id string) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteLedgerEntry(ctx, generated.DeleteLedgerEntryParams{
		TenantID: tenantID,
		ID:       id,
	})
}

// ListByPeriod lists entries posted in [from, to], newest first. An empty
// cashAccountID means all accounts of the tenant.
func (r *LedgerEntryRepository) ListByPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListLedgerEntriesByPeriod(ctx, generated.ListLedgerEntriesByPeriodParams{
		TenantID:      tenantID,
		CashAccountID: cashAccountID,
		PostedFrom:    timeToPgTimestamptz(from),
		PostedTo:      timeToPgTimestamptz(to),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToLedgerEntry(row))
	}

	return entries, nil
}

// SumBefore sums entries posted strictly before the given date.
func (r *LedgerEntryRepository) SumBefore(ctx context.Context, tenantID, cashAccountID string, before time.Time) (decimal.Decimal, error) {
	total, err := r.queries.SumLedgerEntriesBefore(ctx, generated.SumLedgerEntriesBeforeParams{
		TenantID:      tenantID,
		CashAccountID: cashAccountID,
		PostedBefore:  timeToPgTimestamptz(before),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// SumPeriod sums entries posted in [from, to].
func (r *LedgerEntryRepository) SumPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.queries.SumLedgerEntriesPeriod(ctx, generated.SumLedgerEntriesPeriodParams{
		TenantID:      tenantID,
		CashAccountID: cashAccountID,
		PostedFrom:    timeToPgTimestamptz(from),
		PostedTo:      timeToPgTimestamptz(to),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// SumCreditsPeriod sums positive entries posted in [from, to].
func (r *LedgerEntryRepository) SumCreditsPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.queries.SumLedgerCreditsPeriod(ctx, generated.SumLedgerCreditsPeriodParams{
		TenantID:      tenantID,
		CashAccountID: cashAccountID,
		PostedFrom:    timeToPgTimestamptz(from),
		PostedTo:      timeToPgTimestamptz(to),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// SumDebitsPeriod sums negative entries posted in [from, to].
func (r *LedgerEntryRepository) SumDebitsPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.queries.SumLedgerDebitsPeriod(ctx, generated.SumLedgerDebitsPeriodParams{
		TenantID:      tenantID,
		CashAccountID: cashAccountID,
		PostedFrom:    timeToPgTimestamptz(from),
		PostedTo:      timeToPgTimestamptz(to),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

// ListRecentSettlements lists the most recently posted settlement entries.
func (r *LedgerEntryRepository) ListRecentSettlements(ctx context.Context, tenantID string, limit int) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListRecentSettlements(ctx, generated.ListRecentSettlementsParams{
		TenantID: tenantID,
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToLedgerEntry(row))
	}

	return entries, nil
}

// ExistsForCashAccount reports whether any entry references the cash account.
func (r *LedgerEntryRepository) ExistsForCashAccount(ctx context.Context, tenantID, cashAccountID string) (bool, error) {
	return r.queries.LedgerEntryExistsForCashAccount(ctx, generated.LedgerEntryExistsForCashAccountParams{
		TenantID:      tenantID,
		CashAccountID: cashAccountID,
	})
}

func entryToCreateParams(entry *domain.LedgerEntry) generated.CreateLedgerEntryParams {
	return generated.CreateLedgerEntryParams{
		ID:                 entry.ID,
		TenantID:           entry.TenantID,
		CashAccountID:      entry.CashAccountID,
		CategoryID:         entry.CategoryID,
		SourceObligationID: stringToPgText(entry.SourceObligationID),
		Description:        entry.Description,
		PostedDate:         timeToPgTimestamptz(entry.PostedDate),
		Amount:             decimalToNumeric(entry.Amount),
		CreatedAt:          timeToPgTimestamptz(entry.CreatedAt),
	}
}

func rowToLedgerEntry(row generated.LedgerEntry) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:                 row.ID,
		TenantID:           row.TenantID,
		CashAccountID:      row.CashAccountID,
		CategoryID:         row.CategoryID,
		SourceObligationID: pgTextToString(row.SourceObligationID),
		Description:        row.Description,
		PostedDate:         row.PostedDate.Time,
		Amount:             numericToDecimal(row.Amount),
		CreatedAt:          row.CreatedAt.Time,
	}
}
