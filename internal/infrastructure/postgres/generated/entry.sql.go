package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createLedgerEntry = `-- name: CreateLedgerEntry :exec
INSERT INTO ledger_entries (id, tenant_id, cash_account_id, category_id, source_obligation_id, description, posted_date, amount, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateLedgerEntryParams struct {
	ID                 string             `json:"id"`
	TenantID           string             `json:"tenant_id"`
	CashAccountID      string             `json:"cash_account_id"`
	CategoryID         string             `json:"category_id"`
	SourceObligationID pgtype.Text        `json:"source_obligation_id"`
	Description        string             `json:"description"`
	PostedDate         pgtype.Timestamptz `json:"posted_date"`
	Amount             pgtype.Numeric     `json:"amount"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateLedgerEntry(ctx context.Context, arg CreateLedgerEntryParams) error {
	_, err := q.db.Exec(ctx, createLedgerEntry,
		arg.ID,
		arg.TenantID,
		arg.CashAccountID,
		arg.CategoryID,
		arg.SourceObligationID,
		arg.Description,
		arg.PostedDate,
		arg.Amount,
		arg.CreatedAt,
	)
	return err
}

const deleteLedgerEntry = `-- name: DeleteLedgerEntry :exec
DELETE FROM ledger_entries WHERE tenant_id = $1 AND id = $2
`

type DeleteLedgerEntryParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) DeleteLedgerEntry(ctx context.Context, arg DeleteLedgerEntryParams) error {
	_, err := q.db.Exec(ctx, deleteLedgerEntry, arg.TenantID, arg.ID)
	return err
}

const getLedgerEntryByID = `-- name: GetLedgerEntryByID :one
SELECT id, tenant_id, cash_account_id, category_id, source_obligation_id, description, posted_date, amount, created_at FROM ledger_entries
WHERE tenant_id = $1 AND id = $2
`

type GetLedgerEntryByIDParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) GetLedgerEntryByID(ctx context.Context, arg GetLedgerEntryByIDParams) (LedgerEntry, error) {
	row := q.db.QueryRow(ctx, getLedgerEntryByID, arg.TenantID, arg.ID)
	var i LedgerEntry
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.CashAccountID,
		&i.CategoryID,
		&i.SourceObligationID,
		&i.Description,
		&i.PostedDate,
		&i.Amount,
		&i.CreatedAt,
	)
	return i, err
}

const ledgerEntryExistsForCashAccount = `-- name: LedgerEntryExistsForCashAccount :one
SELECT EXISTS(
    SELECT 1 FROM ledger_entries WHERE tenant_id = $1 AND cash_account_id = $2
)
`

type LedgerEntryExistsForCashAccountParams struct {
	TenantID      string `json:"tenant_id"`
	CashAccountID string `json:"cash_account_id"`
}

func (q *Queries) LedgerEntryExistsForCashAccount(ctx context.Context, arg LedgerEntryExistsForCashAccountParams) (bool, error) {
	row := q.db.QueryRow(ctx, ledgerEntryExistsForCashAccount, arg.TenantID, arg.CashAccountID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listLedgerEntriesByPeriod = `-- name: ListLedgerEntriesByPeriod :many
SELECT id, tenant_id, cash_account_id, category_id, source_obligation_id, description, posted_date, amount, created_at FROM ledger_entries
WHERE tenant_id = $1
  AND ($2::text = '' OR cash_account_id = $2)
  AND posted_date >= $3
  AND posted_date <= $4
ORDER BY posted_date DESC, created_at DESC
`

type ListLedgerEntriesByPeriodParams struct {
	TenantID      string             `json:"tenant_id"`
	CashAccountID string             `json:"cash_account_id"`
	PostedFrom    pgtype.Timestamptz `json:"posted_from"`
	PostedTo      pgtype.Timestamptz `json:"posted_to"`
}

func (q *Queries) ListLedgerEntriesByPeriod(ctx context.Context, arg ListLedgerEntriesByPeriodParams) ([]LedgerEntry, error) {
	rows, err := q.db.Query(ctx, listLedgerEntriesByPeriod,
		arg.TenantID,
		arg.CashAccountID,
		arg.PostedFrom,
		arg.PostedTo,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []LedgerEntry{}
	for rows.Next() {
		var i LedgerEntry
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.CashAccountID,
			&i.CategoryID,
			&i.SourceObligationID,
			&i.Description,
			&i.PostedDate,
			&i.Amount,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecentSettlements = `-- name: ListRecentSettlements :many
SELECT id, tenant_id, cash_account_id, category_id, source_obligation_id, description, posted_date, amount, created_at FROM ledger_entries
WHERE tenant_id = $1 AND source_obligation_id IS NOT NULL
ORDER BY created_at DESC
LIMIT $2
`

type ListRecentSettlementsParams struct {
	TenantID string `json:"tenant_id"`
	Limit    int32  `json:"limit"`
}

func (q *Queries) ListRecentSettlements(ctx context.Context, arg ListRecentSettlementsParams) ([]LedgerEntry, error) {
	rows, err := q.db.Query(ctx, listRecentSettlements, arg.TenantID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []LedgerEntry{}
	for rows.Next() {
		var i LedgerEntry
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.CashAccountID,
			&i.CategoryID,
			&i.SourceObligationID,
			&i.Description,
			&i.PostedDate,
			&i.Amount,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumLedgerCreditsPeriod = `-- name: SumLedgerCreditsPeriod :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS total FROM ledger_entries
WHERE tenant_id = $1
  AND ($2::text = '' OR cash_account_id = $2)
  AND posted_date >= $3
  AND posted_date <= $4
  AND amount > 0
`

type SumLedgerCreditsPeriodParams struct {
	TenantID      string             `json:"tenant_id"`
	CashAccountID string             `json:"cash_account_id"`
	PostedFrom    pgtype.Timestamptz `json:"posted_from"`
	PostedTo      pgtype.Timestamptz `json:"posted_to"`
}

func (q *Queries) SumLedgerCreditsPeriod(ctx context.Context, arg SumLedgerCreditsPeriodParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumLedgerCreditsPeriod,
		arg.TenantID,
		arg.CashAccountID,
		arg.PostedFrom,
		arg.PostedTo,
	)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}

const sumLedgerDebitsPeriod = `-- name: SumLedgerDebitsPeriod :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS total FROM ledger_entries
WHERE tenant_id = $1
  AND ($2::text = '' OR cash_account_id = $2)
  AND posted_date >= $3
  AND posted_date <= $4
  AND amount < 0
`

type SumLedgerDebitsPeriodParams struct {
	TenantID      string             `json:"tenant_id"`
	CashAccountID string             `json:"cash_account_id"`
	PostedFrom    pgtype.Timestamptz `json:"posted_from"`
	PostedTo      pgtype.Timestamptz `json:"posted_to"`
}

func (q *Queries) SumLedgerDebitsPeriod(ctx context.Context, arg SumLedgerDebitsPeriodParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumLedgerDebitsPeriod,
		arg.TenantID,
		arg.CashAccountID,
		arg.PostedFrom,
		arg.PostedTo,
	)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}

const sumLedgerEntriesBefore = `-- name: SumLedgerEntriesBefore :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS total FROM ledger_entries
WHERE tenant_id = $1
  AND ($2::text = '' OR cash_account_id = $2)
  AND posted_date < $3
`

type SumLedgerEntriesBeforeParams struct {
	TenantID      string             `json:"tenant_id"`
	CashAccountID string             `json:"cash_account_id"`
	PostedBefore  pgtype.Timestamptz `json:"posted_before"`
}

func (q *Queries) SumLedgerEntriesBefore(ctx context.Context, arg SumLedgerEntriesBeforeParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumLedgerEntriesBefore, arg.TenantID, arg.CashAccountID, arg.PostedBefore)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}

const sumLedgerEntriesPeriod = `-- name: SumLedgerEntriesPeriod :one
SELECT COALESCE(SUM(amount), 0)::NUMERIC AS total FROM ledger_entries
WHERE tenant_id = $1
  AND ($2::text = '' OR cash_account_id = $2)
  AND posted_date >= $3
  AND posted_date <= $4
`

type SumLedgerEntriesPeriodParams struct {
	TenantID      string             `json:"tenant_id"`
	CashAccountID string             `json:"cash_account_id"`
	PostedFrom    pgtype.Timestamptz `json:"posted_from"`
	PostedTo      pgtype.Timestamptz `json:"posted_to"`
}

func (q *Queries) SumLedgerEntriesPeriod(ctx context.Context, arg SumLedgerEntriesPeriodParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumLedgerEntriesPeriod,
		arg.TenantID,
		arg.CashAccountID,
		arg.PostedFrom,
		arg.PostedTo,
	)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}
