package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createCashAccount = `-- name: CreateCashAccount :exec
INSERT INTO cash_accounts (id, tenant_id, name, opening_balance, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateCashAccountParams struct {
	ID             string             `json:"id"`
	TenantID       string             `json:"tenant_id"`
	Name           string             `json:"name"`
	OpeningBalance pgtype.Numeric     `json:"opening_balance"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateCashAccount(ctx context.Context, arg CreateCashAccountParams) error {
	_, err := q.db.Exec(ctx, createCashAccount,
		arg.ID,
		arg.TenantID,
		arg.Name,
		arg.OpeningBalance,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteCashAccount = `-- name: DeleteCashAccount :exec
DELETE FROM cash_accounts WHERE tenant_id = $1 AND id = $2
`

type DeleteCashAccountParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) DeleteCashAccount(ctx context.Context, arg DeleteCashAccountParams) error {
	_, err := q.db.Exec(ctx, deleteCashAccount, arg.TenantID, arg.ID)
	return err
}

const getCashAccountByID = `-- name: GetCashAccountByID :one
SELECT id, tenant_id, name, opening_balance, created_at, updated_at FROM cash_accounts
WHERE tenant_id = $1 AND id = $2
`

type GetCashAccountByIDParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) GetCashAccountByID(ctx context.Context, arg GetCashAccountByIDParams) (CashAccount, error) {
	row := q.db.QueryRow(ctx, getCashAccountByID, arg.TenantID, arg.ID)
	var i CashAccount
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.Name,
		&i.OpeningBalance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCashAccounts = `-- name: ListCashAccounts :many
SELECT id, tenant_id, name, opening_balance, created_at, updated_at FROM cash_accounts
WHERE tenant_id = $1
ORDER BY name
`

func (q *Queries) ListCashAccounts(ctx context.Context, tenantID string) ([]CashAccount, error) {
	rows, err := q.db.Query(ctx, listCashAccounts, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CashAccount{}
	for rows.Next() {
		var i CashAccount
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.Name,
			&i.OpeningBalance,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateCashAccount = `-- name: UpdateCashAccount :exec
UPDATE cash_accounts
SET name = $3, opening_balance = $4, updated_at = $5
WHERE tenant_id = $1 AND id = $2
`

type UpdateCashAccountParams struct {
	TenantID       string             `json:"tenant_id"`
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	OpeningBalance pgtype.Numeric     `json:"opening_balance"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateCashAccount(ctx context.Context, arg UpdateCashAccountParams) error {
	_, err := q.db.Exec(ctx, updateCashAccount,
		arg.TenantID,
		arg.ID,
		arg.Name,
		arg.OpeningBalance,
		arg.UpdatedAt,
	)
	return err
}
