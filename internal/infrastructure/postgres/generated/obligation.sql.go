package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createObligation = `-- name: CreateObligation :exec
INSERT INTO obligations (id, tenant_id, category_id, party_id, description, document_ref, amount, due_date, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

type CreateObligationParams struct {
	ID          string             `json:"id"`
	TenantID    string             `json:"tenant_id"`
	CategoryID  string             `json:"category_id"`
	PartyID     pgtype.Text        `json:"party_id"`
	Description string             `json:"description"`
	DocumentRef string             `json:"document_ref"`
	Amount      pgtype.Numeric     `json:"amount"`
	DueDate     pgtype.Timestamptz `json:"due_date"`
	Status      string             `json:"status"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateObligation(ctx context.Context, arg CreateObligationParams) error {
	_, err := q.db.Exec(ctx, createObligation,
		arg.ID,
		arg.TenantID,
		arg.CategoryID,
		arg.PartyID,
		arg.Description,
		arg.DocumentRef,
		arg.Amount,
		arg.DueDate,
		arg.Status,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteObligation = `-- name: DeleteObligation :exec
DELETE FROM obligations WHERE tenant_id = $1 AND id = $2
`

type DeleteObligationParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) DeleteObligation(ctx context.Context, arg DeleteObligationParams) error {
	_, err := q.db.Exec(ctx, deleteObligation, arg.TenantID, arg.ID)
	return err
}

const getObligationByID = `-- name: GetObligationByID :one
SELECT id, tenant_id, category_id, party_id, description, document_ref, amount, due_date, status, created_at, updated_at FROM obligations
WHERE tenant_id = $1 AND id = $2
`

type GetObligationByIDParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) GetObligationByID(ctx context.Context, arg GetObligationByIDParams) (Obligation, error) {
	row := q.db.QueryRow(ctx, getObligationByID, arg.TenantID, arg.ID)
	var i Obligation
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.CategoryID,
		&i.PartyID,
		&i.Description,
		&i.DocumentRef,
		&i.Amount,
		&i.DueDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getObligationByIDForUpdate = `-- name: GetObligationByIDForUpdate :one
SELECT id, tenant_id, category_id, party_id, description, document_ref, amount, due_date, status, created_at, updated_at FROM obligations
WHERE tenant_id = $1 AND id = $2
FOR UPDATE
`

type GetObligationByIDForUpdateParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) GetObligationByIDForUpdate(ctx context.Context, arg GetObligationByIDForUpdateParams) (Obligation, error) {
	row := q.db.QueryRow(ctx, getObligationByIDForUpdate, arg.TenantID, arg.ID)
	var i Obligation
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.CategoryID,
		&i.PartyID,
		&i.Description,
		&i.DocumentRef,
		&i.Amount,
		&i.DueDate,
		&i.Status,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listObligations = `-- name: ListObligations :many
SELECT o.id, o.tenant_id, o.category_id, o.party_id, o.description, o.document_ref, o.amount, o.due_date, o.status, o.created_at, o.updated_at FROM obligations o
JOIN categories c ON c.tenant_id = o.tenant_id AND c.id = o.category_id
LEFT JOIN parties p ON p.tenant_id = o.tenant_id AND p.id = o.party_id
WHERE o.tenant_id = $1
  AND ($2::text = '' OR c.kind = $2)
  AND ($3::timestamptz IS NULL OR o.due_date >= $3)
  AND ($4::timestamptz IS NULL OR o.due_date <= $4)
  AND ($5::text = '' OR p.name ILIKE '%' || $5 || '%')
  AND ($6::text = '' OR o.status = $6)
  AND (NOT $7::bool OR (o.status = 'PENDING' AND o.due_date < $8))
ORDER BY o.due_date, o.id
LIMIT NULLIF($9::int, 0)
`

type ListObligationsParams struct {
	TenantID  string             `json:"tenant_id"`
	Kind      string             `json:"kind"`
	DueFrom   pgtype.Timestamptz `json:"due_from"`
	DueTo     pgtype.Timestamptz `json:"due_to"`
	PartyName string             `json:"party_name"`
	Status    string             `json:"status"`
	Overdue   bool               `json:"overdue"`
	Today     pgtype.Timestamptz `json:"today"`
	RowLimit  int32              `json:"row_limit"`
}

func (q *Queries) ListObligations(ctx context.Context, arg ListObligationsParams) ([]Obligation, error) {
	rows, err := q.db.Query(ctx, listObligations,
		arg.TenantID,
		arg.Kind,
		arg.DueFrom,
		arg.DueTo,
		arg.PartyName,
		arg.Status,
		arg.Overdue,
		arg.Today,
		arg.RowLimit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Obligation{}
	for rows.Next() {
		var i Obligation
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.CategoryID,
			&i.PartyID,
			&i.Description,
			&i.DocumentRef,
			&i.Amount,
			&i.DueDate,
			&i.Status,
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

const sumObligations = `-- name: SumObligations :one
SELECT COALESCE(SUM(o.amount), 0)::NUMERIC AS total FROM obligations o
JOIN categories c ON c.tenant_id = o.tenant_id AND c.id = o.category_id
LEFT JOIN parties p ON p.tenant_id = o.tenant_id AND p.id = o.party_id
WHERE o.tenant_id = $1
  AND ($2::text = '' OR c.kind = $2)
  AND ($3::timestamptz IS NULL OR o.due_date >= $3)
  AND ($4::timestamptz IS NULL OR o.due_date <= $4)
  AND ($5::text = '' OR p.name ILIKE '%' || $5 || '%')
  AND ($6::text = '' OR o.status = $6)
  AND (NOT $7::bool OR (o.status = 'PENDING' AND o.due_date < $8))
`

type SumObligationsParams struct {
	TenantID  string             `json:"tenant_id"`
	Kind      string             `json:"kind"`
	DueFrom   pgtype.Timestamptz `json:"due_from"`
	DueTo     pgtype.Timestamptz `json:"due_to"`
	PartyName string             `json:"party_name"`
	Status    string             `json:"status"`
	Overdue   bool               `json:"overdue"`
	Today     pgtype.Timestamptz `json:"today"`
}

func (q *Queries) SumObligations(ctx context.Context, arg SumObligationsParams) (pgtype.Numeric, error) {
	row := q.db.QueryRow(ctx, sumObligations,
		arg.TenantID,
		arg.Kind,
		arg.DueFrom,
		arg.DueTo,
		arg.PartyName,
		arg.Status,
		arg.Overdue,
		arg.Today,
	)
	var total pgtype.Numeric
	err := row.Scan(&total)
	return total, err
}

const updateObligation = `-- name: UpdateObligation :exec
UPDATE obligations
SET category_id = $3, party_id = $4, description = $5, amount = $6, due_date = $7, updated_at = $8
WHERE tenant_id = $1 AND id = $2
`

type UpdateObligationParams struct {
	TenantID    string             `json:"tenant_id"`
	ID          string             `json:"id"`
	CategoryID  string             `json:"category_id"`
	PartyID     pgtype.Text        `json:"party_id"`
	Description string             `json:"description"`
	Amount      pgtype.Numeric     `json:"amount"`
	DueDate     pgtype.Timestamptz `json:"due_date"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateObligation(ctx context.Context, arg UpdateObligationParams) error {
	_, err := q.db.Exec(ctx, updateObligation,
		arg.TenantID,
		arg.ID,
		arg.CategoryID,
		arg.PartyID,
		arg.Description,
		arg.Amount,
		arg.DueDate,
		arg.UpdatedAt,
	)
	return err
}

const updateObligationStatus = `-- name: UpdateObligationStatus :exec
UPDATE obligations
SET status = $3, updated_at = $4
WHERE tenant_id = $1 AND id = $2
`

type UpdateObligationStatusParams struct {
	TenantID  string             `json:"tenant_id"`
	ID        string             `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateObligationStatus(ctx context.Context, arg UpdateObligationStatusParams) error {
	_, err := q.db.Exec(ctx, updateObligationStatus,
		arg.TenantID,
		arg.ID,
		arg.Status,
		arg.UpdatedAt,
	)
	return err
}
