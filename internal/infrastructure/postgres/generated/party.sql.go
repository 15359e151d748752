package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countParties = `-- name: CountParties :one
SELECT COUNT(*) FROM parties WHERE tenant_id = $1
`

func (q *Queries) CountParties(ctx context.Context, tenantID string) (int64, error) {
	row := q.db.QueryRow(ctx, countParties, tenantID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const countPartiesByStatus = `-- name: CountPartiesByStatus :one
SELECT COUNT(*) FROM parties WHERE tenant_id = $1 AND status = $2
`

type CountPartiesByStatusParams struct {
	TenantID string `json:"tenant_id"`
	Status   string `json:"status"`
}

func (q *Queries) CountPartiesByStatus(ctx context.Context, arg CountPartiesByStatusParams) (int64, error) {
	row := q.db.QueryRow(ctx, countPartiesByStatus, arg.TenantID, arg.Status)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createParty = `-- name: CreateParty :exec
INSERT INTO parties (id, tenant_id, registration_number, name, tax_id, email, phone, city, state, status, admission_date, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

type CreatePartyParams struct {
	ID                 string             `json:"id"`
	TenantID           string             `json:"tenant_id"`
	RegistrationNumber int64              `json:"registration_number"`
	Name               string             `json:"name"`
	TaxID              string             `json:"tax_id"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Status             string             `json:"status"`
	AdmissionDate      pgtype.Timestamptz `json:"admission_date"`
	Notes              string             `json:"notes"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateParty(ctx context.Context, arg CreatePartyParams) error {
	_, err := q.db.Exec(ctx, createParty,
		arg.ID,
		arg.TenantID,
		arg.RegistrationNumber,
		arg.Name,
		arg.TaxID,
		arg.Email,
		arg.Phone,
		arg.City,
		arg.State,
		arg.Status,
		arg.AdmissionDate,
		arg.Notes,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteParty = `-- name: DeleteParty :exec
DELETE FROM parties WHERE tenant_id = $1 AND id = $2
`

type DeletePartyParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) DeleteParty(ctx context.Context, arg DeletePartyParams) error {
	_, err := q.db.Exec(ctx, deleteParty, arg.TenantID, arg.ID)
	return err
}

const getPartyByID = `-- name: GetPartyByID :one
SELECT id, tenant_id, registration_number, name, tax_id, email, phone, city, state, status, admission_date, notes, created_at, updated_at FROM parties
WHERE tenant_id = $1 AND id = $2
`

type GetPartyByIDParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) GetPartyByID(ctx context.Context, arg GetPartyByIDParams) (Party, error) {
	row := q.db.QueryRow(ctx, getPartyByID, arg.TenantID, arg.ID)
	var i Party
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.RegistrationNumber,
		&i.Name,
		&i.TaxID,
		&i.Email,
		&i.Phone,
		&i.City,
		&i.State,
		&i.Status,
		&i.AdmissionDate,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listParties = `-- name: ListParties :many
SELECT id, tenant_id, registration_number, name, tax_id, email, phone, city, state, status, admission_date, notes, created_at, updated_at FROM parties
WHERE tenant_id = $1
  AND ($2::text = '' OR name ILIKE '%' || $2 || '%')
ORDER BY name
LIMIT $3 OFFSET $4
`

type ListPartiesParams struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Limit    int32  `json:"limit"`
	Offset   int32  `json:"offset"`
}

func (q *Queries) ListParties(ctx context.Context, arg ListPartiesParams) ([]Party, error) {
	rows, err := q.db.Query(ctx, listParties,
		arg.TenantID,
		arg.Name,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Party{}
	for rows.Next() {
		var i Party
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.RegistrationNumber,
			&i.Name,
			&i.TaxID,
			&i.Email,
			&i.Phone,
			&i.City,
			&i.State,
			&i.Status,
			&i.AdmissionDate,
			&i.Notes,
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

const partyHasObligations = `-- name: PartyHasObligations :one
SELECT EXISTS(
    SELECT 1 FROM obligations WHERE tenant_id = $1 AND party_id = $2
)
`

type PartyHasObligationsParams struct {
	TenantID string      `json:"tenant_id"`
	PartyID  pgtype.Text `json:"party_id"`
}

func (q *Queries) PartyHasObligations(ctx context.Context, arg PartyHasObligationsParams) (bool, error) {
	row := q.db.QueryRow(ctx, partyHasObligations, arg.TenantID, arg.PartyID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const updateParty = `-- name: UpdateParty :exec
UPDATE parties
SET registration_number = $3, name = $4, tax_id = $5, email = $6, phone = $7, city = $8, state = $9, status = $10, admission_date = $11, notes = $12, updated_at = $13
WHERE tenant_id = $1 AND id = $2
`

type UpdatePartyParams struct {
	TenantID           string             `json:"tenant_id"`
	ID                 string             `json:"id"`
	RegistrationNumber int64              `json:"registration_number"`
	Name               string             `json:"name"`
	TaxID              string             `json:"tax_id"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Status             string             `json:"status"`
	AdmissionDate      pgtype.Timestamptz `json:"admission_date"`
	Notes              string             `json:"notes"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateParty(ctx context.Context, arg UpdatePartyParams) error {
	_, err := q.db.Exec(ctx, updateParty,
		arg.TenantID,
		arg.ID,
		arg.RegistrationNumber,
		arg.Name,
		arg.TaxID,
		arg.Email,
		arg.Phone,
		arg.City,
		arg.State,
		arg.Status,
		arg.AdmissionDate,
		arg.Notes,
		arg.UpdatedAt,
	)
	return err
}
