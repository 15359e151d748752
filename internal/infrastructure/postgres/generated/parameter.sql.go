package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const getParameter = `-- name: GetParameter :one
SELECT tenant_id, key, value, updated_at FROM parameters
WHERE tenant_id = $1 AND key = $2
`

type GetParameterParams struct {
	TenantID string `json:"tenant_id"`
	Key      string `json:"key"`
}

func (q *Queries) GetParameter(ctx context.Context, arg GetParameterParams) (Parameter, error) {
	row := q.db.QueryRow(ctx, getParameter, arg.TenantID, arg.Key)
	var i Parameter
	err := row.Scan(
		&i.TenantID,
		&i.Key,
		&i.Value,
		&i.UpdatedAt,
	)
	return i, err
}

const setParameter = `-- name: SetParameter :exec
INSERT INTO parameters (tenant_id, key, value, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (tenant_id, key) DO UPDATE SET value = $3, updated_at = $4
`

type SetParameterParams struct {
	TenantID  string             `json:"tenant_id"`
	Key       string             `json:"key"`
	Value     string             `json:"value"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) SetParameter(ctx context.Context, arg SetParameterParams) error {
	_, err := q.db.Exec(ctx, setParameter,
		arg.TenantID,
		arg.Key,
		arg.Value,
		arg.UpdatedAt,
	)
	return err
}
