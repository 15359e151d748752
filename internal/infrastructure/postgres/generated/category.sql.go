package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const categoryInUse = `-- name: CategoryInUse :one
SELECT EXISTS(
    SELECT 1 FROM obligations WHERE tenant_id = $1 AND category_id = $2
) OR EXISTS(
    SELECT 1 FROM ledger_entries WHERE tenant_id = $1 AND category_id = $2
)
`

type CategoryInUseParams struct {
	TenantID   string `json:"tenant_id"`
	CategoryID string `json:"category_id"`
}

func (q *Queries) CategoryInUse(ctx context.Context, arg CategoryInUseParams) (bool, error) {
	row := q.db.QueryRow(ctx, categoryInUse, arg.TenantID, arg.CategoryID)
	var column_1 bool
	err := row.Scan(&column_1)
	return column_1, err
}

const createCategory = `-- name: CreateCategory :exec
INSERT INTO categories (id, tenant_id, code, name, kind, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateCategoryParams struct {
	ID        string             `json:"id"`
	TenantID  string             `json:"tenant_id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Kind      string             `json:"kind"`
	Active    bool               `json:"active"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) error {
	_, err := q.db.Exec(ctx, createCategory,
		arg.ID,
		arg.TenantID,
		arg.Code,
		arg.Name,
		arg.Kind,
		arg.Active,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteCategory = `-- name: DeleteCategory :exec
DELETE FROM categories WHERE tenant_id = $1 AND id = $2
`

type DeleteCategoryParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) DeleteCategory(ctx context.Context, arg DeleteCategoryParams) error {
	_, err := q.db.Exec(ctx, deleteCategory, arg.TenantID, arg.ID)
	return err
}

const getCategoryByID = `-- name: GetCategoryByID :one
SELECT id, tenant_id, code, name, kind, active, created_at, updated_at FROM categories
WHERE tenant_id = $1 AND id = $2
`

type GetCategoryByIDParams struct {
	TenantID string `json:"tenant_id"`
	ID       string `json:"id"`
}

func (q *Queries) GetCategoryByID(ctx context.Context, arg GetCategoryByIDParams) (Category, error) {
	row := q.db.QueryRow(ctx, getCategoryByID, arg.TenantID, arg.ID)
	var i Category
	err := row.Scan(
		&i.ID,
		&i.TenantID,
		&i.Code,
		&i.Name,
		&i.Kind,
		&i.Active,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listCategories = `-- name: ListCategories :many
SELECT id, tenant_id, code, name, kind, active, created_at, updated_at FROM categories
WHERE tenant_id = $1
ORDER BY code
`

func (q *Queries) ListCategories(ctx context.Context, tenantID string) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Category{}
	for rows.Next() {
		var i Category
		if err := rows.Scan(
			&i.ID,
			&i.TenantID,
			&i.Code,
			&i.Name,
			&i.Kind,
			&i.Active,
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

const updateCategory = `-- name: UpdateCategory :exec
UPDATE categories
SET code = $3, name = $4, kind = $5, active = $6, updated_at = $7
WHERE tenant_id = $1 AND id = $2
`

type UpdateCategoryParams struct {
	TenantID  string             `json:"tenant_id"`
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Kind      string             `json:"kind"`
	Active    bool               `json:"active"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) error {
	_, err := q.db.Exec(ctx, updateCategory,
		arg.TenantID,
		arg.ID,
		arg.Code,
		arg.Name,
		arg.Kind,
		arg.Active,
		arg.UpdatedAt,
	)
	return err
}
