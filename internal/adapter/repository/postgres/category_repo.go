package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/postgres/generated"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return r.queries.CreateCategory(ctx, generated.CreateCategoryParams{
		ID:        category.ID,
		TenantID:  category.TenantID,
		Code:      category.Code,
		Name:      category.Name,
		Kind:      string(category.Kind),
		Active:    category.Active,
		CreatedAt: timeToPgTimestamptz(category.CreatedAt),
		UpdatedAt: timeToPgTimestamptz(category.UpdatedAt),
	})
}

// GetByID retrieves a category by ID within the tenant.
func (r *CategoryRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Category, error) {
	row, err := r.queries.GetCategoryByID(ctx, generated.GetCategoryByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return rowToCategory(row), nil
}

// Update updates a category.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return r.queries.UpdateCategory(ctx, generated.UpdateCategoryParams{
		TenantID:  category.TenantID,
		ID:        category.ID,
		Code:      category.Code,
		Name:      category.Name,
		Kind:      string(category.Kind),
		Active:    category.Active,
		UpdatedAt: timeToPgTimestamptz(category.UpdatedAt),
	})
}

// Delete deletes a category.
func (r *CategoryRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.queries.DeleteCategory(ctx, generated.DeleteCategoryParams{
		TenantID: tenantID,
		ID:       id,
	})
}

// List lists the tenant's categories ordered by code.
func (r *CategoryRepository) List(ctx context.Context, tenantID string) ([]*domain.Category, error) {
	rows, err := r.queries.ListCategories(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	categories := make([]*domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, rowToCategory(row))
	}

	return categories, nil
}

// InUse reports whether obligations or ledger entries reference the category.
func (r *CategoryRepository) InUse(ctx context.Context, tenantID, id string) (bool, error) {
	return r.queries.CategoryInUse(ctx, generated.CategoryInUseParams{
		TenantID:   tenantID,
		CategoryID: id,
	})
}

func rowToCategory(row generated.Category) *domain.Category {
	return &domain.Category{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Code:      row.Code,
		Name:      row.Name,
		Kind:      domain.CategoryKind(row.Kind),
		Active:    row.Active,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
