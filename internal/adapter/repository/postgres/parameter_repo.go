package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/postgres/generated"
)

// ParameterRepository implements usecase.ParameterRepository.
type ParameterRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewParameterRepository creates a new ParameterRepository.
func NewParameterRepository(pool *pgxpool.Pool) *ParameterRepository {
	return &ParameterRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Get returns the value of a tenant parameter.
func (r *ParameterRepository) Get(ctx context.Context, tenantID, key string) (string, error) {
	row, err := r.queries.GetParameter(ctx, generated.GetParameterParams{
		TenantID: tenantID,
		Key:      key,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrParameterNotFound
		}

		return "", err
	}

	return row.Value, nil
}

// Set upserts a tenant parameter.
func (r *ParameterRepository) Set(ctx context.Context, tenantID, key, value string) error {
	return r.queries.SetParameter(ctx, generated.SetParameterParams{
		TenantID:  tenantID,
		Key:       key,
		Value:     value,
		UpdatedAt: timeToPgTimestamptz(time.Now().UTC()),
	})
}
