package usecase

import (
	"context"

	"github.com/duarte/gocontas/internal/domain"
)

// ParameterUseCase reads and writes tenant parameters.
type ParameterUseCase struct {
	paramRepo ParameterRepository
	cache     Cache
}

// NewParameterUseCase creates a new ParameterUseCase.
func NewParameterUseCase(paramRepo ParameterRepository, cache Cache) *ParameterUseCase {
	return &ParameterUseCase{
		paramRepo: paramRepo,
		cache:     cache,
	}
}

// Get returns the value of a tenant parameter.
func (uc *ParameterUseCase) Get(ctx context.Context, tenantID, key string) (string, error) {
	return uc.paramRepo.Get(ctx, tenantID, key)
}

// Set writes a tenant parameter and invalidates its cached copy.
func (uc *ParameterUseCase) Set(ctx context.Context, tenantID, key, value string) error {
	if err := uc.paramRepo.Set(ctx, tenantID, key, value); err != nil {
		return err
	}

	if uc.cache != nil && key == domain.ParamDefaultCashAccount {
		_ = uc.cache.Delete(ctx, defaultAccountCacheKey(tenantID))
	}

	return nil
}
