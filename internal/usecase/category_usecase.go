package usecase

import (
	"context"
	"time"

	"github.com/duarte/gocontas/internal/domain"
)

// CategoryUseCase handles chart-of-accounts business logic.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		idGen:        idGen,
	}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	TenantID string
	Code     string
	Name     string
	Kind     domain.CategoryKind
}

// CreateCategory creates a new chart category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingDescription
	}
	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uc.idGen.Generate(),
		TenantID:  input.TenantID,
		Code:      input.Code,
		Name:      input.Name,
		Kind:      input.Kind,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category by id within the tenant.
func (uc *CategoryUseCase) GetCategory(ctx context.Context, tenantID, id string) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, tenantID, id)
}

// UpdateCategoryInput represents input for editing a category.
type UpdateCategoryInput struct {
	TenantID string
	ID       string
	Code     string
	Name     string
	Kind     domain.CategoryKind
	Active   bool
}

// UpdateCategory edits a chart category.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingDescription
	}
	if !input.Kind.Valid() {
		return nil, domain.ErrInvalidKind
	}

	category, err := uc.categoryRepo.GetByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	category.Code = input.Code
	category.Name = input.Name
	category.Kind = input.Kind
	category.Active = input.Active
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a category unless entries or obligations reference
// it.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, tenantID, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, tenantID, id); err != nil {
		return err
	}

	inUse, err := uc.categoryRepo.InUse(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCategoryInUse
	}

	return uc.categoryRepo.Delete(ctx, tenantID, id)
}

// ListCategories lists the tenant's categories ordered by code.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, tenantID string) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx, tenantID)
}
