package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
	"github.com/duarte/gocontas/internal/usecase/mocks"
)

func TestCategoryUseCase_CreateCategory(t *testing.T) {
	ctx := context.Background()

	uc := usecase.NewCategoryUseCase(mocks.NewMockCategoryRepository(), mocks.NewMockIDGenerator())

	t.Run("invalid kind rejected", func(t *testing.T) {
		_, err := uc.CreateCategory(ctx, usecase.CreateCategoryInput{
			TenantID: "t-1",
			Name:     "Misc",
			Kind:     "X",
		})
		if !errors.Is(err, domain.ErrInvalidKind) {
			t.Errorf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("creates active by default", func(t *testing.T) {
		category, err := uc.CreateCategory(ctx, usecase.CreateCategoryInput{
			TenantID: "t-1",
			Code:     "1.02",
			Name:     "Monthly fees",
			Kind:     domain.KindReceivable,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !category.Active {
			t.Error("new categories must start active")
		}
	})
}

func TestCategoryUseCase_DeleteCategory(t *testing.T) {
	ctx := context.Background()

	newFixture := func(t *testing.T) (*usecase.CategoryUseCase, *mocks.MockCategoryRepository) {
		t.Helper()
		categoryRepo := mocks.NewMockCategoryRepository()
		seedCategory(categoryRepo, "cat-1", "t-1", domain.KindReceivable)
		return usecase.NewCategoryUseCase(categoryRepo, mocks.NewMockIDGenerator()), categoryRepo
	}

	t.Run("deletes an unused category", func(t *testing.T) {
		uc, _ := newFixture(t)

		if err := uc.DeleteCategory(ctx, "t-1", "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refuses when referenced", func(t *testing.T) {
		uc, categoryRepo := newFixture(t)
		categoryRepo.InUseFunc = func(ctx context.Context, tenantID, id string) (bool, error) {
			return true, nil
		}

		err := uc.DeleteCategory(ctx, "t-1", "cat-1")
		if !errors.Is(err, domain.ErrCategoryInUse) {
			t.Errorf("expected ErrCategoryInUse, got %v", err)
		}
	})

	t.Run("other tenant sees not found", func(t *testing.T) {
		uc, _ := newFixture(t)

		err := uc.DeleteCategory(ctx, "t-2", "cat-1")
		if !errors.Is(err, domain.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
