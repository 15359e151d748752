package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
	"github.com/duarte/gocontas/internal/usecase/mocks"
)

func TestParameterGetMissing(t *testing.T) {
	uc := usecase.NewParameterUseCase(mocks.NewMockParameterRepository(), mocks.NewMockCache())

	_, err := uc.Get(context.Background(), "t-1", "UNKNOWN")
	if !errors.Is(err, domain.ErrParameterNotFound) {
		t.Fatalf("expected ErrParameterNotFound, got %v", err)
	}
}

func TestParameterSetAndGet(t *testing.T) {
	uc := usecase.NewParameterUseCase(mocks.NewMockParameterRepository(), mocks.NewMockCache())

	if err := uc.Set(context.Background(), "t-1", "SOME_FLAG", "on"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := uc.Get(context.Background(), "t-1", "SOME_FLAG")
	if err != nil || got != "on" {
		t.Fatalf("expected on, got %q err=%v", got, err)
	}
}

func TestParameterSetDefaultAccountInvalidatesCache(t *testing.T) {
	var deleted string
	cache := mocks.NewMockCache()
	cache.DeleteFunc = func(ctx context.Context, key string) error {
		deleted = key
		return nil
	}

	uc := usecase.NewParameterUseCase(mocks.NewMockParameterRepository(), cache)

	if err := uc.Set(context.Background(), "t-1", domain.ParamDefaultCashAccount, "acc-1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if !strings.Contains(deleted, "t-1") {
		t.Fatalf("expected cache invalidation for tenant, got %q", deleted)
	}
}

func TestParameterSetOtherKeyKeepsCache(t *testing.T) {
	cache := mocks.NewMockCache()
	cache.DeleteFunc = func(ctx context.Context, key string) error {
		t.Fatalf("unexpected cache invalidation for key %q", key)
		return nil
	}

	uc := usecase.NewParameterUseCase(mocks.NewMockParameterRepository(), cache)

	if err := uc.Set(context.Background(), "t-1", "SOME_FLAG", "off"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
}
