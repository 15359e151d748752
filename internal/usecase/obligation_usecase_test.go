package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
	"github.com/duarte/gocontas/internal/usecase/mocks"
)

func seedCategory(repo *mocks.MockCategoryRepository, id, tenantID string, kind domain.CategoryKind) {
	repo.Create(context.Background(), &domain.Category{
		ID:       id,
		TenantID: tenantID,
		Code:     "1.01",
		Name:     "Category " + id,
		Kind:     kind,
		Active:   true,
	})
}

func TestObligationUseCase_CreateObligation(t *testing.T) {
	dueDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       usecase.CreateObligationInput
		expectError bool
		errorType   error
		expectRows  int
	}{
		{
			name: "single obligation",
			input: usecase.CreateObligationInput{
				TenantID:    "t-1",
				Description: "Rent",
				CategoryID:  "cat-1",
				Amount:      decimal.NewFromInt(800),
				DueDate:     dueDate,
			},
			expectRows: 1,
		},
		{
			name: "missing description",
			input: usecase.CreateObligationInput{
				TenantID:   "t-1",
				CategoryID: "cat-1",
				Amount:     decimal.NewFromInt(800),
				DueDate:    dueDate,
			},
			expectError: true,
			errorType:   domain.ErrMissingDescription,
		},
		{
			name: "non-positive amount",
			input: usecase.CreateObligationInput{
				TenantID:    "t-1",
				Description: "Rent",
				CategoryID:  "cat-1",
				Amount:      decimal.Zero,
				DueDate:     dueDate,
			},
			expectError: true,
			errorType:   domain.ErrInvalidAmount,
		},
		{
			name: "unknown category",
			input: usecase.CreateObligationInput{
				TenantID:    "t-1",
				Description: "Rent",
				CategoryID:  "cat-missing",
				Amount:      decimal.NewFromInt(800),
				DueDate:     dueDate,
			},
			expectError: true,
			errorType:   domain.ErrCategoryNotFound,
		},
		{
			name: "unknown party",
			input: usecase.CreateObligationInput{
				TenantID:    "t-1",
				Description: "Rent",
				CategoryID:  "cat-1",
				PartyID:     "p-missing",
				Amount:      decimal.NewFromInt(800),
				DueDate:     dueDate,
			},
			expectError: true,
			errorType:   domain.ErrPartyNotFound,
		},
		{
			name: "zero installments rejected",
			input: usecase.CreateObligationInput{
				TenantID:             "t-1",
				Description:          "Course fee",
				CategoryID:           "cat-1",
				Amount:               decimal.NewFromInt(800),
				DueDate:              dueDate,
				GenerateInstallments: true,
				InstallmentCount:     0,
			},
			expectError: true,
			errorType:   domain.ErrInvalidInstallments,
		},
		{
			name: "installment count above limit rejected",
			input: usecase.CreateObligationInput{
				TenantID:             "t-1",
				Description:          "Course fee",
				CategoryID:           "cat-1",
				Amount:               decimal.NewFromInt(800),
				DueDate:              dueDate,
				GenerateInstallments: true,
				InstallmentCount:     usecase.MaxInstallmentCount + 1,
			},
			expectError: true,
			errorType:   domain.ErrInvalidInstallments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obligationRepo := mocks.NewMockObligationRepository()
			categoryRepo := mocks.NewMockCategoryRepository()
			partyRepo := mocks.NewMockPartyRepository()
			txMgr := mocks.NewMockTransactionManager()

			seedCategory(categoryRepo, "cat-1", "t-1", domain.KindReceivable)

			uc := usecase.NewObligationUseCase(
				txMgr, obligationRepo, categoryRepo, partyRepo,
				mocks.NewMockIDGenerator(), mocks.NewMockDocRefGenerator(), nil,
			)

			created, err := uc.CreateObligation(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(created) != tt.expectRows {
				t.Fatalf("expected %d rows, got %d", tt.expectRows, len(created))
			}
			if created[0].Status != domain.ObligationPending {
				t.Errorf("expected pending status, got %s", created[0].Status)
			}
			if created[0].DocumentRef != "12345" {
				t.Errorf("expected standalone doc ref 12345, got %s", created[0].DocumentRef)
			}
		})
	}
}

func TestObligationUseCase_CreateObligation_Installments(t *testing.T) {
	obligationRepo := mocks.NewMockObligationRepository()
	categoryRepo := mocks.NewMockCategoryRepository()
	txMgr := mocks.NewMockTransactionManager()

	seedCategory(categoryRepo, "cat-1", "t-1", domain.KindReceivable)

	uc := usecase.NewObligationUseCase(
		txMgr, obligationRepo, categoryRepo, mocks.NewMockPartyRepository(),
		mocks.NewMockIDGenerator(), mocks.NewMockDocRefGenerator(), nil,
	)

	// 1000 plus 10% surcharge split into 3: grand total 1100, two rows of
	// 366.67 and a final row of 366.66 absorbing the rounding remainder.
	created, err := uc.CreateObligation(context.Background(), usecase.CreateObligationInput{
		TenantID:             "t-1",
		Description:          "Course fee",
		CategoryID:           "cat-1",
		Amount:               decimal.NewFromInt(1000),
		DueDate:              time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		GenerateInstallments: true,
		InstallmentCount:     3,
		InterestRatePercent:  decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(created))
	}

	wantAmounts := []string{"366.67", "366.67", "366.66"}
	wantRefs := []string{"1234-1/3", "1234-2/3", "1234-3/3"}
	wantDue := []time.Time{
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	sum := decimal.Zero
	for i, o := range created {
		if o.Amount.StringFixed(2) != wantAmounts[i] {
			t.Errorf("installment %d: expected amount %s, got %s", i+1, wantAmounts[i], o.Amount.StringFixed(2))
		}
		if o.DocumentRef != wantRefs[i] {
			t.Errorf("installment %d: expected doc ref %s, got %s", i+1, wantRefs[i], o.DocumentRef)
		}
		if !o.DueDate.Equal(wantDue[i]) {
			t.Errorf("installment %d: expected due date %s, got %s", i+1, wantDue[i], o.DueDate)
		}
		sum = sum.Add(o.Amount)
	}
	if !sum.Equal(decimal.NewFromInt(1100)) {
		t.Errorf("expected series to sum to 1100, got %s", sum)
	}
}

func TestObligationUseCase_CreateObligation_RollbackOnFailure(t *testing.T) {
	obligationRepo := mocks.NewMockObligationRepository()
	categoryRepo := mocks.NewMockCategoryRepository()
	txMgr := mocks.NewMockTransactionManager()

	seedCategory(categoryRepo, "cat-1", "t-1", domain.KindReceivable)

	tx := &mocks.MockTransaction{}
	txMgr.BeginFunc = func(ctx context.Context) (usecase.Transaction, error) {
		return tx, nil
	}

	writeErr := errors.New("write failed")
	calls := 0
	obligationRepo.CreateFunc = func(ctx context.Context, _ usecase.Transaction, o *domain.Obligation) error {
		calls++
		if calls == 2 {
			return writeErr
		}
		return nil
	}

	uc := usecase.NewObligationUseCase(
		txMgr, obligationRepo, categoryRepo, mocks.NewMockPartyRepository(),
		mocks.NewMockIDGenerator(), mocks.NewMockDocRefGenerator(), nil,
	)

	_, err := uc.CreateObligation(context.Background(), usecase.CreateObligationInput{
		TenantID:             "t-1",
		Description:          "Course fee",
		CategoryID:           "cat-1",
		Amount:               decimal.NewFromInt(300),
		DueDate:              time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		GenerateInstallments: true,
		InstallmentCount:     3,
	})
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected write error, got %v", err)
	}
	if tx.Committed {
		t.Error("transaction must not commit after a failed row")
	}
	if !tx.RolledBack {
		t.Error("transaction must roll back after a failed row")
	}
}

func TestObligationUseCase_UpdateObligation(t *testing.T) {
	ctx := context.Background()

	obligationRepo := mocks.NewMockObligationRepository()
	categoryRepo := mocks.NewMockCategoryRepository()

	seedCategory(categoryRepo, "cat-r", "t-1", domain.KindReceivable)
	seedCategory(categoryRepo, "cat-r2", "t-1", domain.KindReceivable)
	seedCategory(categoryRepo, "cat-p", "t-1", domain.KindPayable)

	obligationRepo.Create(ctx, nil, &domain.Obligation{
		ID:          "ob-1",
		TenantID:    "t-1",
		CategoryID:  "cat-r",
		Description: "Monthly fee",
		Amount:      decimal.NewFromInt(100),
		DueDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.ObligationPending,
	})
	obligationRepo.Create(ctx, nil, &domain.Obligation{
		ID:          "ob-paid",
		TenantID:    "t-1",
		CategoryID:  "cat-r",
		Description: "Settled fee",
		Amount:      decimal.NewFromInt(100),
		DueDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      domain.ObligationPaid,
	})

	uc := usecase.NewObligationUseCase(
		mocks.NewMockTransactionManager(), obligationRepo, categoryRepo,
		mocks.NewMockPartyRepository(), mocks.NewMockIDGenerator(),
		mocks.NewMockDocRefGenerator(), nil,
	)

	t.Run("paid obligation is immutable", func(t *testing.T) {
		_, err := uc.UpdateObligation(ctx, usecase.UpdateObligationInput{
			TenantID:    "t-1",
			ID:          "ob-paid",
			Description: "Changed",
			CategoryID:  "cat-r",
			Amount:      decimal.NewFromInt(120),
			DueDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domain.ErrObligationPaid) {
			t.Errorf("expected ErrObligationPaid, got %v", err)
		}
	})

	t.Run("category kind cannot change", func(t *testing.T) {
		_, err := uc.UpdateObligation(ctx, usecase.UpdateObligationInput{
			TenantID:    "t-1",
			ID:          "ob-1",
			Description: "Monthly fee",
			CategoryID:  "cat-p",
			Amount:      decimal.NewFromInt(100),
			DueDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domain.ErrInvalidKind) {
			t.Errorf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("same-kind recategorization succeeds", func(t *testing.T) {
		updated, err := uc.UpdateObligation(ctx, usecase.UpdateObligationInput{
			TenantID:    "t-1",
			ID:          "ob-1",
			Description: "Monthly fee v2",
			CategoryID:  "cat-r2",
			Amount:      decimal.NewFromInt(150),
			DueDate:     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CategoryID != "cat-r2" {
			t.Errorf("expected category cat-r2, got %s", updated.CategoryID)
		}
		if !updated.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150, got %s", updated.Amount)
		}
	})
}

func TestObligationUseCase_DeleteObligation(t *testing.T) {
	ctx := context.Background()

	obligationRepo := mocks.NewMockObligationRepository()
	obligationRepo.Create(ctx, nil, &domain.Obligation{
		ID:       "ob-paid",
		TenantID: "t-1",
		Status:   domain.ObligationPaid,
	})
	obligationRepo.Create(ctx, nil, &domain.Obligation{
		ID:       "ob-pending",
		TenantID: "t-1",
		Status:   domain.ObligationPending,
	})

	uc := usecase.NewObligationUseCase(
		mocks.NewMockTransactionManager(), obligationRepo,
		mocks.NewMockCategoryRepository(), mocks.NewMockPartyRepository(),
		mocks.NewMockIDGenerator(), mocks.NewMockDocRefGenerator(), nil,
	)

	t.Run("paid obligation cannot be deleted", func(t *testing.T) {
		err := uc.DeleteObligation(ctx, "t-1", "ob-paid")
		if !errors.Is(err, domain.ErrObligationPaid) {
			t.Errorf("expected ErrObligationPaid, got %v", err)
		}
	})

	t.Run("pending obligation deletes", func(t *testing.T) {
		if err := uc.DeleteObligation(ctx, "t-1", "ob-pending"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.GetObligation(ctx, "t-1", "ob-pending"); !errors.Is(err, domain.ErrObligationNotFound) {
			t.Errorf("expected ErrObligationNotFound after delete, got %v", err)
		}
	})

	t.Run("other tenant sees not found", func(t *testing.T) {
		err := uc.DeleteObligation(ctx, "t-2", "ob-paid")
		if !errors.Is(err, domain.ErrObligationNotFound) {
			t.Errorf("expected ErrObligationNotFound, got %v", err)
		}
	})
}
