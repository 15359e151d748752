package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
	"github.com/duarte/gocontas/internal/usecase/mocks"
)

func seedLedger(ctx context.Context, entryRepo *mocks.MockLedgerEntryRepository) {
	// One entry before the statement period, two inside it.
	entryRepo.Create(ctx, &domain.LedgerEntry{
		ID:            "e-prior",
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Description:   "Carried over",
		PostedDate:    time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(150),
	})
	entryRepo.Create(ctx, &domain.LedgerEntry{
		ID:            "e-credit",
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Description:   "Monthly fees",
		PostedDate:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(500),
	})
	entryRepo.Create(ctx, &domain.LedgerEntry{
		ID:            "e-debit",
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Description:   "Electricity",
		PostedDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(-200),
	})
}

func TestCashFlowUseCase_GetStatement(t *testing.T) {
	ctx := context.Background()

	entryRepo := mocks.NewMockLedgerEntryRepository()
	cashAccountRepo := mocks.NewMockCashAccountRepository()

	cashAccountRepo.Create(ctx, &domain.CashAccount{
		ID:             "acc-1",
		TenantID:       "t-1",
		Name:           "Main",
		OpeningBalance: decimal.NewFromInt(850),
	})
	seedLedger(ctx, entryRepo)

	uc := usecase.NewCashFlowUseCase(
		entryRepo, cashAccountRepo, mocks.NewMockParameterRepository(),
		mocks.NewMockCache(), mocks.NewMockRetrier(),
	)

	statement, err := uc.GetStatement(ctx, usecase.StatementInput{
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Start:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Opening folds the account's opening balance with everything posted
	// before the period start: 850 + 150 = 1000.
	if !statement.OpeningBalance.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected opening 1000, got %s", statement.OpeningBalance)
	}
	if !statement.PeriodTotal.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected period total 300, got %s", statement.PeriodTotal)
	}
	if !statement.ClosingBalance.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("expected closing 1300, got %s", statement.ClosingBalance)
	}
	if len(statement.Entries) != 2 {
		t.Errorf("expected 2 entries in period, got %d", len(statement.Entries))
	}
	if !statement.ClosingBalance.Equal(statement.OpeningBalance.Add(statement.PeriodTotal)) {
		t.Error("closing must equal opening plus period total")
	}
}

func TestCashFlowUseCase_GetStatement_DefaultAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to the configured default account", func(t *testing.T) {
		entryRepo := mocks.NewMockLedgerEntryRepository()
		cashAccountRepo := mocks.NewMockCashAccountRepository()
		paramRepo := mocks.NewMockParameterRepository()

		cashAccountRepo.Create(ctx, &domain.CashAccount{
			ID:             "acc-1",
			TenantID:       "t-1",
			Name:           "Main",
			OpeningBalance: decimal.NewFromInt(850),
		})
		seedLedger(ctx, entryRepo)
		paramRepo.Set(ctx, "t-1", domain.ParamDefaultCashAccount, "acc-1")

		uc := usecase.NewCashFlowUseCase(
			entryRepo, cashAccountRepo, paramRepo,
			mocks.NewMockCache(), mocks.NewMockRetrier(),
		)

		statement, err := uc.GetStatement(ctx, usecase.StatementInput{
			TenantID: "t-1",
			Start:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if statement.CashAccountID != "acc-1" {
			t.Errorf("expected default account acc-1, got %q", statement.CashAccountID)
		}
		if !statement.OpeningBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected opening 1000, got %s", statement.OpeningBalance)
		}
	})

	t.Run("no default configured means zero opening", func(t *testing.T) {
		entryRepo := mocks.NewMockLedgerEntryRepository()
		seedLedger(ctx, entryRepo)

		uc := usecase.NewCashFlowUseCase(
			entryRepo, mocks.NewMockCashAccountRepository(),
			mocks.NewMockParameterRepository(), mocks.NewMockCache(),
			mocks.NewMockRetrier(),
		)

		statement, err := uc.GetStatement(ctx, usecase.StatementInput{
			TenantID: "t-1",
			Start:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if statement.CashAccountID != "" {
			t.Errorf("expected no resolved account, got %q", statement.CashAccountID)
		}
		if !statement.OpeningBalance.IsZero() {
			t.Errorf("expected zero opening, got %s", statement.OpeningBalance)
		}
		if !statement.PeriodTotal.Equal(decimal.NewFromInt(300)) {
			t.Errorf("expected period total 300, got %s", statement.PeriodTotal)
		}
	})

	t.Run("stale default pointing at a deleted account is ignored", func(t *testing.T) {
		entryRepo := mocks.NewMockLedgerEntryRepository()
		paramRepo := mocks.NewMockParameterRepository()
		paramRepo.Set(ctx, "t-1", domain.ParamDefaultCashAccount, "acc-gone")

		uc := usecase.NewCashFlowUseCase(
			entryRepo, mocks.NewMockCashAccountRepository(), paramRepo,
			mocks.NewMockCache(), mocks.NewMockRetrier(),
		)

		statement, err := uc.GetStatement(ctx, usecase.StatementInput{
			TenantID: "t-1",
			Start:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if statement.CashAccountID != "" {
			t.Errorf("expected stale default to be dropped, got %q", statement.CashAccountID)
		}
	})
}

func TestCashFlowUseCase_DefaultAccountCache(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	entryRepo := mocks.NewMockLedgerEntryRepository()
	cashAccountRepo := mocks.NewMockCashAccountRepository()
	cashAccountRepo.Create(ctx, &domain.CashAccount{
		ID:       "acc-1",
		TenantID: "t-1",
		Name:     "Main",
	})

	paramRepo := mocks.NewGomockParameterRepository(ctrl)
	cache := mocks.NewGomockCache(ctrl)

	// A cache hit must short-circuit the parameter lookup entirely.
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("acc-1", nil)

	uc := usecase.NewCashFlowUseCase(
		entryRepo, cashAccountRepo, paramRepo, cache, mocks.NewMockRetrier(),
	)

	statement, err := uc.GetStatement(ctx, usecase.StatementInput{
		TenantID: "t-1",
		Start:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if statement.CashAccountID != "acc-1" {
		t.Errorf("expected cached account acc-1, got %q", statement.CashAccountID)
	}
}

func TestCashFlowUseCase_GetReport(t *testing.T) {
	ctx := context.Background()

	entryRepo := mocks.NewMockLedgerEntryRepository()
	cashAccountRepo := mocks.NewMockCashAccountRepository()
	cashAccountRepo.Create(ctx, &domain.CashAccount{
		ID:       "acc-1",
		TenantID: "t-1",
		Name:     "Main",
	})
	seedLedger(ctx, entryRepo)

	uc := usecase.NewCashFlowUseCase(
		entryRepo, cashAccountRepo, mocks.NewMockParameterRepository(),
		mocks.NewMockCache(), mocks.NewMockRetrier(),
	)

	report, err := uc.GetReport(ctx, usecase.StatementInput{
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Start:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Credits) != 1 || len(report.Debits) != 1 {
		t.Fatalf("expected 1 credit and 1 debit, got %d and %d", len(report.Credits), len(report.Debits))
	}
	if !report.TotalCredits.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected total credits 500, got %s", report.TotalCredits)
	}
	if !report.TotalDebits.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("expected total debits -200, got %s", report.TotalDebits)
	}
	if !report.Result.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected result 300, got %s", report.Result)
	}
}

func TestCashFlowUseCase_GetReportRetriesReads(t *testing.T) {
	ctx := context.Background()

	entryRepo := mocks.NewMockLedgerEntryRepository()
	cashAccountRepo := mocks.NewMockCashAccountRepository()
	cashAccountRepo.Create(ctx, &domain.CashAccount{
		ID:       "acc-1",
		TenantID: "t-1",
		Name:     "Main",
	})
	seedLedger(ctx, entryRepo)

	retries := 0
	retrier := mocks.NewMockRetrier()
	retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
		retries++
		return operation()
	}

	uc := usecase.NewCashFlowUseCase(
		entryRepo, cashAccountRepo, mocks.NewMockParameterRepository(),
		mocks.NewMockCache(), retrier,
	)

	_, err := uc.GetReport(ctx, usecase.StatementInput{
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Start:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Entry list plus the two period sums all go through the retrier.
	if retries != 3 {
		t.Errorf("expected 3 retried reads, got %d", retries)
	}
}
