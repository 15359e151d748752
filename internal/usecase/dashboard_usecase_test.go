package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
	"github.com/duarte/gocontas/internal/usecase/mocks"
)

func TestDashboardUseCase_GetSummary(t *testing.T) {
	ctx := context.Background()

	partyRepo := mocks.NewMockPartyRepository()
	entryRepo := mocks.NewMockLedgerEntryRepository()
	obligationRepo := mocks.NewMockObligationRepository()

	partyRepo.Create(ctx, &domain.Party{ID: "p-1", TenantID: "t-1", RegistrationNumber: 1, Name: "Ana", Status: domain.PartyActive})
	partyRepo.Create(ctx, &domain.Party{ID: "p-2", TenantID: "t-1", RegistrationNumber: 2, Name: "Bruno", Status: domain.PartyActive})
	partyRepo.Create(ctx, &domain.Party{ID: "p-3", TenantID: "t-1", RegistrationNumber: 3, Name: "Carla", Status: domain.PartyInactive})
	partyRepo.Create(ctx, &domain.Party{ID: "p-x", TenantID: "t-2", RegistrationNumber: 1, Name: "Other", Status: domain.PartyActive})

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	entryRepo.Create(ctx, &domain.LedgerEntry{
		ID:            "e-1",
		TenantID:      "t-1",
		CashAccountID: "acc-1",
		Description:   "Fees",
		PostedDate:    monthStart,
		Amount:        decimal.NewFromInt(300),
	})
	entryRepo.Create(ctx, &domain.LedgerEntry{
		ID:                 "e-2",
		TenantID:           "t-1",
		CashAccountID:      "acc-1",
		SourceObligationID: "ob-1",
		Description:        "Baixa: Fees",
		PostedDate:         monthStart,
		Amount:             decimal.NewFromInt(-100),
	})

	overdue := &domain.Obligation{
		ID:          "ob-late",
		TenantID:    "t-1",
		Description: "Late fee",
		Amount:      decimal.NewFromInt(50),
		Status:      domain.ObligationPending,
		DueDate:     monthStart.AddDate(0, -1, 0),
	}
	obligationRepo.ListFunc = func(ctx context.Context, tenantID string, filter usecase.ObligationFilter) ([]*domain.Obligation, error) {
		if filter.Status != domain.ObligationOverdue {
			t.Errorf("expected overdue filter, got %s", filter.Status)
		}
		if filter.Limit != 5 {
			t.Errorf("expected limit 5, got %d", filter.Limit)
		}
		return []*domain.Obligation{overdue}, nil
	}

	uc := usecase.NewDashboardUseCase(partyRepo, entryRepo, obligationRepo)

	summary, err := uc.GetSummary(ctx, "t-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalParties != 3 {
		t.Errorf("expected 3 parties, got %d", summary.TotalParties)
	}
	if summary.ActiveParties != 2 {
		t.Errorf("expected 2 active parties, got %d", summary.ActiveParties)
	}
	if !summary.MonthCredits.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected month credits 300, got %s", summary.MonthCredits)
	}
	if !summary.MonthDebits.Equal(decimal.NewFromInt(-100)) {
		t.Errorf("expected month debits -100, got %s", summary.MonthDebits)
	}
	if !summary.MonthNet.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected month net 200, got %s", summary.MonthNet)
	}
	if len(summary.RecentSettlements) != 1 || summary.RecentSettlements[0].ID != "e-2" {
		t.Errorf("expected the settlement entry in recent settlements, got %v", summary.RecentSettlements)
	}
	if len(summary.OverdueReceivables) != 1 || summary.OverdueReceivables[0].ID != "ob-late" {
		t.Errorf("expected the overdue obligation, got %v", summary.OverdueReceivables)
	}
}
