package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
)

// DashboardUseCase aggregates the per-tenant summary panel.
type DashboardUseCase struct {
	partyRepo      PartyRepository
	entryRepo      LedgerEntryRepository
	obligationRepo ObligationRepository
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(
	partyRepo PartyRepository,
	entryRepo LedgerEntryRepository,
	obligationRepo ObligationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		partyRepo:      partyRepo,
		entryRepo:      entryRepo,
		obligationRepo: obligationRepo,
	}
}

// DashboardSummary holds the dashboard numbers for one tenant.
type DashboardSummary struct {
	TotalParties       int64
	ActiveParties      int64
	MonthCredits       decimal.Decimal
	MonthDebits        decimal.Decimal
	MonthNet           decimal.Decimal
	RecentSettlements  []*domain.LedgerEntry
	OverdueReceivables []*domain.Obligation
}

const dashboardListLimit = 5

// GetSummary computes the dashboard for the current month.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID string) (*DashboardSummary, error) {
	today := time.Now().UTC()
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	total, err := uc.partyRepo.Count(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	active, err := uc.partyRepo.CountByStatus(ctx, tenantID, domain.PartyActive)
	if err != nil {
		return nil, err
	}

	credits, err := uc.entryRepo.SumCreditsPeriod(ctx, tenantID, "", monthStart, today)
	if err != nil {
		return nil, err
	}
	debits, err := uc.entryRepo.SumDebitsPeriod(ctx, tenantID, "", monthStart, today)
	if err != nil {
		return nil, err
	}

	recent, err := uc.entryRepo.ListRecentSettlements(ctx, tenantID, dashboardListLimit)
	if err != nil {
		return nil, err
	}

	overdue, err := uc.obligationRepo.List(ctx, tenantID, ObligationFilter{
		Kind:   domain.KindReceivable,
		Status: domain.ObligationOverdue,
		Today:  today,
		Limit:  dashboardListLimit,
	})
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalParties:       total,
		ActiveParties:      active,
		MonthCredits:       credits,
		MonthDebits:        debits,
		MonthNet:           credits.Add(debits),
		RecentSettlements:  recent,
		OverdueReceivables: overdue,
	}, nil
}
