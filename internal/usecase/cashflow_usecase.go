package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
)

// CashFlowUseCase computes running balances over the ledger.
type CashFlowUseCase struct {
	entryRepo       LedgerEntryRepository
	cashAccountRepo CashAccountRepository
	paramRepo       ParameterRepository
	cache           Cache
	retrier         Retrier
}

// NewCashFlowUseCase creates a new CashFlowUseCase.
func NewCashFlowUseCase(
	entryRepo LedgerEntryRepository,
	cashAccountRepo CashAccountRepository,
	paramRepo ParameterRepository,
	cache Cache,
	retrier Retrier,
) *CashFlowUseCase {
	return &CashFlowUseCase{
		entryRepo:       entryRepo,
		cashAccountRepo: cashAccountRepo,
		paramRepo:       paramRepo,
		cache:           cache,
		retrier:         retrier,
	}
}

// StatementInput represents input for a cash-flow statement. Zero dates
// default to first-of-month through today; an empty account falls back to the
// tenant's configured default account.
type StatementInput struct {
	TenantID      string
	Start         time.Time
	End           time.Time
	CashAccountID string
}

// Statement is a cash-flow statement over a period.
//
// When no cash account could be resolved the opening balance is zero and
// carries no meaning; only the period total is informative then.
type Statement struct {
	CashAccountID  string
	Start          time.Time
	End            time.Time
	Entries        []*domain.LedgerEntry
	OpeningBalance decimal.Decimal
	PeriodTotal    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// GetStatement computes opening balance, period total and closing balance for
// the period. Closing = opening + period by construction.
func (uc *CashFlowUseCase) GetStatement(ctx context.Context, input StatementInput) (*Statement, error) {
	start, end := defaultPeriod(input.Start, input.End)

	accountID := input.CashAccountID
	if accountID == "" {
		accountID = uc.resolveDefaultAccount(ctx, input.TenantID)
	}

	var entries []*domain.LedgerEntry
	err := uc.retry(ctx, func() error {
		var err error
		entries, err = uc.entryRepo.ListByPeriod(ctx, input.TenantID, accountID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	opening := decimal.Zero
	if accountID != "" {
		account, err := uc.cashAccountRepo.GetByID(ctx, input.TenantID, accountID)
		if err != nil {
			return nil, err
		}

		var priorSum decimal.Decimal
		err = uc.retry(ctx, func() error {
			var err error
			priorSum, err = uc.entryRepo.SumBefore(ctx, input.TenantID, accountID, start)
			return err
		})
		if err != nil {
			return nil, err
		}

		opening = account.OpeningBalance.Add(priorSum)
	}

	var periodTotal decimal.Decimal
	err = uc.retry(ctx, func() error {
		var err error
		periodTotal, err = uc.entryRepo.SumPeriod(ctx, input.TenantID, accountID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Statement{
		CashAccountID:  accountID,
		Start:          start,
		End:            end,
		Entries:        entries,
		OpeningBalance: opening,
		PeriodTotal:    periodTotal,
		ClosingBalance: opening.Add(periodTotal),
	}, nil
}

// FlowReport is the printable credit/debit breakdown of a period.
type FlowReport struct {
	CashAccountID string
	Start         time.Time
	End           time.Time
	Credits       []*domain.LedgerEntry
	Debits        []*domain.LedgerEntry
	TotalCredits  decimal.Decimal
	TotalDebits   decimal.Decimal
	Result        decimal.Decimal
}

// GetReport splits the period's entries into credits and debits, oldest
// first, with their totals and the net result.
func (uc *CashFlowUseCase) GetReport(ctx context.Context, input StatementInput) (*FlowReport, error) {
	start, end := defaultPeriod(input.Start, input.End)

	accountID := input.CashAccountID
	if accountID == "" {
		accountID = uc.resolveDefaultAccount(ctx, input.TenantID)
	}

	var entries []*domain.LedgerEntry
	err := uc.retry(ctx, func() error {
		var err error
		entries, err = uc.entryRepo.ListByPeriod(ctx, input.TenantID, accountID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	// ListByPeriod is newest-first; the printed report reads oldest-first.
	credits := make([]*domain.LedgerEntry, 0, len(entries))
	debits := make([]*domain.LedgerEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Kind() == domain.MovementCredit {
			credits = append(credits, e)
		} else {
			debits = append(debits, e)
		}
	}

	var totalCredits, totalDebits decimal.Decimal
	err = uc.retry(ctx, func() error {
		var err error
		totalCredits, err = uc.entryRepo.SumCreditsPeriod(ctx, input.TenantID, accountID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}
	err = uc.retry(ctx, func() error {
		var err error
		totalDebits, err = uc.entryRepo.SumDebitsPeriod(ctx, input.TenantID, accountID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &FlowReport{
		CashAccountID: accountID,
		Start:         start,
		End:           end,
		Credits:       credits,
		Debits:        debits,
		TotalCredits:  totalCredits,
		TotalDebits:   totalDebits,
		Result:        totalCredits.Add(totalDebits),
	}, nil
}

// resolveDefaultAccount looks up the tenant's default cash account parameter.
// Any miss or stale value means "no default", never an error.
func (uc *CashFlowUseCase) resolveDefaultAccount(ctx context.Context, tenantID string) string {
	cacheKey := defaultAccountCacheKey(tenantID)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return cached
		}
	}

	value, err := uc.paramRepo.Get(ctx, tenantID, domain.ParamDefaultCashAccount)
	if err != nil || value == "" {
		return ""
	}

	// The parameter may point at an account that no longer exists.
	if _, err := uc.cashAccountRepo.GetByID(ctx, tenantID, value); err != nil {
		return ""
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, cacheKey, value, defaultAccountCacheTTL)
	}

	return value
}

func (uc *CashFlowUseCase) retry(ctx context.Context, op func() error) error {
	if uc.retrier == nil {
		return op()
	}
	return uc.retrier.Retry(ctx, op)
}

func defaultAccountCacheKey(tenantID string) string {
	return "param:" + tenantID + ":" + domain.ParamDefaultCashAccount
}
