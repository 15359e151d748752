package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/metrics"
)

// LedgerUseCase handles manual ledger entries and entry deletion.
type LedgerUseCase struct {
	txManager       TransactionManager
	entryRepo       LedgerEntryRepository
	cashAccountRepo CashAccountRepository
	categoryRepo    CategoryRepository
	obligationRepo  ObligationRepository
	idGen           IDGenerator
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	entryRepo LedgerEntryRepository,
	cashAccountRepo CashAccountRepository,
	categoryRepo CategoryRepository,
	obligationRepo ObligationRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		entryRepo:       entryRepo,
		cashAccountRepo: cashAccountRepo,
		categoryRepo:    categoryRepo,
		obligationRepo:  obligationRepo,
		idGen:           idGen,
		metrics:         metrics,
	}
}

// CreateEntryInput represents input for a manual ledger entry. Amount is
// signed: positive credits, negative debits.
type CreateEntryInput struct {
	TenantID      string
	CashAccountID string
	CategoryID    string
	Description   string
	PostedDate    time.Time
	Amount        decimal.Decimal
}

// CreateEntry posts a manual ledger entry.
func (uc *LedgerUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.LedgerEntry, error) {
	if input.Description == "" {
		return nil, domain.ErrMissingDescription
	}
	if input.Amount.IsZero() {
		return nil, domain.ErrZeroAmount
	}

	account, err := uc.cashAccountRepo.GetByID(ctx, input.TenantID, input.CashAccountID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.categoryRepo.GetByID(ctx, input.TenantID, input.CategoryID); err != nil {
		return nil, err
	}

	entry := &domain.LedgerEntry{
		ID:            uc.idGen.Generate(),
		TenantID:      input.TenantID,
		CashAccountID: account.ID,
		CategoryID:    input.CategoryID,
		Description:   input.Description,
		PostedDate:    input.PostedDate,
		Amount:        input.Amount,
		CreatedAt:     time.Now().UTC(),
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesPosted.Inc()
	}

	return entry, nil
}

// GetEntry retrieves a ledger entry by id within the tenant.
func (uc *LedgerUseCase) GetEntry(ctx context.Context, tenantID, id string) (*domain.LedgerEntry, error) {
	return uc.entryRepo.GetByID(ctx, tenantID, id)
}

// DeleteEntry removes a ledger entry. Deleting a settlement entry reverts its
// obligation to Pending in the same transaction; this is a deliberate
// compensating action, not a cascade.
func (uc *LedgerUseCase) DeleteEntry(ctx context.Context, tenantID, id string) error {
	entry, err := uc.entryRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if entry.Settlement() {
		now := time.Now().UTC()
		if err := uc.obligationRepo.UpdateStatus(txCtx, tx, tenantID, entry.SourceObligationID, domain.ObligationPending, now); err != nil {
			return err
		}
	}

	if err := uc.entryRepo.DeleteTx(txCtx, tx, tenantID, id); err != nil {
		return err
	}

	if err := tx.Commit(txCtx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesDeleted.Inc()
	}

	return nil
}

// ListEntriesInput represents input for listing ledger entries.
type ListEntriesInput struct {
	TenantID      string
	CashAccountID string
	From          time.Time
	To            time.Time
}

// ListEntries lists ledger entries for a period, newest first.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.LedgerEntry, error) {
	from, to := defaultPeriod(input.From, input.To)
	return uc.entryRepo.ListByPeriod(ctx, input.TenantID, input.CashAccountID, from, to)
}

// defaultPeriod fills missing range bounds with first-of-month through today.
func defaultPeriod(from, to time.Time) (time.Time, time.Time) {
	today := time.Now().UTC()
	if from.IsZero() {
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	}
	return from, to
}
