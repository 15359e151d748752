package usecase

import (
	"context"
	"time"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/infrastructure/metrics"
)

// SettlementUseCase marks obligations as paid and posts the matching ledger
// entry.
type SettlementUseCase struct {
	txManager       TransactionManager
	obligationRepo  ObligationRepository
	cashAccountRepo CashAccountRepository
	categoryRepo    CategoryRepository
	entryRepo       LedgerEntryRepository
	idGen           IDGenerator
	metrics         *metrics.Metrics
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(
	txManager TransactionManager,
	obligationRepo ObligationRepository,
	cashAccountRepo CashAccountRepository,
	categoryRepo CategoryRepository,
	entryRepo LedgerEntryRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *SettlementUseCase {
	return &SettlementUseCase{
		txManager:       txManager,
		obligationRepo:  obligationRepo,
		cashAccountRepo: cashAccountRepo,
		categoryRepo:    categoryRepo,
		entryRepo:       entryRepo,
		idGen:           idGen,
		metrics:         metrics,
	}
}

// SettleInput represents input for settling an obligation.
type SettleInput struct {
	TenantID      string
	ObligationID  string
	CashAccountID string
	PaymentDate   time.Time
}

// Settle posts a ledger entry for the obligation and flips its status to
// Paid, in one transaction. The obligation row is locked before the status
// guard so two concurrent settlers serialize: the loser observes a non-pending
// status and gets a conflict instead of posting a second entry.
func (uc *SettlementUseCase) Settle(ctx context.Context, input SettleInput) (*domain.LedgerEntry, error) {
	if input.CashAccountID == "" || input.PaymentDate.IsZero() {
		return nil, domain.ErrMissingSettlementFields
	}

	account, err := uc.cashAccountRepo.GetByID(ctx, input.TenantID, input.CashAccountID)
	if err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	obligation, err := uc.obligationRepo.GetByIDForUpdate(txCtx, tx, input.TenantID, input.ObligationID)
	if err != nil {
		return nil, err
	}

	if obligation.Status != domain.ObligationPending {
		return nil, domain.ErrObligationNotPending
	}

	category, err := uc.categoryRepo.GetByID(txCtx, input.TenantID, obligation.CategoryID)
	if err != nil {
		return nil, err
	}

	// Receivable settles as a credit, payable as a debit.
	amount := obligation.Amount
	if category.Kind == domain.KindPayable {
		amount = amount.Neg()
	}

	now := time.Now().UTC()
	entry := &domain.LedgerEntry{
		ID:                 uc.idGen.Generate(),
		TenantID:           input.TenantID,
		CashAccountID:      account.ID,
		CategoryID:         obligation.CategoryID,
		SourceObligationID: obligation.ID,
		Description:        "Baixa: " + obligation.Description,
		PostedDate:         input.PaymentDate,
		Amount:             amount,
		CreatedAt:          now,
	}

	if err := uc.entryRepo.CreateTx(txCtx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.obligationRepo.UpdateStatus(txCtx, tx, input.TenantID, obligation.ID, domain.ObligationPaid, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SettlementsCompleted.Inc()
	}

	return entry, nil
}
