package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
)

// CashAccountUseCase handles cash account business logic.
type CashAccountUseCase struct {
	cashAccountRepo CashAccountRepository
	entryRepo       LedgerEntryRepository
	idGen           IDGenerator
}

// NewCashAccountUseCase creates a new CashAccountUseCase.
func NewCashAccountUseCase(
	cashAccountRepo CashAccountRepository,
	entryRepo LedgerEntryRepository,
	idGen IDGenerator,
) *CashAccountUseCase {
	return &CashAccountUseCase{
		cashAccountRepo: cashAccountRepo,
		entryRepo:       entryRepo,
		idGen:           idGen,
	}
}

// CreateCashAccountInput represents input for creating a cash account.
type CreateCashAccountInput struct {
	TenantID       string
	Name           string
	OpeningBalance decimal.Decimal
}

// CreateCashAccount creates a new cash account.
func (uc *CashAccountUseCase) CreateCashAccount(ctx context.Context, input CreateCashAccountInput) (*domain.CashAccount, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingDescription
	}

	now := time.Now().UTC()
	account := &domain.CashAccount{
		ID:             uc.idGen.Generate(),
		TenantID:       input.TenantID,
		Name:           input.Name,
		OpeningBalance: input.OpeningBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.cashAccountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetCashAccount retrieves a cash account by id within the tenant.
func (uc *CashAccountUseCase) GetCashAccount(ctx context.Context, tenantID, id string) (*domain.CashAccount, error) {
	return uc.cashAccountRepo.GetByID(ctx, tenantID, id)
}

// UpdateCashAccountInput represents input for editing a cash account.
type UpdateCashAccountInput struct {
	TenantID       string
	ID             string
	Name           string
	OpeningBalance decimal.Decimal
}

// UpdateCashAccount edits a cash account.
func (uc *CashAccountUseCase) UpdateCashAccount(ctx context.Context, input UpdateCashAccountInput) (*domain.CashAccount, error) {
	if input.Name == "" {
		return nil, domain.ErrMissingDescription
	}

	account, err := uc.cashAccountRepo.GetByID(ctx, input.TenantID, input.ID)
	if err != nil {
		return nil, err
	}

	account.Name = input.Name
	account.OpeningBalance = input.OpeningBalance
	account.UpdatedAt = time.Now().UTC()

	if err := uc.cashAccountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteCashAccount deletes a cash account unless ledger entries reference it.
// The guard runs before the delete so the caller gets a specific message
// instead of a constraint failure.
func (uc *CashAccountUseCase) DeleteCashAccount(ctx context.Context, tenantID, id string) error {
	if _, err := uc.cashAccountRepo.GetByID(ctx, tenantID, id); err != nil {
		return err
	}

	inUse, err := uc.entryRepo.ExistsForCashAccount(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCashAccountInUse
	}

	return uc.cashAccountRepo.Delete(ctx, tenantID, id)
}

// ListCashAccounts lists the tenant's cash accounts ordered by name.
func (uc *CashAccountUseCase) ListCashAccounts(ctx context.Context, tenantID string) ([]*domain.CashAccount, error) {
	return uc.cashAccountRepo.List(ctx, tenantID)
}
