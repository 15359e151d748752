package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
)

// CashAccountRepository defines data access for cash accounts.
type CashAccountRepository interface {
	Create(ctx context.Context, account *domain.CashAccount) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.CashAccount, error)
	Update(ctx context.Context, account *domain.CashAccount) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]*domain.CashAccount, error)
}

// CategoryRepository defines data access for chart-of-accounts categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]*domain.Category, error)
	InUse(ctx context.Context, tenantID, id string) (bool, error)
}

// PartyRepository defines data access for registrants.
type PartyRepository interface {
	Create(ctx context.Context, party *domain.Party) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Party, error)
	Update(ctx context.Context, party *domain.Party) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID, nameFilter string, limit, offset int) ([]*domain.Party, error)
	Count(ctx context.Context, tenantID string) (int64, error)
	CountByStatus(ctx context.Context, tenantID string, status domain.PartyStatus) (int64, error)
	HasObligations(ctx context.Context, tenantID, id string) (bool, error)
}

// ObligationFilter narrows obligation listings. Zero values mean "no filter".
type ObligationFilter struct {
	Kind      domain.CategoryKind
	DueFrom   *time.Time
	DueTo     *time.Time
	PartyName string
	// Status may be the virtual domain.ObligationOverdue, which the
	// repository expands to pending + due before Today.
	Status domain.ObligationStatus
	Today  time.Time
	Limit  int
}

// ObligationRepository defines data access for payable/receivable records.
type ObligationRepository interface {
	Create(ctx context.Context, tx Transaction, obligation *domain.Obligation) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Obligation, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, tenantID, id string) (*domain.Obligation, error)
	Update(ctx context.Context, obligation *domain.Obligation) error
	UpdateStatus(ctx context.Context, tx Transaction, tenantID, id string, status domain.ObligationStatus, updatedAt time.Time) error
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string, filter ObligationFilter) ([]*domain.Obligation, error)
	SumAmount(ctx context.Context, tenantID string, filter ObligationFilter) (decimal.Decimal, error)
}

// LedgerEntryRepository defines data access for ledger entries.
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) error
	CreateTx(ctx context.Context, tx Transaction, entry *domain.LedgerEntry) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.LedgerEntry, error)
	DeleteTx(ctx context.Context, tx Transaction, tenantID, id string) error
	// ListByPeriod returns entries posted in [from, to], newest first.
	// An empty cashAccountID means all accounts of the tenant.
	ListByPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) ([]*domain.LedgerEntry, error)
	SumBefore(ctx context.Context, tenantID, cashAccountID string, before time.Time) (decimal.Decimal, error)
	SumPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error)
	SumCreditsPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error)
	SumDebitsPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error)
	ListRecentSettlements(ctx context.Context, tenantID string, limit int) ([]*domain.LedgerEntry, error)
	ExistsForCashAccount(ctx context.Context, tenantID, cashAccountID string) (bool, error)
}

// ParameterRepository defines data access for tenant parameters.
type ParameterRepository interface {
	Get(ctx context.Context, tenantID, key string) (string, error)
	Set(ctx context.Context, tenantID, key, value string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// DocRefGenerator produces the cosmetic document reference tags. They group
// installments for a human reader and are not unique or idempotency keys.
type DocRefGenerator interface {
	// Group returns the 4-digit tag shared by one installment series.
	Group() string
	// Single returns the 5-digit tag for a standalone obligation.
	Single() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Retrier retries an operation on transient persistence errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
