package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duarte/gocontas/internal/domain"
	"github.com/duarte/gocontas/internal/usecase"
)

// MockCashAccountRepository is a mock implementation of CashAccountRepository.
type MockCashAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.CashAccount

	CreateFunc  func(ctx context.Context, account *domain.CashAccount) error
	GetByIDFunc func(ctx context.Context, tenantID, id string) (*domain.CashAccount, error)
	UpdateFunc  func(ctx context.Context, account *domain.CashAccount) error
	DeleteFunc  func(ctx context.Context, tenantID, id string) error
	ListFunc    func(ctx context.Context, tenantID string) ([]*domain.CashAccount, error)
}

func NewMockCashAccountRepository() *MockCashAccountRepository {
	return &MockCashAccountRepository{
		accounts: make(map[string]*domain.CashAccount),
	}
}

func (m *MockCashAccountRepository) Create(ctx context.Context, account *domain.CashAccount) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockCashAccountRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.CashAccount, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok && acc.TenantID == tenantID {
		return acc, nil
	}
	return nil, domain.ErrCashAccountNotFound
}

func (m *MockCashAccountRepository) Update(ctx context.Context, account *domain.CashAccount) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockCashAccountRepository) Delete(ctx context.Context, tenantID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

func (m *MockCashAccountRepository) List(ctx context.Context, tenantID string) ([]*domain.CashAccount, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.CashAccount
	for _, acc := range m.accounts {
		if acc.TenantID == tenantID {
			accounts = append(accounts, acc)
		}
	}
	return accounts, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category

	CreateFunc  func(ctx context.Context, category *domain.Category) error
	GetByIDFunc func(ctx context.Context, tenantID, id string) (*domain.Category, error)
	UpdateFunc  func(ctx context.Context, category *domain.Category) error
	DeleteFunc  func(ctx context.Context, tenantID, id string) error
	ListFunc    func(ctx context.Context, tenantID string) ([]*domain.Category, error)
	InUseFunc   func(ctx context.Context, tenantID, id string) (bool, error)
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cat, ok := m.categories[id]; ok && cat.TenantID == tenantID {
		return cat, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, tenantID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	return nil
}

func (m *MockCategoryRepository) List(ctx context.Context, tenantID string) ([]*domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, cat := range m.categories {
		if cat.TenantID == tenantID {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) InUse(ctx context.Context, tenantID, id string) (bool, error) {
	if m.InUseFunc != nil {
		return m.InUseFunc(ctx, tenantID, id)
	}
	return false, nil
}

// MockPartyRepository is a mock implementation of PartyRepository.
type MockPartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*domain.Party

	CreateFunc         func(ctx context.Context, party *domain.Party) error
	GetByIDFunc        func(ctx context.Context, tenantID, id string) (*domain.Party, error)
	UpdateFunc         func(ctx context.Context, party *domain.Party) error
	DeleteFunc         func(ctx context.Context, tenantID, id string) error
	ListFunc           func(ctx context.Context, tenantID, nameFilter string, limit, offset int) ([]*domain.Party, error)
	CountFunc          func(ctx context.Context, tenantID string) (int64, error)
	CountByStatusFunc  func(ctx context.Context, tenantID string, status domain.PartyStatus) (int64, error)
	HasObligationsFunc func(ctx context.Context, tenantID, id string) (bool, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{
		parties: make(map[string]*domain.Party),
	}
}

func (m *MockPartyRepository) Create(ctx context.Context, party *domain.Party) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.parties {
		if p.TenantID == party.TenantID && p.RegistrationNumber == party.RegistrationNumber {
			return domain.ErrDuplicateParty
		}
	}
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Party, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.parties[id]; ok && p.TenantID == tenantID {
		return p, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) Update(ctx context.Context, party *domain.Party) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) Delete(ctx context.Context, tenantID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.parties, id)
	return nil
}

func (m *MockPartyRepository) List(ctx context.Context, tenantID, nameFilter string, limit, offset int) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID, nameFilter, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var parties []*domain.Party
	for _, p := range m.parties {
		if p.TenantID != tenantID {
			continue
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(nameFilter)) {
			continue
		}
		parties = append(parties, p)
	}
	return parties, nil
}

func (m *MockPartyRepository) Count(ctx context.Context, tenantID string) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, tenantID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, p := range m.parties {
		if p.TenantID == tenantID {
			n++
		}
	}
	return n, nil
}

func (m *MockPartyRepository) CountByStatus(ctx context.Context, tenantID string, status domain.PartyStatus) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, tenantID, status)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, p := range m.parties {
		if p.TenantID == tenantID && p.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *MockPartyRepository) HasObligations(ctx context.Context, tenantID, id string) (bool, error) {
	if m.HasObligationsFunc != nil {
		return m.HasObligationsFunc(ctx, tenantID, id)
	}
	return false, nil
}

// MockObligationRepository is a mock implementation of ObligationRepository.
type MockObligationRepository struct {
	mu          sync.RWMutex
	obligations map[string]*domain.Obligation

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, obligation *domain.Obligation) error
	GetByIDFunc          func(ctx context.Context, tenantID, id string) (*domain.Obligation, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, tenantID, id string) (*domain.Obligation, error)
	UpdateFunc           func(ctx context.Context, obligation *domain.Obligation) error
	UpdateStatusFunc     func(ctx context.Context, tx usecase.Transaction, tenantID, id string, status domain.ObligationStatus, updatedAt time.Time) error
	DeleteFunc           func(ctx context.Context, tenantID, id string) error
	ListFunc             func(ctx context.Context, tenantID string, filter usecase.ObligationFilter) ([]*domain.Obligation, error)
	SumAmountFunc        func(ctx context.Context, tenantID string, filter usecase.ObligationFilter) (decimal.Decimal, error)
}

func NewMockObligationRepository() *MockObligationRepository {
	return &MockObligationRepository{
		obligations: make(map[string]*domain.Obligation),
	}
}

func (m *MockObligationRepository) Create(ctx context.Context, tx usecase.Transaction, obligation *domain.Obligation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, obligation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obligations[obligation.ID] = obligation
	return nil
}

func (m *MockObligationRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Obligation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.obligations[id]; ok && o.TenantID == tenantID {
		return o, nil
	}
	return nil, domain.ErrObligationNotFound
}

func (m *MockObligationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, tenantID, id string) (*domain.Obligation, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, tenantID, id)
	}
	return m.GetByID(ctx, tenantID, id)
}

func (m *MockObligationRepository) Update(ctx context.Context, obligation *domain.Obligation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, obligation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obligations[obligation.ID] = obligation
	return nil
}

func (m *MockObligationRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, tenantID, id string, status domain.ObligationStatus, updatedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, tenantID, id, status, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.obligations[id]; ok && o.TenantID == tenantID {
		o.Status = status
		o.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockObligationRepository) Delete(ctx context.Context, tenantID, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.obligations, id)
	return nil
}

func (m *MockObligationRepository) List(ctx context.Context, tenantID string, filter usecase.ObligationFilter) ([]*domain.Obligation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var obligations []*domain.Obligation
	for _, o := range m.obligations {
		if o.TenantID == tenantID {
			obligations = append(obligations, o)
		}
	}
	return obligations, nil
}

func (m *MockObligationRepository) SumAmount(ctx context.Context, tenantID string, filter usecase.ObligationFilter) (decimal.Decimal, error) {
	if m.SumAmountFunc != nil {
		return m.SumAmountFunc(ctx, tenantID, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, o := range m.obligations {
		if o.TenantID == tenantID {
			total = total.Add(o.Amount)
		}
	}
	return total, nil
}

// MockLedgerEntryRepository is a mock implementation of LedgerEntryRepository.
type MockLedgerEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.LedgerEntry

	CreateFunc                func(ctx context.Context, entry *domain.LedgerEntry) error
	CreateTxFunc              func(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error
	GetByIDFunc               func(ctx context.Context, tenantID, id string) (*domain.LedgerEntry, error)
	DeleteTxFunc              func(ctx context.Context, tx usecase.Transaction, tenantID, id string) error
	ListByPeriodFunc          func(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) ([]*domain.LedgerEntry, error)
	SumBeforeFunc             func(ctx context.Context, tenantID, cashAccountID string, before time.Time) (decimal.Decimal, error)
	SumPeriodFunc             func(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error)
	SumCreditsPeriodFunc      func(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error)
	SumDebitsPeriodFunc       func(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error)
	ListRecentSettlementsFunc func(ctx context.Context, tenantID string, limit int) ([]*domain.LedgerEntry, error)
	ExistsForCashAccountFunc  func(ctx context.Context, tenantID, cashAccountID string) (bool, error)
}

func NewMockLedgerEntryRepository() *MockLedgerEntryRepository {
	return &MockLedgerEntryRepository{
		entries: make(map[string]*domain.LedgerEntry),
	}
}

func (m *MockLedgerEntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockLedgerEntryRepository) CreateTx(ctx context.Context, tx usecase.Transaction, entry *domain.LedgerEntry) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, entry)
	}
	return m.Create(ctx, entry)
}

func (m *MockLedgerEntryRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.LedgerEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok && e.TenantID == tenantID {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockLedgerEntryRepository) DeleteTx(ctx context.Context, tx usecase.Transaction, tenantID, id string) error {
	if m.DeleteTxFunc != nil {
		return m.DeleteTxFunc(ctx, tx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MockLedgerEntryRepository) ListByPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) ([]*domain.LedgerEntry, error) {
	if m.ListByPeriodFunc != nil {
		return m.ListByPeriodFunc(ctx, tenantID, cashAccountID, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.TenantID != tenantID {
			continue
		}
		if cashAccountID != "" && e.CashAccountID != cashAccountID {
			continue
		}
		if e.PostedDate.Before(from) || e.PostedDate.After(to) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (m *MockLedgerEntryRepository) SumBefore(ctx context.Context, tenantID, cashAccountID string, before time.Time) (decimal.Decimal, error) {
	if m.SumBeforeFunc != nil {
		return m.SumBeforeFunc(ctx, tenantID, cashAccountID, before)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := decimal.Zero
	for _, e := range m.entries {
		if e.TenantID != tenantID {
			continue
		}
		if cashAccountID != "" && e.CashAccountID != cashAccountID {
			continue
		}
		if e.PostedDate.Before(before) {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (m *MockLedgerEntryRepository) SumPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error) {
	if m.SumPeriodFunc != nil {
		return m.SumPeriodFunc(ctx, tenantID, cashAccountID, from, to)
	}
	entries, err := m.ListByPeriod(ctx, tenantID, cashAccountID, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (m *MockLedgerEntryRepository) SumCreditsPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error) {
	if m.SumCreditsPeriodFunc != nil {
		return m.SumCreditsPeriodFunc(ctx, tenantID, cashAccountID, from, to)
	}
	entries, err := m.ListByPeriod(ctx, tenantID, cashAccountID, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		if e.Kind() == domain.MovementCredit {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (m *MockLedgerEntryRepository) SumDebitsPeriod(ctx context.Context, tenantID, cashAccountID string, from, to time.Time) (decimal.Decimal, error) {
	if m.SumDebitsPeriodFunc != nil {
		return m.SumDebitsPeriodFunc(ctx, tenantID, cashAccountID, from, to)
	}
	entries, err := m.ListByPeriod(ctx, tenantID, cashAccountID, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range entries {
		if e.Kind() == domain.MovementDebit {
			total = total.Add(e.Amount)
		}
	}
	return total, nil
}

func (m *MockLedgerEntryRepository) ListRecentSettlements(ctx context.Context, tenantID string, limit int) ([]*domain.LedgerEntry, error) {
	if m.ListRecentSettlementsFunc != nil {
		return m.ListRecentSettlementsFunc(ctx, tenantID, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.LedgerEntry
	for _, e := range m.entries {
		if e.TenantID == tenantID && e.Settlement() {
			entries = append(entries, e)
		}
		if len(entries) == limit {
			break
		}
	}
	return entries, nil
}

func (m *MockLedgerEntryRepository) ExistsForCashAccount(ctx context.Context, tenantID, cashAccountID string) (bool, error) {
	if m.ExistsForCashAccountFunc != nil {
		return m.ExistsForCashAccountFunc(ctx, tenantID, cashAccountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.TenantID == tenantID && e.CashAccountID == cashAccountID {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of stored entries.
func (m *MockLedgerEntryRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// MockParameterRepository is a mock implementation of ParameterRepository.
type MockParameterRepository struct {
	mu     sync.RWMutex
	params map[string]string

	GetFunc func(ctx context.Context, tenantID, key string) (string, error)
	SetFunc func(ctx context.Context, tenantID, key, value string) error
}

func NewMockParameterRepository() *MockParameterRepository {
	return &MockParameterRepository{
		params: make(map[string]string),
	}
}

func (m *MockParameterRepository) Get(ctx context.Context, tenantID, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, tenantID, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.params[tenantID+"/"+key]; ok {
		return v, nil
	}
	return "", domain.ErrParameterNotFound
}

func (m *MockParameterRepository) Set(ctx context.Context, tenantID, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, tenantID, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params[tenantID+"/"+key] = value
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockDocRefGenerator is a mock implementation of DocRefGenerator.
type MockDocRefGenerator struct {
	GroupFunc  func() string
	SingleFunc func() string
}

func NewMockDocRefGenerator() *MockDocRefGenerator {
	return &MockDocRefGenerator{}
}

func (m *MockDocRefGenerator) Group() string {
	if m.GroupFunc != nil {
		return m.GroupFunc()
	}
	return "1234"
}

func (m *MockDocRefGenerator) Single() string {
	if m.SingleFunc != nil {
		return m.SingleFunc()
	}
	return "12345"
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mu   sync.RWMutex
	data map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// MockRetrier is a mock implementation of Retrier that runs the operation
// once without retry.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		data: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.data[key] = response
	} else {
		m.data[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = response
	return nil
}
