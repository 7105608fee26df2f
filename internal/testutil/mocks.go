package testutil

import (
	"time"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/websocket"
	"github.com/google/uuid"
)

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets   map[uuid.UUID]*domain.Budget
	Order     []uuid.UUID
	CreateFn  func(budget *domain.Budget) (*domain.Budget, error)
	GetByIDFn func(id uuid.UUID) (*domain.Budget, error)
	GetAllFn  func(includeArchived bool) ([]*domain.Budget, error)
	UpdateFn  func(id uuid.UUID, name string, targetAmount int64) (*domain.Budget, error)
	ArchiveFn func(id uuid.UUID) error
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[uuid.UUID]*domain.Budget),
	}
}

// Create creates a new budget
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	if m.CreateFn != nil {
		return m.CreateFn(budget)
	}
	budget.ID = uuid.New()
	m.Budgets[budget.ID] = budget
	m.Order = append(m.Order, budget.ID)
	return budget, nil
}

// GetByID retrieves a budget by its ID
func (m *MockBudgetRepository) GetByID(id uuid.UUID) (*domain.Budget, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	budget, ok := m.Budgets[id]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	return budget, nil
}

// GetAll retrieves all budgets, optionally including archived ones
func (m *MockBudgetRepository) GetAll(includeArchived bool) ([]*domain.Budget, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(includeArchived)
	}
	budgets := []*domain.Budget{}
	for _, id := range m.Order {
		budget := m.Budgets[id]
		if budget.IsArchived && !includeArchived {
			continue
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}

// Update updates a budget's name and target amount
func (m *MockBudgetRepository) Update(id uuid.UUID, name string, targetAmount int64) (*domain.Budget, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(id, name, targetAmount)
	}
	budget, ok := m.Budgets[id]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	budget.Name = name
	budget.TargetAmount = targetAmount
	budget.UpdatedAt = time.Now()
	return budget, nil
}

// Archive marks a budget as archived
func (m *MockBudgetRepository) Archive(id uuid.UUID) error {
	if m.ArchiveFn != nil {
		return m.ArchiveFn(id)
	}
	budget, ok := m.Budgets[id]
	if !ok {
		return domain.ErrBudgetNotFound
	}
	budget.IsArchived = true
	budget.UpdatedAt = time.Now()
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	m.Budgets[budget.ID] = budget
	m.Order = append(m.Order, budget.ID)
}

// MockAllocationRepository is a mock implementation of domain.AllocationRepository
type MockAllocationRepository struct {
	Allocations []*domain.Allocation
	CreateFn    func(allocation *domain.Allocation) (*domain.Allocation, error)
	GetAllFn    func() ([]*domain.Allocation, error)
}

// NewMockAllocationRepository creates a new MockAllocationRepository
func NewMockAllocationRepository() *MockAllocationRepository {
	return &MockAllocationRepository{
		Allocations: []*domain.Allocation{},
	}
}

// Create creates a new allocation
func (m *MockAllocationRepository) Create(allocation *domain.Allocation) (*domain.Allocation, error) {
	if m.CreateFn != nil {
		return m.CreateFn(allocation)
	}
	allocation.ID = uuid.New()
	m.Allocations = append(m.Allocations, allocation)
	return allocation, nil
}

// GetByBudget retrieves all allocations for a budget
func (m *MockAllocationRepository) GetByBudget(budgetID uuid.UUID) ([]*domain.Allocation, error) {
	allocations := []*domain.Allocation{}
	for _, a := range m.Allocations {
		if a.BudgetID == budgetID {
			allocations = append(allocations, a)
		}
	}
	return allocations, nil
}

// GetByPeriod retrieves all allocations for a period
func (m *MockAllocationRepository) GetByPeriod(period domain.Month) ([]*domain.Allocation, error) {
	allocations := []*domain.Allocation{}
	for _, a := range m.Allocations {
		if a.Period == period {
			allocations = append(allocations, a)
		}
	}
	return allocations, nil
}

// GetAll retrieves every allocation
func (m *MockAllocationRepository) GetAll() ([]*domain.Allocation, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	return m.Allocations, nil
}

// AddAllocation adds an allocation to the mock repository (helper for tests)
func (m *MockAllocationRepository) AddAllocation(allocation *domain.Allocation) {
	m.Allocations = append(m.Allocations, allocation)
}

// MockAccountRepository is a mock implementation of domain.AccountRepository
type MockAccountRepository struct {
	Accounts  map[uuid.UUID]*domain.Account
	Order     []uuid.UUID
	CreateFn  func(account *domain.Account) (*domain.Account, error)
	GetByIDFn func(id uuid.UUID) (*domain.Account, error)
	GetAllFn  func(includeArchived bool) ([]*domain.Account, error)
	UpdateFn  func(id uuid.UUID, name string) (*domain.Account, error)
	ArchiveFn func(id uuid.UUID) error
}

// NewMockAccountRepository creates a new MockAccountRepository
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		Accounts: make(map[uuid.UUID]*domain.Account),
	}
}

// Create creates a new account
func (m *MockAccountRepository) Create(account *domain.Account) (*domain.Account, error) {
	if m.CreateFn != nil {
		return m.CreateFn(account)
	}
	account.ID = uuid.New()
	m.Accounts[account.ID] = account
	m.Order = append(m.Order, account.ID)
	return account, nil
}

// GetByID retrieves an account by its ID
func (m *MockAccountRepository) GetByID(id uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	account, ok := m.Accounts[id]
	if !ok || account.DeletedAt != nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// GetAll retrieves all accounts, optionally including archived ones
func (m *MockAccountRepository) GetAll(includeArchived bool) ([]*domain.Account, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(includeArchived)
	}
	accounts := []*domain.Account{}
	for _, id := range m.Order {
		account := m.Accounts[id]
		if account.DeletedAt != nil && !includeArchived {
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// Update updates an account's name
func (m *MockAccountRepository) Update(id uuid.UUID, name string) (*domain.Account, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(id, name)
	}
	account, ok := m.Accounts[id]
	if !ok || account.DeletedAt != nil {
		return nil, domain.ErrAccountNotFound
	}
	account.Name = name
	account.UpdatedAt = time.Now()
	return account, nil
}

// Archive soft deletes an account
func (m *MockAccountRepository) Archive(id uuid.UUID) error {
	if m.ArchiveFn != nil {
		return m.ArchiveFn(id)
	}
	account, ok := m.Accounts[id]
	if !ok || account.DeletedAt != nil {
		return domain.ErrAccountNotFound
	}
	now := time.Now()
	account.DeletedAt = &now
	return nil
}

// AddAccount adds an account to the mock repository (helper for tests)
func (m *MockAccountRepository) AddAccount(account *domain.Account) {
	m.Accounts[account.ID] = account
	m.Order = append(m.Order, account.ID)
}

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions   map[uuid.UUID]*domain.Transaction
	Order          []uuid.UUID
	CreateFn       func(transaction *domain.Transaction) (*domain.Transaction, error)
	GetByIDFn      func(id uuid.UUID) (*domain.Transaction, error)
	ListFn         func(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error)
	UpdateFn       func(id uuid.UUID, data *domain.UpdateTransactionData) (*domain.Transaction, error)
	SoftDeleteFn   func(id uuid.UUID) error
	AssignBudgetFn func(id uuid.UUID, budgetID *uuid.UUID) (*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	transaction.ID = uuid.New()
	m.Transactions[transaction.ID] = transaction
	m.Order = append(m.Order, transaction.ID)
	return transaction, nil
}

// GetByID retrieves a transaction by its ID
func (m *MockTransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	transaction, ok := m.Transactions[id]
	if !ok || transaction.DeletedAt != nil {
		return nil, domain.ErrTransactionNotFound
	}
	return transaction, nil
}

// List retrieves transactions with optional filters and pagination
func (m *MockTransactionRepository) List(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	if m.ListFn != nil {
		return m.ListFn(filters)
	}

	filtered := []*domain.Transaction{}
	for _, id := range m.Order {
		t := m.Transactions[id]
		if t.DeletedAt != nil {
			continue
		}
		if filters != nil {
			if filters.AccountID != nil && t.AccountID != *filters.AccountID {
				continue
			}
			if filters.BudgetID != nil && (t.BudgetID == nil || *t.BudgetID != *filters.BudgetID) {
				continue
			}
			if filters.StartDate != nil && t.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && t.Date.After(*filters.EndDate) {
				continue
			}
			if filters.Type != nil && t.Type != *filters.Type {
				continue
			}
		}
		filtered = append(filtered, t)
	}

	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)
	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
		}
	}

	totalItems := int64(len(filtered))
	totalPages := int32(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) > 0 {
		totalPages++
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start >= int32(len(filtered)) {
		filtered = []*domain.Transaction{}
	} else {
		if end > int32(len(filtered)) {
			end = int32(len(filtered))
		}
		filtered = filtered[start:end]
	}

	return &domain.PaginatedTransactions{
		Data:       filtered,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

// Update updates a transaction
func (m *MockTransactionRepository) Update(id uuid.UUID, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(id, data)
	}
	transaction, ok := m.Transactions[id]
	if !ok || transaction.DeletedAt != nil {
		return nil, domain.ErrTransactionNotFound
	}
	transaction.AccountID = data.AccountID
	transaction.BudgetID = data.BudgetID
	transaction.Name = data.Name
	transaction.Amount = data.Amount
	transaction.Type = data.Type
	transaction.Date = data.Date
	transaction.ExcludeFromCalculations = data.ExcludeFromCalculations
	transaction.Notes = data.Notes
	transaction.UpdatedAt = time.Now()
	return transaction, nil
}

// SoftDelete soft deletes a transaction
func (m *MockTransactionRepository) SoftDelete(id uuid.UUID) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(id)
	}
	transaction, ok := m.Transactions[id]
	if !ok || transaction.DeletedAt != nil {
		return domain.ErrTransactionNotFound
	}
	now := time.Now()
	transaction.DeletedAt = &now
	return nil
}

// AssignBudget sets or clears a transaction's budget link
func (m *MockTransactionRepository) AssignBudget(id uuid.UUID, budgetID *uuid.UUID) (*domain.Transaction, error) {
	if m.AssignBudgetFn != nil {
		return m.AssignBudgetFn(id, budgetID)
	}
	transaction, ok := m.Transactions[id]
	if !ok || transaction.DeletedAt != nil {
		return nil, domain.ErrTransactionNotFound
	}
	transaction.BudgetID = budgetID
	transaction.UpdatedAt = time.Now()
	return transaction, nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	m.Transactions[transaction.ID] = transaction
	m.Order = append(m.Order, transaction.ID)
}

// MockSnapshotRepository is a mock implementation of domain.SnapshotRepository
type MockSnapshotRepository struct {
	Snapshot *domain.OverviewSnapshot
	LoadFn   func() (*domain.OverviewSnapshot, error)
}

// NewMockSnapshotRepository creates a new MockSnapshotRepository
func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		Snapshot: &domain.OverviewSnapshot{},
	}
}

// Load returns the configured snapshot
func (m *MockSnapshotRepository) Load() (*domain.OverviewSnapshot, error) {
	if m.LoadFn != nil {
		return m.LoadFn()
	}
	return m.Snapshot, nil
}

// AddBudget adds a budget to the snapshot (helper for tests)
func (m *MockSnapshotRepository) AddBudget(budget domain.Budget) {
	m.Snapshot.Budgets = append(m.Snapshot.Budgets, budget)
}

// AddAllocation adds an allocation to the snapshot (helper for tests)
func (m *MockSnapshotRepository) AddAllocation(allocation domain.Allocation) {
	m.Snapshot.Allocations = append(m.Snapshot.Allocations, allocation)
}

// AddTransaction adds a transaction summary to the snapshot (helper for tests)
func (m *MockSnapshotRepository) AddTransaction(summary domain.TransactionSummary) {
	m.Snapshot.Transactions = append(m.Snapshot.Transactions, summary)
}

// AddAccount adds an account balance to the snapshot (helper for tests)
func (m *MockSnapshotRepository) AddAccount(balance domain.AccountBalance) {
	m.Snapshot.Accounts = append(m.Snapshot.Accounts, balance)
}

// MockEventPublisher records published events for assertions
type MockEventPublisher struct {
	Events []websocket.Event
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		Events: []websocket.Event{},
	}
}

// Publish records an event instead of broadcasting it
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.Events = append(m.Events, event)
}
