package service

import (
	"strings"
	"time"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/websocket"
	"github.com/google/uuid"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	accountRepo     domain.AccountRepository
	budgetRepo      domain.BudgetRepository
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, accountRepo domain.AccountRepository, budgetRepo domain.BudgetRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
	}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	AccountID               uuid.UUID
	BudgetID                *uuid.UUID
	Name                    string
	Amount                  int64
	Type                    domain.TransactionType
	Date                    *time.Time
	ExcludeFromCalculations bool
	Notes                   *string
}

// CreateTransaction creates a new transaction with validation
func (s *TransactionService) CreateTransaction(input CreateTransactionInput) (*domain.Transaction, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	// Validate amount (must be positive; direction comes from the type)
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// Validate transaction type
	if !domain.ValidTransactionType(input.Type) {
		return nil, domain.ErrInvalidTransactionType
	}

	// Validate account exists
	if _, err := s.accountRepo.GetByID(input.AccountID); err != nil {
		return nil, domain.ErrAccountNotFound
	}

	// Validate budget link if provided
	if input.BudgetID != nil {
		budget, err := s.budgetRepo.GetByID(*input.BudgetID)
		if err != nil {
			return nil, domain.ErrBudgetNotFound
		}
		if budget.IsArchived {
			return nil, domain.ErrBudgetArchived
		}
	}

	// Default date to today if not provided
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date != nil {
		date = *input.Date
	}

	// Trim and validate notes if provided
	var notes *string
	if input.Notes != nil {
		trimmed := strings.TrimSpace(*input.Notes)
		if trimmed != "" {
			if len(trimmed) > domain.MaxNotesLength {
				return nil, domain.ErrNotesTooLong
			}
			notes = &trimmed
		}
	}

	transaction := &domain.Transaction{
		AccountID:               input.AccountID,
		BudgetID:                input.BudgetID,
		Name:                    name,
		Amount:                  input.Amount,
		Type:                    input.Type,
		Date:                    date,
		ExcludeFromCalculations: input.ExcludeFromCalculations,
		Notes:                   notes,
	}

	created, err := s.transactionRepo.Create(transaction)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.TransactionCreated(created))

	return created, nil
}

// GetTransactions retrieves transactions with optional filters and pagination
func (s *TransactionService) GetTransactions(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	return s.transactionRepo.List(filters)
}

// GetTransactionByID retrieves a transaction by ID
func (s *TransactionService) GetTransactionByID(id uuid.UUID) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// UpdateTransactionInput holds the input for updating a transaction
type UpdateTransactionInput struct {
	AccountID               uuid.UUID
	BudgetID                *uuid.UUID
	Name                    string
	Amount                  int64
	Type                    domain.TransactionType
	Date                    time.Time
	ExcludeFromCalculations bool
	Notes                   *string
}

// UpdateTransaction updates an existing transaction with validation
func (s *TransactionService) UpdateTransaction(id uuid.UUID, input UpdateTransactionInput) (*domain.Transaction, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	// Validate amount (must be positive)
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	// Validate transaction type
	if !domain.ValidTransactionType(input.Type) {
		return nil, domain.ErrInvalidTransactionType
	}

	// Validate account exists
	if _, err := s.accountRepo.GetByID(input.AccountID); err != nil {
		return nil, domain.ErrAccountNotFound
	}

	// Validate budget link if provided
	if input.BudgetID != nil {
		budget, err := s.budgetRepo.GetByID(*input.BudgetID)
		if err != nil {
			return nil, domain.ErrBudgetNotFound
		}
		if budget.IsArchived {
			return nil, domain.ErrBudgetArchived
		}
	}

	// Trim and validate notes if provided
	var notes *string
	if input.Notes != nil {
		trimmed := strings.TrimSpace(*input.Notes)
		if trimmed != "" {
			if len(trimmed) > domain.MaxNotesLength {
				return nil, domain.ErrNotesTooLong
			}
			notes = &trimmed
		}
	}

	updated, err := s.transactionRepo.Update(id, &domain.UpdateTransactionData{
		AccountID:               input.AccountID,
		BudgetID:                input.BudgetID,
		Name:                    name,
		Amount:                  input.Amount,
		Type:                    input.Type,
		Date:                    input.Date,
		ExcludeFromCalculations: input.ExcludeFromCalculations,
		Notes:                   notes,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.TransactionUpdated(updated))

	return updated, nil
}

// DeleteTransaction soft-deletes a transaction
func (s *TransactionService) DeleteTransaction(id uuid.UUID) error {
	if err := s.transactionRepo.SoftDelete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.TransactionDeleted(DeletedPayload{ID: id}))

	return nil
}

// AssignBudget links a transaction to a budget, or clears the link when
// budgetID is nil. This is how spending lands in an envelope after the fact.
func (s *TransactionService) AssignBudget(id uuid.UUID, budgetID *uuid.UUID) (*domain.Transaction, error) {
	if budgetID != nil {
		budget, err := s.budgetRepo.GetByID(*budgetID)
		if err != nil {
			return nil, domain.ErrBudgetNotFound
		}
		if budget.IsArchived {
			return nil, domain.ErrBudgetArchived
		}
	}

	updated, err := s.transactionRepo.AssignBudget(id, budgetID)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.TransactionBudgetAssigned(updated))

	return updated, nil
}
