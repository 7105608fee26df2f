package service

import (
	"strings"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BudgetService handles budget-related business logic
type BudgetService struct {
	budgetRepo     domain.BudgetRepository
	eventPublisher websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateBudgetInput holds the input for creating a budget
type CreateBudgetInput struct {
	Name         string
	Type         domain.BudgetType
	TargetAmount int64
}

// CreateBudget creates a new budget envelope
func (s *BudgetService) CreateBudget(input CreateBudgetInput) (*domain.Budget, error) {
	// Validate name
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}

	// Validate budget type
	if !domain.ValidBudgetType(input.Type) {
		return nil, domain.ErrInvalidBudgetType
	}

	// Target amount is optional but never negative
	if input.TargetAmount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	budget := &domain.Budget{
		Name:         name,
		Type:         input.Type,
		TargetAmount: input.TargetAmount,
	}

	created, err := s.budgetRepo.Create(budget)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("budget_id", created.ID.String()).
		Str("type", string(created.Type)).
		Msg("Budget created")

	s.publishEvent(websocket.BudgetCreated(created))

	return created, nil
}

// GetBudgets retrieves all budgets, optionally including archived ones
func (s *BudgetService) GetBudgets(includeArchived bool) ([]*domain.Budget, error) {
	return s.budgetRepo.GetAll(includeArchived)
}

// GetBudgetByID retrieves a budget by ID
func (s *BudgetService) GetBudgetByID(id uuid.UUID) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(id)
}

// UpdateBudget updates a budget's name and target amount.
// The budget type is fixed at creation because changing it would silently
// rewrite the carryover history of every month the budget has lived through.
func (s *BudgetService) UpdateBudget(id uuid.UUID, name string, targetAmount int64) (*domain.Budget, error) {
	// Validate name
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}
	if len(name) > domain.MaxNameLength {
		return nil, domain.ErrNameTooLong
	}
	if targetAmount < 0 {
		return nil, domain.ErrInvalidAmount
	}

	budget, err := s.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if budget.IsArchived {
		return nil, domain.ErrBudgetArchived
	}

	updated, err := s.budgetRepo.Update(id, name, targetAmount)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.BudgetUpdated(updated))

	return updated, nil
}

// ArchiveBudget archives a budget. Its allocation and transaction history
// keeps feeding the totals; only the envelope disappears from listings.
func (s *BudgetService) ArchiveBudget(id uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if budget.IsArchived {
		return nil
	}

	if err := s.budgetRepo.Archive(id); err != nil {
		return err
	}

	log.Info().
		Str("budget_id", id.String()).
		Msg("Budget archived")

	s.publishEvent(websocket.BudgetArchived(DeletedPayload{ID: id}))

	return nil
}

// DeletedPayload carries the identifier of an archived or removed entity
type DeletedPayload struct {
	ID uuid.UUID `json:"id"`
}
