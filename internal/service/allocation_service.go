package service

import (
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// AllocationService handles allocation-related business logic.
// Allocations are append-only: a mistaken allocation is corrected by
// adding a compensating one, never by editing history.
type AllocationService struct {
	allocationRepo domain.AllocationRepository
	budgetRepo     domain.BudgetRepository
	eventPublisher websocket.EventPublisher
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(allocationRepo domain.AllocationRepository, budgetRepo domain.BudgetRepository) *AllocationService {
	return &AllocationService{
		allocationRepo: allocationRepo,
		budgetRepo:     budgetRepo,
	}
}

// SetEventPublisher sets the WebSocket event publisher
func (s *AllocationService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *AllocationService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateAllocationInput holds the input for creating an allocation
type CreateAllocationInput struct {
	BudgetID uuid.UUID
	Amount   int64
	Period   string
}

// CreateAllocation assigns money from the unallocated pool to a budget
// for one period
func (s *AllocationService) CreateAllocation(input CreateAllocationInput) (*domain.Allocation, error) {
	period, err := domain.ParseMonth(input.Period)
	if err != nil {
		return nil, domain.ErrInvalidPeriod
	}

	// Amounts are signable: a negative allocation moves money back to the
	// unallocated pool. Only zero is meaningless.
	if input.Amount == 0 {
		return nil, domain.ErrInvalidAmount
	}

	// Validate budget exists and is active
	budget, err := s.budgetRepo.GetByID(input.BudgetID)
	if err != nil {
		return nil, err
	}
	if budget.IsArchived {
		return nil, domain.ErrBudgetArchived
	}

	allocation := &domain.Allocation{
		BudgetID: input.BudgetID,
		Amount:   input.Amount,
		Period:   period,
	}

	created, err := s.allocationRepo.Create(allocation)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("allocation_id", created.ID.String()).
		Str("budget_id", created.BudgetID.String()).
		Str("period", created.Period.String()).
		Msg("Allocation created")

	s.publishEvent(websocket.AllocationCreated(created))

	return created, nil
}

// GetAllocations retrieves allocations, optionally narrowed to a period
// and/or budget
func (s *AllocationService) GetAllocations(budgetID *uuid.UUID, period *domain.Month) ([]*domain.Allocation, error) {
	if period != nil {
		if !period.Valid() {
			return nil, domain.ErrInvalidPeriod
		}
		allocations, err := s.allocationRepo.GetByPeriod(*period)
		if err != nil {
			return nil, err
		}
		if budgetID == nil {
			return allocations, nil
		}
		filtered := []*domain.Allocation{}
		for _, a := range allocations {
			if a.BudgetID == *budgetID {
				filtered = append(filtered, a)
			}
		}
		return filtered, nil
	}

	if budgetID != nil {
		return s.allocationRepo.GetByBudget(*budgetID)
	}

	return s.allocationRepo.GetAll()
}
