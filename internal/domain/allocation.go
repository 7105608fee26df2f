package domain

import (
	"time"

	"github.com/google/uuid"
)

// Allocation moves money into an envelope for one calendar month. It is an
// immutable fact: corrections are new allocations (negative amounts remove
// funds), and multiple allocations for the same budget and period simply
// sum.
type Allocation struct {
	ID        uuid.UUID `json:"id"`
	BudgetID  uuid.UUID `json:"budgetId"`
	Amount    int64     `json:"amount"`
	Period    Month     `json:"period"`
	CreatedAt time.Time `json:"createdAt"`
}

type AllocationRepository interface {
	Create(allocation *Allocation) (*Allocation, error)
	GetByBudget(budgetID uuid.UUID) ([]*Allocation, error)
	GetByPeriod(period Month) ([]*Allocation, error)
	GetAll() ([]*Allocation, error)
}
