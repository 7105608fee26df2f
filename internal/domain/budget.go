package domain

import (
	"time"

	"github.com/google/uuid"
)

type BudgetType string

const (
	BudgetTypeSpending BudgetType = "spending"
	BudgetTypeSavings  BudgetType = "savings"
	BudgetTypeGoal     BudgetType = "goal"
	BudgetTypePeriodic BudgetType = "periodic"
)

// ValidBudgetType reports whether t is a known budget type.
func ValidBudgetType(t BudgetType) bool {
	switch t {
	case BudgetTypeSpending, BudgetTypeSavings, BudgetTypeGoal, BudgetTypePeriodic:
		return true
	}
	return false
}

// Accumulates reports whether available funds persist across month
// boundaries. Spending envelopes reset monthly; every other type keeps a
// cumulative balance.
func (t BudgetType) Accumulates() bool {
	switch t {
	case BudgetTypeSavings, BudgetTypeGoal, BudgetTypePeriodic:
		return true
	}
	return false
}

// Budget is a named envelope of money. TargetAmount is informational only;
// all amounts are integer minor currency units. Archived budgets are
// hidden from monthly summaries but their history still counts toward
// all-time totals.
type Budget struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Type         BudgetType `json:"type"`
	TargetAmount int64      `json:"targetAmount"`
	IsArchived   bool       `json:"isArchived"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(id uuid.UUID) (*Budget, error)
	GetAll(includeArchived bool) ([]*Budget, error)
	Update(id uuid.UUID, name string, targetAmount int64) (*Budget, error)
	Archive(id uuid.UUID) error
}
