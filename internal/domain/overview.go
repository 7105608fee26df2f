package domain

import "github.com/google/uuid"

// BudgetSummary is one envelope's figures for the requested month. All
// amounts are minor units. Carryover is nonzero only for spending budgets:
// accumulating types already fold history into Available, so a separate
// carryover term would double count.
type BudgetSummary struct {
	BudgetID     uuid.UUID  `json:"budgetId"`
	Name         string     `json:"name"`
	Type         BudgetType `json:"type"`
	TargetAmount int64      `json:"targetAmount"`
	Allocated    int64      `json:"allocated"`
	Spent        int64      `json:"spent"`
	Carryover    int64      `json:"carryover"`
	Available    int64      `json:"available"`
}

// MonthlyOverview is the complete result of one monthly computation.
// ReadyToAssign reconciles against all-time inflows: every unit of money
// that ever entered an operational account either sits in an envelope or
// in this pool.
type MonthlyOverview struct {
	Month           Month           `json:"month"`
	CapitalBalance  int64           `json:"capitalBalance"`
	AvailableFunds  int64           `json:"availableFunds"`
	ReadyToAssign   int64           `json:"readyToAssign"`
	TotalAllocated  int64           `json:"totalAllocated"`
	TotalSpent      int64           `json:"totalSpent"`
	SavingsRate     float64         `json:"savingsRate"`
	BudgetSummaries []BudgetSummary `json:"budgetSummaries"`
}

// OverviewSnapshot is one consistent read of everything the monthly
// computation consumes.
type OverviewSnapshot struct {
	Budgets      []Budget
	Allocations  []Allocation
	Transactions []TransactionSummary
	Accounts     []AccountBalance
}

// SnapshotRepository loads an OverviewSnapshot from a single consistent
// view of the store, so concurrent writes can never produce a
// half-updated overview.
type SnapshotRepository interface {
	Load() (*OverviewSnapshot, error)
}
