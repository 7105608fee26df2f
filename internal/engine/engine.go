// Package engine computes monthly budget overviews. Every function is a
// deterministic transform of its inputs: no I/O, no clock, no shared
// state, so concurrent calls over the same snapshot never interfere.
package engine

import (
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
)

// Compute builds the overview for month from collections the caller has
// already fetched as one consistent snapshot.
//
// It fails fast with domain.ErrInvalidMonth when month is not a YYYY-MM
// token, and with domain.ErrInvalidPeriod when any allocation carries a
// malformed period. A bad period is a data-integrity fault, not a row to
// skip: the call returns a complete, internally consistent overview or
// nothing.
func Compute(
	month domain.Month,
	budgets []domain.Budget,
	allocations []domain.Allocation,
	transactions []domain.TransactionSummary,
	accounts []domain.AccountBalance,
) (*domain.MonthlyOverview, error) {
	if !month.Valid() {
		return nil, domain.ErrInvalidMonth
	}
	for _, a := range allocations {
		if !a.Period.Valid() {
			return nil, domain.ErrInvalidPeriod
		}
	}

	totals := aggregateTotals(month, allocations, transactions, accounts)

	// Input order is preserved so identical snapshots give identical
	// output. The archived filter lives here, not in the caller.
	summaries := make([]domain.BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		if b.IsArchived {
			continue
		}
		summaries = append(summaries, summarizeBudget(month, b, allocations, transactions))
	}

	return &domain.MonthlyOverview{
		Month:           month,
		CapitalBalance:  totals.capitalBalance,
		AvailableFunds:  totals.availableFunds,
		ReadyToAssign:   totals.totalInflows - totals.totalAllocatedEver,
		TotalAllocated:  totals.totalAllocated,
		TotalSpent:      totals.totalSpent,
		SavingsRate:     savingsRate(totals.income, totals.totalSpent),
		BudgetSummaries: summaries,
	}, nil
}

// savingsRate is the only floating-point figure in the overview: a
// dimensionless ratio, zero whenever the month had no operational income.
func savingsRate(income, totalSpent int64) float64 {
	if income <= 0 {
		return 0
	}
	return float64(income-totalSpent) / float64(income)
}
