package engine

import (
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
)

// overviewTotals holds the global aggregates of one computation.
// totalInflows and totalAllocatedEver are all-time figures; the other
// fields are scoped to the requested month.
type overviewTotals struct {
	capitalBalance     int64
	availableFunds     int64
	totalInflows       int64
	totalAllocatedEver int64
	totalAllocated     int64
	totalSpent         int64
	income             int64
}

func aggregateTotals(
	month domain.Month,
	allocations []domain.Allocation,
	transactions []domain.TransactionSummary,
	accounts []domain.AccountBalance,
) overviewTotals {
	var t overviewTotals

	for _, acc := range accounts {
		switch acc.Role {
		case domain.AccountRoleSavings:
			t.capitalBalance += acc.Balance
		case domain.AccountRoleOperational:
			t.availableFunds += acc.Balance
			if acc.InitialBalance != nil {
				t.totalInflows += *acc.InitialBalance
			}
		}
	}

	for _, a := range allocations {
		t.totalAllocatedEver += a.Amount
		if a.Period == month {
			t.totalAllocated += a.Amount
		}
	}

	for _, tx := range transactions {
		inMonth := domain.MonthOf(tx.Date) == month

		// Headline spend counts every debit in the month, whatever the
		// account role or exclusion flag says. Income is narrower on
		// purpose: operational, non-excluded credits only.
		if tx.Type == domain.TransactionTypeDebit && inMonth {
			t.totalSpent += tx.Amount
		}

		if tx.AccountRole != domain.AccountRoleOperational {
			continue
		}
		if tx.ExcludeFromCalculations {
			// Excluded operational transactions are backed out of all-time
			// inflows regardless of direction.
			t.totalInflows -= tx.Amount
			continue
		}
		if tx.Type == domain.TransactionTypeCredit {
			t.totalInflows += tx.Amount
			if inMonth {
				t.income += tx.Amount
			}
		}
	}

	return t
}
