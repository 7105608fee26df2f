package engine

import (
	"sort"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/google/uuid"
)

// monthlyActivity is one budget's history bucketed by calendar month:
// allocation totals, debit totals, and the set of months that saw any
// activity at all (credits included, even though they never add to spent).
type monthlyActivity struct {
	allocated map[domain.Month]int64
	spent     map[domain.Month]int64
	months    map[domain.Month]struct{}
}

func collectActivity(budgetID uuid.UUID, allocations []domain.Allocation, transactions []domain.TransactionSummary) monthlyActivity {
	act := monthlyActivity{
		allocated: make(map[domain.Month]int64),
		spent:     make(map[domain.Month]int64),
		months:    make(map[domain.Month]struct{}),
	}

	for _, a := range allocations {
		if a.BudgetID != budgetID {
			continue
		}
		act.allocated[a.Period] += a.Amount
		act.months[a.Period] = struct{}{}
	}

	for _, tx := range transactions {
		if tx.BudgetID == nil || *tx.BudgetID != budgetID {
			continue
		}
		m := domain.MonthOf(tx.Date)
		act.months[m] = struct{}{}
		if tx.Type == domain.TransactionTypeDebit {
			act.spent[m] += tx.Amount
		}
	}

	return act
}

// priorMonths returns the activity months strictly before month, ascending.
// Sorting the string tokens is chronological because they are zero-padded.
func (a monthlyActivity) priorMonths(month domain.Month) []domain.Month {
	prior := make([]domain.Month, 0, len(a.months))
	for m := range a.months {
		if m.Before(month) {
			prior = append(prior, m)
		}
	}
	sort.Slice(prior, func(i, j int) bool { return prior[i].Before(prior[j]) })
	return prior
}

// replayCarryover walks a spending budget's prior months in chronological
// order. Each step keeps only debt: a surplus dies with its month, a
// deficit is handed to the next month's envelope and compounds while the
// budget stays underwater. Carryover is recomputed from full history on
// every call; it is never persisted or memoized.
func replayCarryover(act monthlyActivity, month domain.Month) int64 {
	var carry int64
	for _, m := range act.priorMonths(month) {
		balance := act.allocated[m] - act.spent[m] + carry
		if balance < 0 {
			carry = balance
		} else {
			carry = 0
		}
	}
	return carry
}

// accumulatedAvailable is the cumulative balance of an accumulating
// envelope: everything allocated up to and including month minus
// everything spent up to and including month.
func accumulatedAvailable(act monthlyActivity, month domain.Month) int64 {
	var available int64
	for m, amount := range act.allocated {
		if !m.After(month) {
			available += amount
		}
	}
	for m, amount := range act.spent {
		if !m.After(month) {
			available -= amount
		}
	}
	return available
}

// summarizeBudget computes one envelope's monthly figures, branching on
// whether the budget type accumulates. Allocated and Spent are always the
// requested month's own activity; only Available and Carryover differ by
// type.
func summarizeBudget(month domain.Month, b domain.Budget, allocations []domain.Allocation, transactions []domain.TransactionSummary) domain.BudgetSummary {
	act := collectActivity(b.ID, allocations, transactions)

	s := domain.BudgetSummary{
		BudgetID:     b.ID,
		Name:         b.Name,
		Type:         b.Type,
		TargetAmount: b.TargetAmount,
		Allocated:    act.allocated[month],
		Spent:        act.spent[month],
	}

	if b.Type.Accumulates() {
		// Carryover stays zero: the cumulative figure already embeds all
		// history, and a separate term would double count.
		s.Available = accumulatedAvailable(act, month)
		return s
	}

	s.Carryover = replayCarryover(act, month)
	s.Available = s.Allocated - s.Spent + s.Carryover
	return s
}
