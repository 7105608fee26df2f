package engine

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/google/uuid"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestCompute_SingleSpendingBudget(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 500000, Period: "2026-01"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &groceries.ID, Amount: 120000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 15), AccountRole: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-01", []domain.Budget{groceries}, allocations, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(overview.BudgetSummaries) != 1 {
		t.Fatalf("Expected 1 budget summary, got %d", len(overview.BudgetSummaries))
	}

	s := overview.BudgetSummaries[0]
	if s.Allocated != 500000 {
		t.Errorf("Expected allocated 500000, got %d", s.Allocated)
	}
	if s.Spent != 120000 {
		t.Errorf("Expected spent 120000, got %d", s.Spent)
	}
	if s.Carryover != 0 {
		t.Errorf("Expected carryover 0, got %d", s.Carryover)
	}
	// allocated (500000) - spent (120000) = 380000
	if s.Available != 380000 {
		t.Errorf("Expected available 380000, got %d", s.Available)
	}
}

func TestCompute_SurplusDoesNotCarryForward(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 500000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 100000, Period: "2026-02"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &groceries.ID, Amount: 120000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 15), AccountRole: domain.AccountRoleOperational},
		{BudgetID: &groceries.ID, Amount: 300000, Type: domain.TransactionTypeDebit, Date: day(2026, time.February, 10), AccountRole: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-02", []domain.Budget{groceries}, allocations, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := overview.BudgetSummaries[0]
	// January closed 380000 in surplus, none of which survives the month
	if s.Carryover != 0 {
		t.Errorf("Expected carryover 0, got %d", s.Carryover)
	}
	// allocated (100000) - spent (300000) = -200000
	if s.Available != -200000 {
		t.Errorf("Expected available -200000, got %d", s.Available)
	}
}

func TestCompute_DeficitCarriesForward(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 500000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 100000, Period: "2026-02"},
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 50000, Period: "2026-03"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &groceries.ID, Amount: 120000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 15), AccountRole: domain.AccountRoleOperational},
		{BudgetID: &groceries.ID, Amount: 300000, Type: domain.TransactionTypeDebit, Date: day(2026, time.February, 10), AccountRole: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-03", []domain.Budget{groceries}, allocations, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := overview.BudgetSummaries[0]
	// February closed at -200000 and the debt follows into March
	if s.Carryover != -200000 {
		t.Errorf("Expected carryover -200000, got %d", s.Carryover)
	}
	// allocated (50000) - spent (0) + carryover (-200000) = -150000
	if s.Available != -150000 {
		t.Errorf("Expected available -150000, got %d", s.Available)
	}
}

func TestCompute_DeficitPersistsThroughInactiveMonths(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 100000, Period: "2026-01"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &groceries.ID, Amount: 300000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 20), AccountRole: domain.AccountRoleOperational},
	}

	// February and March have no activity at all
	overview, err := Compute("2026-04", []domain.Budget{groceries}, allocations, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := overview.BudgetSummaries[0]
	if s.Carryover != -200000 {
		t.Errorf("Expected carryover -200000, got %d", s.Carryover)
	}
	if s.Available != -200000 {
		t.Errorf("Expected available -200000, got %d", s.Available)
	}
}

func TestCompute_ReadyToAssign(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}
	initial := int64(1000000)

	accounts := []domain.AccountBalance{
		{AccountID: uuid.New(), Balance: 950000, Role: domain.AccountRoleOperational, InitialBalance: &initial},
	}
	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 200000, Period: "2026-01"},
	}
	transactions := []domain.TransactionSummary{
		{Amount: 50000, Type: domain.TransactionTypeCredit, Date: day(2026, time.January, 5), AccountRole: domain.AccountRoleOperational, ExcludeFromCalculations: true},
	}

	overview, err := Compute("2026-01", []domain.Budget{groceries}, allocations, transactions, accounts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// inflows: initial (1000000) - excluded credit (50000) = 950000
	// ready to assign: 950000 - allocated ever (200000) = 750000
	if overview.ReadyToAssign != 750000 {
		t.Errorf("Expected ready to assign 750000, got %d", overview.ReadyToAssign)
	}
}

func TestCompute_ReadyToAssignIndependentOfMonth(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}
	initial := int64(800000)

	accounts := []domain.AccountBalance{
		{AccountID: uuid.New(), Balance: 800000, Role: domain.AccountRoleOperational, InitialBalance: &initial},
	}
	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 300000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 100000, Period: "2026-03"},
	}
	transactions := []domain.TransactionSummary{
		{Amount: 200000, Type: domain.TransactionTypeCredit, Date: day(2026, time.February, 1), AccountRole: domain.AccountRoleOperational},
	}

	// inflows (800000 + 200000) - allocated ever (400000) = 600000, whatever month is asked
	for _, month := range []domain.Month{"2026-01", "2026-02", "2026-06"} {
		overview, err := Compute(month, []domain.Budget{groceries}, allocations, transactions, accounts)
		if err != nil {
			t.Fatalf("Expected no error for %s, got %v", month, err)
		}
		if overview.ReadyToAssign != 600000 {
			t.Errorf("Month %s: expected ready to assign 600000, got %d", month, overview.ReadyToAssign)
		}
	}
}

func TestCompute_SavingsBudgetAccumulates(t *testing.T) {
	vacation := domain.Budget{ID: uuid.New(), Name: "Vacation", Type: domain.BudgetTypeSavings}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: vacation.ID, Amount: 100000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: vacation.ID, Amount: 100000, Period: "2026-02"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &vacation.ID, Amount: 50000, Type: domain.TransactionTypeDebit, Date: day(2026, time.February, 20), AccountRole: domain.AccountRoleSavings},
	}

	overview, err := Compute("2026-02", []domain.Budget{vacation}, allocations, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	s := overview.BudgetSummaries[0]
	if s.Allocated != 100000 {
		t.Errorf("Expected allocated 100000, got %d", s.Allocated)
	}
	if s.Spent != 50000 {
		t.Errorf("Expected spent 50000, got %d", s.Spent)
	}
	if s.Carryover != 0 {
		t.Errorf("Expected carryover 0 for accumulating budget, got %d", s.Carryover)
	}
	// allocated to date (200000) - spent to date (50000) = 150000
	if s.Available != 150000 {
		t.Errorf("Expected available 150000, got %d", s.Available)
	}
}

func TestCompute_SavingsBudgetIgnoresFutureActivity(t *testing.T) {
	vacation := domain.Budget{ID: uuid.New(), Name: "Vacation", Type: domain.BudgetTypeSavings}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: vacation.ID, Amount: 100000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: vacation.ID, Amount: 100000, Period: "2026-02"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &vacation.ID, Amount: 50000, Type: domain.TransactionTypeDebit, Date: day(2026, time.February, 20), AccountRole: domain.AccountRoleSavings},
	}

	overview, err := Compute("2026-01", []domain.Budget{vacation}, allocations, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// February's allocation and debit are in the future as of January
	s := overview.BudgetSummaries[0]
	if s.Available != 100000 {
		t.Errorf("Expected available 100000, got %d", s.Available)
	}
}

func TestCompute_AccumulatingTypes(t *testing.T) {
	types := []domain.BudgetType{domain.BudgetTypeSavings, domain.BudgetTypeGoal, domain.BudgetTypePeriodic}

	for _, bt := range types {
		t.Run(string(bt), func(t *testing.T) {
			b := domain.Budget{ID: uuid.New(), Name: "Envelope", Type: bt}
			allocations := []domain.Allocation{
				{ID: uuid.New(), BudgetID: b.ID, Amount: 70000, Period: "2026-01"},
				{ID: uuid.New(), BudgetID: b.ID, Amount: 30000, Period: "2026-02"},
			}

			overview, err := Compute("2026-02", []domain.Budget{b}, allocations, nil, nil)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}

			s := overview.BudgetSummaries[0]
			if s.Carryover != 0 {
				t.Errorf("Expected carryover 0, got %d", s.Carryover)
			}
			if s.Available != 100000 {
				t.Errorf("Expected available 100000, got %d", s.Available)
			}
		})
	}
}

func TestCompute_TotalSpentCountsEveryDebitInMonth(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	transactions := []domain.TransactionSummary{
		{BudgetID: &groceries.ID, Amount: 100000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 10), AccountRole: domain.AccountRoleOperational},
		{Amount: 40000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 12), AccountRole: domain.AccountRoleSavings},
		{Amount: 60000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 14), AccountRole: domain.AccountRoleOperational, ExcludeFromCalculations: true},
		{Amount: 400000, Type: domain.TransactionTypeCredit, Date: day(2026, time.January, 1), AccountRole: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-01", []domain.Budget{groceries}, nil, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// 100000 + 40000 (savings account) + 60000 (excluded) = 200000
	if overview.TotalSpent != 200000 {
		t.Errorf("Expected total spent 200000, got %d", overview.TotalSpent)
	}
	// income (400000) - spent (200000) over income (400000) = 0.5
	if overview.SavingsRate != 0.5 {
		t.Errorf("Expected savings rate 0.5, got %f", overview.SavingsRate)
	}
	// inflows: credit (400000) - excluded debit (60000) = 340000, nothing allocated
	if overview.ReadyToAssign != 340000 {
		t.Errorf("Expected ready to assign 340000, got %d", overview.ReadyToAssign)
	}
}

func TestCompute_ArchivedBudgetsLeftOut(t *testing.T) {
	active := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}
	archived := domain.Budget{ID: uuid.New(), Name: "Old Hobby", Type: domain.BudgetTypeSpending, IsArchived: true}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: active.ID, Amount: 100000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: archived.ID, Amount: 50000, Period: "2026-01"},
	}

	overview, err := Compute("2026-01", []domain.Budget{active, archived}, allocations, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(overview.BudgetSummaries) != 1 {
		t.Fatalf("Expected 1 budget summary, got %d", len(overview.BudgetSummaries))
	}
	if overview.BudgetSummaries[0].BudgetID != active.ID {
		t.Errorf("Expected summary for the active budget, got %s", overview.BudgetSummaries[0].BudgetID)
	}

	// Archived budgets keep their allocation history in the totals
	if overview.TotalAllocated != 150000 {
		t.Errorf("Expected total allocated 150000, got %d", overview.TotalAllocated)
	}
}

func TestCompute_UnassignedDebitsStayOutOfEnvelopes(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	transactions := []domain.TransactionSummary{
		{Amount: 75000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 8), AccountRole: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-01", []domain.Budget{groceries}, nil, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if overview.TotalSpent != 75000 {
		t.Errorf("Expected total spent 75000, got %d", overview.TotalSpent)
	}
	if overview.BudgetSummaries[0].Spent != 0 {
		t.Errorf("Expected budget spent 0, got %d", overview.BudgetSummaries[0].Spent)
	}
}

func TestCompute_SavingsRateZeroWithoutIncome(t *testing.T) {
	transactions := []domain.TransactionSummary{
		{Amount: 120000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 3), AccountRole: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-01", nil, nil, transactions, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if overview.SavingsRate != 0 {
		t.Errorf("Expected savings rate 0, got %f", overview.SavingsRate)
	}
}

func TestCompute_CapitalAndAvailableFunds(t *testing.T) {
	accounts := []domain.AccountBalance{
		{AccountID: uuid.New(), Balance: 2000000, Role: domain.AccountRoleSavings},
		{AccountID: uuid.New(), Balance: 150000, Role: domain.AccountRoleOperational},
		{AccountID: uuid.New(), Balance: 90000, Role: domain.AccountRoleOperational},
	}

	overview, err := Compute("2026-01", nil, nil, nil, accounts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if overview.CapitalBalance != 2000000 {
		t.Errorf("Expected capital balance 2000000, got %d", overview.CapitalBalance)
	}
	// 150000 + 90000 = 240000
	if overview.AvailableFunds != 240000 {
		t.Errorf("Expected available funds 240000, got %d", overview.AvailableFunds)
	}
}

func TestCompute_AllocationsForSamePeriodSum(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}

	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 100000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 50000, Period: "2026-01"},
	}

	overview, err := Compute("2026-01", []domain.Budget{groceries}, allocations, nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if overview.BudgetSummaries[0].Allocated != 150000 {
		t.Errorf("Expected allocated 150000, got %d", overview.BudgetSummaries[0].Allocated)
	}
	if overview.TotalAllocated != 150000 {
		t.Errorf("Expected total allocated 150000, got %d", overview.TotalAllocated)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}
	vacation := domain.Budget{ID: uuid.New(), Name: "Vacation", Type: domain.BudgetTypeSavings}
	initial := int64(500000)

	budgets := []domain.Budget{groceries, vacation}
	accounts := []domain.AccountBalance{
		{AccountID: uuid.New(), Balance: 600000, Role: domain.AccountRoleOperational, InitialBalance: &initial},
	}
	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: groceries.ID, Amount: 200000, Period: "2026-01"},
		{ID: uuid.New(), BudgetID: vacation.ID, Amount: 100000, Period: "2026-01"},
	}
	transactions := []domain.TransactionSummary{
		{BudgetID: &groceries.ID, Amount: 80000, Type: domain.TransactionTypeDebit, Date: day(2026, time.January, 9), AccountRole: domain.AccountRoleOperational},
		{Amount: 300000, Type: domain.TransactionTypeCredit, Date: day(2026, time.January, 2), AccountRole: domain.AccountRoleOperational},
	}

	first, err := Compute("2026-01", budgets, allocations, transactions, accounts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Compute("2026-01", budgets, allocations, transactions, accounts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical overviews, got %+v and %+v", first, second)
	}
}

func TestCompute_InvalidMonth(t *testing.T) {
	for _, month := range []domain.Month{"", "2026-13", "2026-1", "202601", "2026-01-15"} {
		_, err := Compute(month, nil, nil, nil, nil)
		if !errors.Is(err, domain.ErrInvalidMonth) {
			t.Errorf("Month %q: expected ErrInvalidMonth, got %v", month, err)
		}
	}
}

func TestCompute_InvalidAllocationPeriod(t *testing.T) {
	allocations := []domain.Allocation{
		{ID: uuid.New(), BudgetID: uuid.New(), Amount: 10000, Period: "2026-1"},
	}

	_, err := Compute("2026-01", nil, allocations, nil, nil)
	if !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Errorf("Expected ErrInvalidPeriod, got %v", err)
	}
}
