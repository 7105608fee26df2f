package service

import (
	"errors"
	"testing"
	"time"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/testutil"
	"github.com/google/uuid"
)

func TestGetMonthOverview_Success(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}
	snapshotRepo.AddBudget(groceries)
	snapshotRepo.AddAllocation(domain.Allocation{
		ID:       uuid.New(),
		BudgetID: groceries.ID,
		Amount:   500000,
		Period:   "2026-01",
	})
	snapshotRepo.AddTransaction(domain.TransactionSummary{
		BudgetID:    &groceries.ID,
		Amount:      120000,
		Type:        domain.TransactionTypeDebit,
		Date:        time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		AccountRole: domain.AccountRoleOperational,
	})

	overview, err := overviewService.GetMonthOverview("2026-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if overview.Month != "2026-01" {
		t.Errorf("Expected month 2026-01, got %s", overview.Month)
	}
	if len(overview.BudgetSummaries) != 1 {
		t.Fatalf("Expected 1 budget summary, got %d", len(overview.BudgetSummaries))
	}
	if overview.BudgetSummaries[0].Available != 380000 {
		t.Errorf("Expected available 380000, got %d", overview.BudgetSummaries[0].Available)
	}
}

func TestGetMonthOverview_InvalidMonth(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	_, err := overviewService.GetMonthOverview("2026-13")
	if err != domain.ErrInvalidMonth {
		t.Errorf("Expected ErrInvalidMonth, got %v", err)
	}
}

func TestGetMonthOverview_SnapshotError(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	loadErr := errors.New("connection refused")
	snapshotRepo.LoadFn = func() (*domain.OverviewSnapshot, error) {
		return nil, loadErr
	}

	_, err := overviewService.GetMonthOverview("2026-01")
	if err != loadErr {
		t.Errorf("Expected snapshot error to propagate, got %v", err)
	}
}

func TestGetMonthOverview_CorruptAllocationPeriod(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	snapshotRepo.AddAllocation(domain.Allocation{
		ID:       uuid.New(),
		BudgetID: uuid.New(),
		Amount:   10000,
		Period:   "garbage",
	})

	_, err := overviewService.GetMonthOverview("2026-01")
	if !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Errorf("Expected ErrInvalidPeriod, got %v", err)
	}
}

func TestGetYearOverview_TwelveMonths(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	overviews, err := overviewService.GetYearOverview(2026)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(overviews) != 12 {
		t.Fatalf("Expected 12 overviews, got %d", len(overviews))
	}
	if overviews[0].Month != "2026-01" {
		t.Errorf("Expected first month 2026-01, got %s", overviews[0].Month)
	}
	if overviews[11].Month != "2026-12" {
		t.Errorf("Expected last month 2026-12, got %s", overviews[11].Month)
	}
}

func TestGetYearOverview_DeficitVisibleAcrossMonths(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	groceries := domain.Budget{ID: uuid.New(), Name: "Groceries", Type: domain.BudgetTypeSpending}
	snapshotRepo.AddBudget(groceries)
	snapshotRepo.AddAllocation(domain.Allocation{
		ID:       uuid.New(),
		BudgetID: groceries.ID,
		Amount:   100000,
		Period:   "2026-01",
	})
	snapshotRepo.AddTransaction(domain.TransactionSummary{
		BudgetID:    &groceries.ID,
		Amount:      300000,
		Type:        domain.TransactionTypeDebit,
		Date:        time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		AccountRole: domain.AccountRoleOperational,
	})

	overviews, err := overviewService.GetYearOverview(2026)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// January closes at -200000; every later month inherits the debt
	january := overviews[0].BudgetSummaries[0]
	if january.Carryover != 0 {
		t.Errorf("Expected January carryover 0, got %d", january.Carryover)
	}
	if january.Available != -200000 {
		t.Errorf("Expected January available -200000, got %d", january.Available)
	}

	march := overviews[2].BudgetSummaries[0]
	if march.Carryover != -200000 {
		t.Errorf("Expected March carryover -200000, got %d", march.Carryover)
	}
}

func TestGetYearOverview_InvalidYear(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	for _, year := range []int{1999, 2101, -1} {
		_, err := overviewService.GetYearOverview(year)
		if err != domain.ErrInvalidInput {
			t.Errorf("Year %d: expected ErrInvalidInput, got %v", year, err)
		}
	}
}

func TestGetYearOverview_SnapshotLoadedOnce(t *testing.T) {
	snapshotRepo := testutil.NewMockSnapshotRepository()
	overviewService := NewOverviewService(snapshotRepo)

	calls := 0
	snapshotRepo.LoadFn = func() (*domain.OverviewSnapshot, error) {
		calls++
		return &domain.OverviewSnapshot{}, nil
	}

	_, err := overviewService.GetYearOverview(2026)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if calls != 1 {
		t.Errorf("Expected 1 snapshot load, got %d", calls)
	}
}
