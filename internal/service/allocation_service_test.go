package service

import (
	"testing"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/testutil"
	"github.com/google/uuid"
)

func TestCreateAllocation_Success(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{ID: budgetID, Name: "Groceries", Type: domain.BudgetTypeSpending})

	allocation, err := allocationService.CreateAllocation(CreateAllocationInput{
		BudgetID: budgetID,
		Amount:   500000,
		Period:   "2026-01",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if allocation.BudgetID != budgetID {
		t.Errorf("Expected budget ID %s, got %s", budgetID, allocation.BudgetID)
	}
	if allocation.Amount != 500000 {
		t.Errorf("Expected amount 500000, got %d", allocation.Amount)
	}
	if allocation.Period != "2026-01" {
		t.Errorf("Expected period 2026-01, got %s", allocation.Period)
	}
}

func TestCreateAllocation_InvalidPeriod(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{ID: budgetID, Name: "Groceries", Type: domain.BudgetTypeSpending})

	for _, period := range []string{"", "2026-1", "2026-13", "202601", "2026-01-15"} {
		_, err := allocationService.CreateAllocation(CreateAllocationInput{
			BudgetID: budgetID,
			Amount:   500000,
			Period:   period,
		})
		if err != domain.ErrInvalidPeriod {
			t.Errorf("Period %q: expected ErrInvalidPeriod, got %v", period, err)
		}
	}
}

func TestCreateAllocation_ZeroAmount(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{ID: budgetID, Name: "Groceries", Type: domain.BudgetTypeSpending})

	_, err := allocationService.CreateAllocation(CreateAllocationInput{
		BudgetID: budgetID,
		Amount:   0,
		Period:   "2026-01",
	})
	if err != domain.ErrInvalidAmount {
		t.Errorf("Expected ErrInvalidAmount, got %v", err)
	}
}

func TestCreateAllocation_NegativeAmountRemovesFunds(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{ID: budgetID, Name: "Groceries", Type: domain.BudgetTypeSpending})

	allocation, err := allocationService.CreateAllocation(CreateAllocationInput{
		BudgetID: budgetID,
		Amount:   -100000,
		Period:   "2026-01",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if allocation.Amount != -100000 {
		t.Errorf("Expected amount -100000, got %d", allocation.Amount)
	}
}

func TestCreateAllocation_BudgetNotFound(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	_, err := allocationService.CreateAllocation(CreateAllocationInput{
		BudgetID: uuid.New(),
		Amount:   500000,
		Period:   "2026-01",
	})
	if err != domain.ErrBudgetNotFound {
		t.Errorf("Expected ErrBudgetNotFound, got %v", err)
	}
}

func TestCreateAllocation_ArchivedBudget(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{ID: budgetID, Name: "Old", Type: domain.BudgetTypeSpending, IsArchived: true})

	_, err := allocationService.CreateAllocation(CreateAllocationInput{
		BudgetID: budgetID,
		Amount:   500000,
		Period:   "2026-01",
	})
	if err != domain.ErrBudgetArchived {
		t.Errorf("Expected ErrBudgetArchived, got %v", err)
	}
}

func TestCreateAllocation_PublishesEvent(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)
	mockPublisher := testutil.NewMockEventPublisher()
	allocationService.SetEventPublisher(mockPublisher)

	budgetID := uuid.New()
	budgetRepo.AddBudget(&domain.Budget{ID: budgetID, Name: "Groceries", Type: domain.BudgetTypeSpending})

	_, err := allocationService.CreateAllocation(CreateAllocationInput{
		BudgetID: budgetID,
		Amount:   500000,
		Period:   "2026-01",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(mockPublisher.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(mockPublisher.Events))
	}
	if mockPublisher.Events[0].Type != "allocation.created" {
		t.Errorf("Expected event type allocation.created, got %s", mockPublisher.Events[0].Type)
	}
}

func TestGetAllocations_All(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: uuid.New(), Amount: 100000, Period: "2026-01"})
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: uuid.New(), Amount: 200000, Period: "2026-02"})

	allocations, err := allocationService.GetAllocations(nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(allocations) != 2 {
		t.Errorf("Expected 2 allocations, got %d", len(allocations))
	}
}

func TestGetAllocations_ByBudget(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: budgetID, Amount: 100000, Period: "2026-01"})
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: uuid.New(), Amount: 200000, Period: "2026-01"})

	allocations, err := allocationService.GetAllocations(&budgetID, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(allocations) != 1 {
		t.Fatalf("Expected 1 allocation, got %d", len(allocations))
	}
	if allocations[0].BudgetID != budgetID {
		t.Errorf("Expected budget ID %s, got %s", budgetID, allocations[0].BudgetID)
	}
}

func TestGetAllocations_ByPeriod(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: uuid.New(), Amount: 100000, Period: "2026-01"})
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: uuid.New(), Amount: 200000, Period: "2026-02"})

	period := domain.Month("2026-02")
	allocations, err := allocationService.GetAllocations(nil, &period)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(allocations) != 1 {
		t.Fatalf("Expected 1 allocation, got %d", len(allocations))
	}
	if allocations[0].Period != "2026-02" {
		t.Errorf("Expected period 2026-02, got %s", allocations[0].Period)
	}
}

func TestGetAllocations_ByBudgetAndPeriod(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	budgetID := uuid.New()
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: budgetID, Amount: 100000, Period: "2026-01"})
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: budgetID, Amount: 150000, Period: "2026-02"})
	allocationRepo.AddAllocation(&domain.Allocation{ID: uuid.New(), BudgetID: uuid.New(), Amount: 200000, Period: "2026-02"})

	period := domain.Month("2026-02")
	allocations, err := allocationService.GetAllocations(&budgetID, &period)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(allocations) != 1 {
		t.Fatalf("Expected 1 allocation, got %d", len(allocations))
	}
	if allocations[0].Amount != 150000 {
		t.Errorf("Expected amount 150000, got %d", allocations[0].Amount)
	}
}

func TestGetAllocations_InvalidPeriod(t *testing.T) {
	allocationRepo := testutil.NewMockAllocationRepository()
	budgetRepo := testutil.NewMockBudgetRepository()
	allocationService := NewAllocationService(allocationRepo, budgetRepo)

	period := domain.Month("2026-1")
	_, err := allocationService.GetAllocations(nil, &period)
	if err != domain.ErrInvalidPeriod {
		t.Errorf("Expected ErrInvalidPeriod, got %v", err)
	}
}
