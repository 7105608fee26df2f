package postgres

import (
	"context"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AllocationRepository implements domain.AllocationRepository using PostgreSQL
type AllocationRepository struct {
	pool *pgxpool.Pool
}

// NewAllocationRepository creates a new AllocationRepository
func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{pool: pool}
}

const allocationColumns = `id, budget_id, amount, period, created_at`

// Create creates a new allocation. Allocations are immutable facts;
// there is no update or delete.
func (r *AllocationRepository) Create(allocation *domain.Allocation) (*domain.Allocation, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO allocations (budget_id, amount, period)
		VALUES ($1, $2, $3)
		RETURNING `+allocationColumns,
		allocation.BudgetID, allocation.Amount, string(allocation.Period),
	)
	return scanAllocation(row)
}

// GetByBudget retrieves all allocations for a budget
func (r *AllocationRepository) GetByBudget(budgetID uuid.UUID) ([]*domain.Allocation, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+allocationColumns+`
		FROM allocations
		WHERE budget_id = $1
		ORDER BY period, created_at`,
		budgetID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAllocations(rows)
}

// GetByPeriod retrieves all allocations for a calendar month
func (r *AllocationRepository) GetByPeriod(period domain.Month) ([]*domain.Allocation, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+allocationColumns+`
		FROM allocations
		WHERE period = $1
		ORDER BY created_at`,
		string(period),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAllocations(rows)
}

// GetAll retrieves every allocation
func (r *AllocationRepository) GetAll() ([]*domain.Allocation, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+allocationColumns+`
		FROM allocations
		ORDER BY period, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAllocations(rows)
}

func collectAllocations(rows pgx.Rows) ([]*domain.Allocation, error) {
	allocations := []*domain.Allocation{}
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, allocation)
	}
	return allocations, rows.Err()
}

func scanAllocation(row pgx.Row) (*domain.Allocation, error) {
	var a domain.Allocation
	var period string
	err := row.Scan(&a.ID, &a.BudgetID, &a.Amount, &period, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Period = domain.Month(period)
	return &a, nil
}
