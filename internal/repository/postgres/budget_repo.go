package postgres

import (
	"context"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

const budgetColumns = `id, name, type, target_amount, is_archived, created_at, updated_at`

// Create creates a new budget
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO budgets (name, type, target_amount)
		VALUES ($1, $2, $3)
		RETURNING `+budgetColumns,
		budget.Name, string(budget.Type), budget.TargetAmount,
	)
	return scanBudget(row)
}

// GetByID retrieves a budget by its ID
func (r *BudgetRepository) GetByID(id uuid.UUID) (*domain.Budget, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+budgetColumns+`
		FROM budgets
		WHERE id = $1`,
		id,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetAll retrieves all budgets, optionally including archived ones
func (r *BudgetRepository) GetAll(includeArchived bool) ([]*domain.Budget, error) {
	ctx := context.Background()

	query := `SELECT ` + budgetColumns + ` FROM budgets`
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []*domain.Budget{}
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// Update updates a budget's name and target amount
func (r *BudgetRepository) Update(id uuid.UUID, name string, targetAmount int64) (*domain.Budget, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE budgets
		SET name = $2, target_amount = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+budgetColumns,
		id, name, targetAmount,
	)
	budget, err := scanBudget(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// Archive marks a budget as archived. Archived budgets are hidden from
// summaries but their allocations still count toward all-time totals.
func (r *BudgetRepository) Archive(id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		UPDATE budgets
		SET is_archived = TRUE, updated_at = now()
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}

func scanBudget(row pgx.Row) (*domain.Budget, error) {
	var b domain.Budget
	var budgetType string
	err := row.Scan(&b.ID, &b.Name, &budgetType, &b.TargetAmount, &b.IsArchived, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Type = domain.BudgetType(budgetType)
	return &b, nil
}
