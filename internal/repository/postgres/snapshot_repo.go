package postgres

import (
	"context"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotRepository implements domain.SnapshotRepository using PostgreSQL
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Load reads everything the overview computation consumes inside one
// repeatable-read read-only transaction, so a write landing between two
// of the reads can never produce a half-updated overview.
//
// Archived budgets and accounts are included: archival hides an entity
// from listings but never rewrites history, and all-time totals need the
// full record.
func (r *SnapshotRepository) Load() (*domain.OverviewSnapshot, error) {
	ctx := context.Background()

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	snapshot := &domain.OverviewSnapshot{}

	if snapshot.Budgets, err = loadBudgets(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Allocations, err = loadAllocations(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Transactions, err = loadTransactionSummaries(ctx, tx); err != nil {
		return nil, err
	}
	if snapshot.Accounts, err = loadAccountBalances(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func loadBudgets(ctx context.Context, tx pgx.Tx) ([]domain.Budget, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+budgetColumns+`
		FROM budgets
		ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *budget)
	}
	return budgets, rows.Err()
}

func loadAllocations(ctx context.Context, tx pgx.Tx) ([]domain.Allocation, error) {
	rows, err := tx.Query(ctx, `
		SELECT `+allocationColumns+`
		FROM allocations
		ORDER BY period, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	allocations := []domain.Allocation{}
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, *allocation)
	}
	return allocations, rows.Err()
}

func loadTransactionSummaries(ctx context.Context, tx pgx.Tx) ([]domain.TransactionSummary, error) {
	rows, err := tx.Query(ctx, `
		SELECT t.budget_id, t.amount, t.type, t.transaction_date, a.role, t.exclude_from_calculations
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE t.deleted_at IS NULL`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []domain.TransactionSummary{}
	for rows.Next() {
		var s domain.TransactionSummary
		var txType, role string
		err := rows.Scan(&s.BudgetID, &s.Amount, &txType, &s.Date, &role, &s.ExcludeFromCalculations)
		if err != nil {
			return nil, err
		}
		s.Type = domain.TransactionType(txType)
		s.AccountRole = domain.AccountRole(role)
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func loadAccountBalances(ctx context.Context, tx pgx.Tx) ([]domain.AccountBalance, error) {
	rows, err := tx.Query(ctx, `
		SELECT a.id, a.role, a.initial_balance,
			COALESCE(a.initial_balance, 0) + COALESCE(SUM(
				CASE WHEN t.type = 'credit' THEN t.amount ELSE -t.amount END
			), 0) AS balance
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id AND t.deleted_at IS NULL
		GROUP BY a.id, a.role, a.initial_balance
		ORDER BY a.created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := []domain.AccountBalance{}
	for rows.Next() {
		var b domain.AccountBalance
		var role string
		err := rows.Scan(&b.AccountID, &role, &b.InitialBalance, &b.Balance)
		if err != nil {
			return nil, err
		}
		b.Role = domain.AccountRole(role)
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
