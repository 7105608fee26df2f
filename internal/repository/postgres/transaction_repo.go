package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, account_id, budget_id, name, amount, type, transaction_date,
	exclude_from_calculations, notes, created_at, updated_at, deleted_at`

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (account_id, budget_id, name, amount, type, transaction_date,
			exclude_from_calculations, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		transaction.AccountID,
		transaction.BudgetID,
		transaction.Name,
		transaction.Amount,
		string(transaction.Type),
		transaction.Date,
		transaction.ExcludeFromCalculations,
		transaction.Notes,
	)
	return scanTransaction(row)
}

// GetByID retrieves a live transaction by its ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// List retrieves transactions with optional filters and pagination
func (r *TransactionRepository) List(filters *domain.TransactionFilters) (*domain.PaginatedTransactions, error) {
	ctx := context.Background()

	// Set default pagination values
	page := int32(1)
	pageSize := int32(domain.DefaultPageSize)

	if filters != nil {
		if filters.Page > 0 {
			page = filters.Page
		}
		if filters.PageSize > 0 {
			pageSize = filters.PageSize
			if pageSize > domain.MaxPageSize {
				pageSize = domain.MaxPageSize
			}
		}
	}

	offset := (page - 1) * pageSize

	where := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if filters != nil {
		if filters.AccountID != nil {
			args = append(args, *filters.AccountID)
			where = append(where, fmt.Sprintf("account_id = $%d", len(args)))
		}
		if filters.BudgetID != nil {
			args = append(args, *filters.BudgetID)
			where = append(where, fmt.Sprintf("budget_id = $%d", len(args)))
		}
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			where = append(where, fmt.Sprintf("transaction_date >= $%d", len(args)))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			where = append(where, fmt.Sprintf("transaction_date <= $%d", len(args)))
		}
		if filters.Type != nil {
			args = append(args, string(*filters.Type))
			where = append(where, fmt.Sprintf("type = $%d", len(args)))
		}
	}

	whereClause := strings.Join(where, " AND ")

	var totalItems int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE `+whereClause, args...).Scan(&totalItems)
	if err != nil {
		return nil, err
	}

	args = append(args, pageSize, offset)
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE %s
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $%d OFFSET $%d`,
		transactionColumns, whereClause, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*domain.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	totalPages := int32((totalItems + int64(pageSize) - 1) / int64(pageSize))

	return &domain.PaginatedTransactions{
		Data:       transactions,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}

// Update replaces a transaction's mutable state
func (r *TransactionRepository) Update(id uuid.UUID, data *domain.UpdateTransactionData) (*domain.Transaction, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE transactions
		SET account_id = $2, budget_id = $3, name = $4, amount = $5, type = $6,
			transaction_date = $7, exclude_from_calculations = $8, notes = $9,
			updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING `+transactionColumns,
		id,
		data.AccountID,
		data.BudgetID,
		data.Name,
		data.Amount,
		string(data.Type),
		data.Date,
		data.ExcludeFromCalculations,
		data.Notes,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// SoftDelete marks a transaction as deleted (sets deleted_at timestamp)
func (r *TransactionRepository) SoftDelete(id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		UPDATE transactions
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// AssignBudget links a transaction to a budget, or clears the link when
// budgetID is nil
func (r *TransactionRepository) AssignBudget(id uuid.UUID, budgetID *uuid.UUID) (*domain.Transaction, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE transactions
		SET budget_id = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING `+transactionColumns,
		id, budgetID,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	var txType string
	err := row.Scan(
		&t.ID,
		&t.AccountID,
		&t.BudgetID,
		&t.Name,
		&t.Amount,
		&txType,
		&t.Date,
		&t.ExcludeFromCalculations,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Type = domain.TransactionType(txType)
	return &t, nil
}
