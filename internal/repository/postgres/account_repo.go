package postgres

import (
	"context"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository implements domain.AccountRepository using PostgreSQL
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, name, role, initial_balance, created_at, updated_at, deleted_at`

// Create creates a new account
func (r *AccountRepository) Create(account *domain.Account) (*domain.Account, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (name, role, initial_balance)
		VALUES ($1, $2, $3)
		RETURNING `+accountColumns,
		account.Name, string(account.Role), account.InitialBalance,
	)
	return scanAccount(row)
}

// GetByID retrieves an account by its ID
func (r *AccountRepository) GetByID(id uuid.UUID) (*domain.Account, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	account, err := scanAccount(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// GetAll retrieves all accounts, optionally including archived ones
func (r *AccountRepository) GetAll(includeArchived bool) ([]*domain.Account, error) {
	ctx := context.Background()

	query := `SELECT ` + accountColumns + ` FROM accounts`
	if !includeArchived {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := []*domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// Update updates an account's name
func (r *AccountRepository) Update(id uuid.UUID, name string) (*domain.Account, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE accounts
		SET name = $2, updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING `+accountColumns,
		id, name,
	)
	account, err := scanAccount(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Archive marks an account as deleted (sets deleted_at timestamp).
// Archived accounts disappear from listings but their transactions and
// initial balance stay in overview accounting.
func (r *AccountRepository) Archive(id uuid.UUID) error {
	ctx := context.Background()
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var role string
	err := row.Scan(&a.ID, &a.Name, &role, &a.InitialBalance, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err != nil {
		return nil, err
	}
	a.Role = domain.AccountRole(role)
	return &a, nil
}
