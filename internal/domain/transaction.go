package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType is the direction of a transaction. Amounts are always
// non-negative magnitudes; direction lives here.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeCredit || t == TransactionTypeDebit
}

type Transaction struct {
	ID                      uuid.UUID       `json:"id"`
	AccountID               uuid.UUID       `json:"accountId"`
	BudgetID                *uuid.UUID      `json:"budgetId,omitempty"`
	Name                    string          `json:"name"`
	Amount                  int64           `json:"amount"`
	Type                    TransactionType `json:"type"`
	Date                    time.Time       `json:"date"`
	ExcludeFromCalculations bool            `json:"excludeFromCalculations"`
	Notes                   *string         `json:"notes,omitempty"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
	DeletedAt               *time.Time      `json:"deletedAt,omitempty"`
}

// TransactionSummary is the projection row the overview computation
// consumes: one row per live transaction with the account role already
// joined in. A nil BudgetID means the transaction affects global totals
// but no envelope.
type TransactionSummary struct {
	BudgetID                *uuid.UUID      `json:"budgetId,omitempty"`
	Amount                  int64           `json:"amount"`
	Type                    TransactionType `json:"type"`
	Date                    time.Time       `json:"date"`
	AccountRole             AccountRole     `json:"accountRole"`
	ExcludeFromCalculations bool            `json:"excludeFromCalculations"`
}

type TransactionFilters struct {
	AccountID *uuid.UUID
	BudgetID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *TransactionType
	Page      int32
	PageSize  int32
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type PaginatedTransactions struct {
	Data       []*Transaction `json:"data"`
	Page       int32          `json:"page"`
	PageSize   int32          `json:"pageSize"`
	TotalItems int64          `json:"totalItems"`
	TotalPages int32          `json:"totalPages"`
}

// UpdateTransactionData carries the full replacement state for an update.
type UpdateTransactionData struct {
	AccountID               uuid.UUID
	BudgetID                *uuid.UUID
	Name                    string
	Amount                  int64
	Type                    TransactionType
	Date                    time.Time
	ExcludeFromCalculations bool
	Notes                   *string
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(id uuid.UUID) (*Transaction, error)
	List(filters *TransactionFilters) (*PaginatedTransactions, error)
	Update(id uuid.UUID, data *UpdateTransactionData) (*Transaction, error)
	SoftDelete(id uuid.UUID) error
	AssignBudget(id uuid.UUID, budgetID *uuid.UUID) (*Transaction, error)
}
