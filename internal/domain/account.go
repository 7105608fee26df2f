package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole partitions accounts for the overview computation.
// Operational accounts fund day-to-day spending and Ready to Assign;
// savings-role accounts count toward capital and stay out of income and
// inflow accounting.
type AccountRole string

const (
	AccountRoleOperational AccountRole = "operational"
	AccountRoleSavings     AccountRole = "savings"
)

// ValidAccountRole reports whether r is a known account role.
func ValidAccountRole(r AccountRole) bool {
	return r == AccountRoleOperational || r == AccountRoleSavings
}

// Account holds money. InitialBalance is the balance the account carried
// when it was added; a nil value contributes nothing to inflow accounting.
type Account struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Role           AccountRole `json:"role"`
	InitialBalance *int64      `json:"initialBalance,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	DeletedAt      *time.Time  `json:"deletedAt,omitempty"`
}

// AccountBalance is the overview input row for one account: its current
// balance plus the fields inflow accounting needs.
type AccountBalance struct {
	AccountID      uuid.UUID   `json:"accountId"`
	Balance        int64       `json:"balance"`
	Role           AccountRole `json:"role"`
	InitialBalance *int64      `json:"initialBalance,omitempty"`
}

type AccountRepository interface {
	Create(account *Account) (*Account, error)
	GetByID(id uuid.UUID) (*Account, error)
	GetAll(includeArchived bool) ([]*Account, error)
	Update(id uuid.UUID, name string) (*Account, error)
	Archive(id uuid.UUID) error
}
