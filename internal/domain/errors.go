package domain

import "errors"

// Domain errors
var (
	ErrNotFound               = errors.New("resource not found")
	ErrAlreadyExists          = errors.New("resource already exists")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternalError          = errors.New("internal error")
	ErrInvalidMonth           = errors.New("month must be a YYYY-MM token")
	ErrInvalidPeriod          = errors.New("allocation period must be a YYYY-MM token")
	ErrBudgetNotFound         = errors.New("budget not found")
	ErrBudgetArchived         = errors.New("budget is archived")
	ErrAccountNotFound        = errors.New("account not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrAllocationNotFound     = errors.New("allocation not found")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrNotesTooLong           = errors.New("notes exceed maximum length")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidBudgetType      = errors.New("invalid budget type")
	ErrInvalidAccountRole     = errors.New("invalid account role")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// Validation constants
const (
	MaxNameLength  = 255
	MaxNotesLength = 1000
)
