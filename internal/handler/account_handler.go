package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccountRequest represents the create account request body
type CreateAccountRequest struct {
	Name           string `json:"name"`
	Role           string `json:"role"`
	InitialBalance string `json:"initialBalance,omitempty"`
}

// UpdateAccountRequest represents the update account request body
type UpdateAccountRequest struct {
	Name string `json:"name"`
}

// AccountResponse represents an account in API responses
type AccountResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	InitialBalance string  `json:"initialBalance"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
	DeletedAt      *string `json:"deletedAt,omitempty"`
}

// CreateAccount handles POST /api/v1/accounts
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	// Parse initial balance; absent means no opening contribution
	var initialBalance *int64
	if req.InitialBalance != "" {
		parsed, err := parseMoney(req.InitialBalance)
		if err != nil {
			return NewValidationError(c, "Invalid initial balance", []ValidationError{
				{Field: "initialBalance", Message: "Must be a decimal number with at most two decimal places"},
			})
		}
		initialBalance = &parsed
	}

	account, err := h.accountService.CreateAccount(service.CreateAccountInput{
		Name:           req.Name,
		Role:           domain.AccountRole(req.Role),
		InitialBalance: initialBalance,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		}
		if errors.Is(err, domain.ErrInvalidAccountRole) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "role", Message: "Role must be one of: operational, savings"},
			})
		}
		log.Error().Err(err).Msg("Failed to create account")
		return NewInternalError(c, "Failed to create account")
	}

	log.Info().Str("account_id", account.ID.String()).Str("name", account.Name).Msg("Account created")

	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// GetAccounts handles GET /api/v1/accounts
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	includeArchived := c.QueryParam("includeArchived") == "true"

	accounts, err := h.accountService.GetAccounts(includeArchived)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get accounts")
		return NewInternalError(c, "Failed to get accounts")
	}

	response := make([]AccountResponse, len(accounts))
	for i, account := range accounts {
		response[i] = toAccountResponse(account)
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateAccount handles PUT /api/v1/accounts/:id
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	var req UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	account, err := h.accountService.UpdateAccount(id, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return NewNotFoundError(c, "Account not found")
		}
		if errors.Is(err, domain.ErrNameRequired) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name is required"},
			})
		}
		if errors.Is(err, domain.ErrNameTooLong) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "name", Message: "Name must be 255 characters or less"},
			})
		}
		log.Error().Err(err).Str("account_id", id.String()).Msg("Failed to update account")
		return NewInternalError(c, "Failed to update account")
	}

	log.Info().Str("account_id", account.ID.String()).Str("name", account.Name).Msg("Account updated")
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// ArchiveAccount handles DELETE /api/v1/accounts/:id
func (h *AccountHandler) ArchiveAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid account ID", nil)
	}

	if err := h.accountService.ArchiveAccount(id); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return NewNotFoundError(c, "Account not found")
		}
		log.Error().Err(err).Str("account_id", id.String()).Msg("Failed to archive account")
		return NewInternalError(c, "Failed to archive account")
	}

	log.Info().Str("account_id", id.String()).Msg("Account archived")
	return c.NoContent(http.StatusNoContent)
}

// Helper function to convert domain.Account to AccountResponse
func toAccountResponse(account *domain.Account) AccountResponse {
	var initialBalance int64
	if account.InitialBalance != nil {
		initialBalance = *account.InitialBalance
	}
	resp := AccountResponse{
		ID:             account.ID.String(),
		Name:           account.Name,
		Role:           string(account.Role),
		InitialBalance: moneyString(initialBalance),
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      account.UpdatedAt.Format(time.RFC3339),
	}
	if account.DeletedAt != nil {
		deletedAt := account.DeletedAt.Format(time.RFC3339)
		resp.DeletedAt = &deletedAt
	}
	return resp
}
