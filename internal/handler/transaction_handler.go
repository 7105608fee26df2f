package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	AccountID               string  `json:"accountId"`
	BudgetID                *string `json:"budgetId,omitempty"`
	Name                    string  `json:"name"`
	Amount                  string  `json:"amount"`
	Type                    string  `json:"type"`
	Date                    *string `json:"date,omitempty"`
	ExcludeFromCalculations bool    `json:"excludeFromCalculations,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
}

// UpdateTransactionRequest represents the update transaction request body
type UpdateTransactionRequest struct {
	AccountID               string  `json:"accountId"`
	BudgetID                *string `json:"budgetId,omitempty"`
	Name                    string  `json:"name"`
	Amount                  string  `json:"amount"`
	Type                    string  `json:"type"`
	Date                    string  `json:"date"`
	ExcludeFromCalculations bool    `json:"excludeFromCalculations,omitempty"`
	Notes                   *string `json:"notes,omitempty"`
}

// AssignBudgetRequest represents the assign budget request body.
// A null budgetId clears the link.
type AssignBudgetRequest struct {
	BudgetID *string `json:"budgetId"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID                      string  `json:"id"`
	AccountID               string  `json:"accountId"`
	BudgetID                *string `json:"budgetId,omitempty"`
	Name                    string  `json:"name"`
	Amount                  string  `json:"amount"`
	Type                    string  `json:"type"`
	Date                    string  `json:"date"`
	ExcludeFromCalculations bool    `json:"excludeFromCalculations"`
	Notes                   *string `json:"notes,omitempty"`
	CreatedAt               string  `json:"createdAt"`
	UpdatedAt               string  `json:"updatedAt"`
}

// PaginatedTransactionsResponse represents paginated transactions in API responses
type PaginatedTransactionsResponse struct {
	Data       []TransactionResponse `json:"data"`
	Page       int32                 `json:"page"`
	PageSize   int32                 `json:"pageSize"`
	TotalItems int64                 `json:"totalItems"`
	TotalPages int32                 `json:"totalPages"`
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Create a new credit or debit transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "accountId", Message: "Must be a valid UUID"},
		})
	}

	var budgetID *uuid.UUID
	if req.BudgetID != nil && *req.BudgetID != "" {
		parsed, err := uuid.Parse(*req.BudgetID)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "budgetId", Message: "Must be a valid UUID"},
			})
		}
		budgetID = &parsed
	}

	amount, err := parseMoney(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a decimal number with at most two decimal places"},
		})
	}

	// Parse transaction date if provided
	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		date = &parsed
	}

	transaction, err := h.transactionService.CreateTransaction(service.CreateTransactionInput{
		AccountID:               accountID,
		BudgetID:                budgetID,
		Name:                    req.Name,
		Amount:                  amount,
		Type:                    domain.TransactionType(req.Type),
		Date:                    date,
		ExcludeFromCalculations: req.ExcludeFromCalculations,
		Notes:                   req.Notes,
	})
	if err != nil {
		if mapped := mapTransactionError(c, err); mapped != nil {
			return mapped
		}
		log.Error().Err(err).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	log.Info().Str("transaction_id", transaction.ID.String()).Str("name", transaction.Name).Msg("Transaction created")

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// GetTransactions godoc
// @Summary List transactions
// @Description Get paginated transactions with optional filters
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountId query string false "Filter by account ID"
// @Param budgetId query string false "Filter by budget ID"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param type query string false "Transaction type (credit or debit)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page" default(20)
// @Success 200 {object} PaginatedTransactionsResponse
// @Failure 400 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	// Parse filters and pagination
	filters := &domain.TransactionFilters{
		Page:     1,
		PageSize: domain.DefaultPageSize,
	}

	if accountIDStr := c.QueryParam("accountId"); accountIDStr != "" {
		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			return NewValidationError(c, "Invalid accountId", nil)
		}
		filters.AccountID = &accountID
	}

	if budgetIDStr := c.QueryParam("budgetId"); budgetIDStr != "" {
		budgetID, err := uuid.Parse(budgetIDStr)
		if err != nil {
			return NewValidationError(c, "Invalid budgetId", nil)
		}
		filters.BudgetID = &budgetID
	}

	if startDateStr := c.QueryParam("startDate"); startDateStr != "" {
		parsed, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return NewValidationError(c, "Invalid startDate format (use YYYY-MM-DD)", nil)
		}
		filters.StartDate = &parsed
	}

	if endDateStr := c.QueryParam("endDate"); endDateStr != "" {
		parsed, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return NewValidationError(c, "Invalid endDate format (use YYYY-MM-DD)", nil)
		}
		filters.EndDate = &parsed
	}

	if typeStr := c.QueryParam("type"); typeStr != "" {
		transactionType := domain.TransactionType(typeStr)
		if !domain.ValidTransactionType(transactionType) {
			return NewValidationError(c, "Invalid type (must be 'credit' or 'debit')", nil)
		}
		filters.Type = &transactionType
	}

	if pageStr := c.QueryParam("page"); pageStr != "" {
		var page int32
		if _, err := parseIntParam(pageStr, &page); err != nil || page < 1 {
			return NewValidationError(c, "Invalid page (must be positive integer)", nil)
		}
		filters.Page = page
	}

	if pageSizeStr := c.QueryParam("pageSize"); pageSizeStr != "" {
		var pageSize int32
		if _, err := parseIntParam(pageSizeStr, &pageSize); err != nil || pageSize < 1 {
			return NewValidationError(c, "Invalid pageSize (must be positive integer)", nil)
		}
		if pageSize > domain.MaxPageSize {
			pageSize = domain.MaxPageSize
		}
		filters.PageSize = pageSize
	}

	result, err := h.transactionService.GetTransactions(filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get transactions")
		return NewInternalError(c, "Failed to get transactions")
	}

	response := PaginatedTransactionsResponse{
		Data:       make([]TransactionResponse, len(result.Data)),
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}
	for i, transaction := range result.Data {
		response.Data[i] = toTransactionResponse(transaction)
	}

	return c.JSON(http.StatusOK, response)
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Update an existing transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Transaction update request"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "accountId", Message: "Must be a valid UUID"},
		})
	}

	var budgetID *uuid.UUID
	if req.BudgetID != nil && *req.BudgetID != "" {
		parsed, err := uuid.Parse(*req.BudgetID)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "budgetId", Message: "Must be a valid UUID"},
			})
		}
		budgetID = &parsed
	}

	amount, err := parseMoney(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a decimal number with at most two decimal places"},
		})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	transaction, err := h.transactionService.UpdateTransaction(id, service.UpdateTransactionInput{
		AccountID:               accountID,
		BudgetID:                budgetID,
		Name:                    req.Name,
		Amount:                  amount,
		Type:                    domain.TransactionType(req.Type),
		Date:                    date,
		ExcludeFromCalculations: req.ExcludeFromCalculations,
		Notes:                   req.Notes,
	})
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		if mapped := mapTransactionError(c, err); mapped != nil {
			return mapped
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	log.Info().Str("transaction_id", transaction.ID.String()).Msg("Transaction updated")
	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Description Soft delete a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	log.Info().Str("transaction_id", id.String()).Msg("Transaction deleted (soft)")
	return c.NoContent(http.StatusNoContent)
}

// AssignBudget godoc
// @Summary Assign a transaction to a budget
// @Description Link a transaction to a budget envelope, or clear the link with a null budgetId
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body AssignBudgetRequest true "Budget assignment request"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id}/budget [patch]
func (h *TransactionHandler) AssignBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req AssignBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var budgetID *uuid.UUID
	if req.BudgetID != nil && *req.BudgetID != "" {
		parsed, err := uuid.Parse(*req.BudgetID)
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "budgetId", Message: "Must be a valid UUID"},
			})
		}
		budgetID = &parsed
	}

	transaction, err := h.transactionService.AssignBudget(id, budgetID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "budgetId", Message: "Budget not found"},
			})
		}
		if errors.Is(err, domain.ErrBudgetArchived) {
			return NewConflictError(c, "Budget is archived")
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to assign budget")
		return NewInternalError(c, "Failed to assign budget")
	}

	log.Info().Str("transaction_id", id.String()).Msg("Transaction budget assignment updated")
	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// mapTransactionError maps shared validation errors to problem responses.
// Returns nil when the error is not a known validation failure.
func mapTransactionError(c echo.Context, err error) error {
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
	if errors.Is(err, domain.ErrInvalidAmount) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be positive"},
		})
	}
	if errors.Is(err, domain.ErrInvalidTransactionType) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "type", Message: "Type must be one of: credit, debit"},
		})
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "accountId", Message: "Account not found"},
		})
	}
	if errors.Is(err, domain.ErrBudgetNotFound) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "budgetId", Message: "Budget not found"},
		})
	}
	if errors.Is(err, domain.ErrBudgetArchived) {
		return NewConflictError(c, "Budget is archived")
	}
	if errors.Is(err, domain.ErrNotesTooLong) {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "notes", Message: "Notes must be 1000 characters or less"},
		})
	}
	return nil
}

// Helper function to convert domain.Transaction to TransactionResponse
func toTransactionResponse(transaction *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                      transaction.ID.String(),
		AccountID:               transaction.AccountID.String(),
		Name:                    transaction.Name,
		Amount:                  moneyString(transaction.Amount),
		Type:                    string(transaction.Type),
		Date:                    transaction.Date.Format("2006-01-02"),
		ExcludeFromCalculations: transaction.ExcludeFromCalculations,
		Notes:                   transaction.Notes,
		CreatedAt:               transaction.CreatedAt.Format(time.RFC3339),
		UpdatedAt:               transaction.UpdatedAt.Format(time.RFC3339),
	}
	if transaction.BudgetID != nil {
		budgetID := transaction.BudgetID.String()
		resp.BudgetID = &budgetID
	}
	return resp
}

func parseIntParam(s string, out *int32) (bool, error) {
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return false, errors.New("invalid integer")
	}
	*out = int32(v)
	return true, nil
}
