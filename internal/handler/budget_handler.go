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

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudgetRequest represents the create budget request body
type CreateBudgetRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	TargetAmount string `json:"targetAmount,omitempty"`
}

// UpdateBudgetRequest represents the update budget request body
type UpdateBudgetRequest struct {
	Name         string `json:"name"`
	TargetAmount string `json:"targetAmount,omitempty"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	TargetAmount string `json:"targetAmount"`
	IsArchived   bool   `json:"isArchived"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CreateBudget handles POST /api/v1/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	// Parse target amount (default to 0)
	var targetAmount int64
	if req.TargetAmount != "" {
		var err error
		targetAmount, err = parseMoney(req.TargetAmount)
		if err != nil {
			return NewValidationError(c, "Invalid target amount", []ValidationError{
				{Field: "targetAmount", Message: "Must be a decimal number with at most two decimal places"},
			})
		}
	}

	budget, err := h.budgetService.CreateBudget(service.CreateBudgetInput{
		Name:         req.Name,
		Type:         domain.BudgetType(req.Type),
		TargetAmount: targetAmount,
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
		if errors.Is(err, domain.ErrInvalidBudgetType) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "type", Message: "Type must be one of: spending, savings, goal, periodic"},
			})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "targetAmount", Message: "Target amount must be zero or positive"},
			})
		}
		log.Error().Err(err).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	return c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

// GetBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) GetBudgets(c echo.Context) error {
	includeArchived := c.QueryParam("includeArchived") == "true"

	budgets, err := h.budgetService.GetBudgets(includeArchived)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get budgets")
		return NewInternalError(c, "Failed to get budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		response[i] = toBudgetResponse(budget)
	}

	return c.JSON(http.StatusOK, response)
}

// GetBudget handles GET /api/v1/budgets/:id
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	budget, err := h.budgetService.GetBudgetByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("budget_id", id.String()).Msg("Failed to get budget")
		return NewInternalError(c, "Failed to get budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// UpdateBudget handles PUT /api/v1/budgets/:id
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var targetAmount int64
	if req.TargetAmount != "" {
		targetAmount, err = parseMoney(req.TargetAmount)
		if err != nil {
			return NewValidationError(c, "Invalid target amount", []ValidationError{
				{Field: "targetAmount", Message: "Must be a decimal number with at most two decimal places"},
			})
		}
	}

	budget, err := h.budgetService.UpdateBudget(id, req.Name, targetAmount)
	if err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		if errors.Is(err, domain.ErrBudgetArchived) {
			return NewConflictError(c, "Budget is archived")
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
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "targetAmount", Message: "Target amount must be zero or positive"},
			})
		}
		log.Error().Err(err).Str("budget_id", id.String()).Msg("Failed to update budget")
		return NewInternalError(c, "Failed to update budget")
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// ArchiveBudget handles DELETE /api/v1/budgets/:id
func (h *BudgetHandler) ArchiveBudget(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", nil)
	}

	if err := h.budgetService.ArchiveBudget(id); err != nil {
		if errors.Is(err, domain.ErrBudgetNotFound) {
			return NewNotFoundError(c, "Budget not found")
		}
		log.Error().Err(err).Str("budget_id", id.String()).Msg("Failed to archive budget")
		return NewInternalError(c, "Failed to archive budget")
	}

	return c.NoContent(http.StatusNoContent)
}

// Helper function to convert domain.Budget to BudgetResponse
func toBudgetResponse(budget *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:           budget.ID.String(),
		Name:         budget.Name,
		Type:         string(budget.Type),
		TargetAmount: moneyString(budget.TargetAmount),
		IsArchived:   budget.IsArchived,
		CreatedAt:    budget.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    budget.UpdatedAt.Format(time.RFC3339),
	}
}
