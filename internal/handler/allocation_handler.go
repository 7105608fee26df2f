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

// AllocationHandler handles allocation HTTP requests
type AllocationHandler struct {
	allocationService *service.AllocationService
}

// NewAllocationHandler creates a new AllocationHandler
func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// CreateAllocationRequest represents the create allocation request body
type CreateAllocationRequest struct {
	BudgetID string `json:"budgetId"`
	Amount   string `json:"amount"`
	Period   string `json:"period"`
}

// AllocationResponse represents an allocation in API responses
type AllocationResponse struct {
	ID        string `json:"id"`
	BudgetID  string `json:"budgetId"`
	Amount    string `json:"amount"`
	Period    string `json:"period"`
	CreatedAt string `json:"createdAt"`
}

// CreateAllocation handles POST /api/v1/allocations
func (h *AllocationHandler) CreateAllocation(c echo.Context) error {
	var req CreateAllocationRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	budgetID, err := uuid.Parse(req.BudgetID)
	if err != nil {
		return NewValidationError(c, "Invalid budget ID", []ValidationError{
			{Field: "budgetId", Message: "Must be a valid UUID"},
		})
	}

	amount, err := parseMoney(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a decimal number with at most two decimal places"},
		})
	}

	allocation, err := h.allocationService.CreateAllocation(service.CreateAllocationInput{
		BudgetID: budgetID,
		Amount:   amount,
		Period:   req.Period,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPeriod) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "period", Message: "Must be in YYYY-MM format"},
			})
		}
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "amount", Message: "Amount must not be zero"},
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
		log.Error().Err(err).Str("budget_id", budgetID.String()).Msg("Failed to create allocation")
		return NewInternalError(c, "Failed to create allocation")
	}

	return c.JSON(http.StatusCreated, toAllocationResponse(allocation))
}

// GetAllocations handles GET /api/v1/allocations
func (h *AllocationHandler) GetAllocations(c echo.Context) error {
	var budgetID *uuid.UUID
	if budgetIDStr := c.QueryParam("budgetId"); budgetIDStr != "" {
		parsed, err := uuid.Parse(budgetIDStr)
		if err != nil {
			return NewValidationError(c, "Invalid budgetId", nil)
		}
		budgetID = &parsed
	}

	var period *domain.Month
	if periodStr := c.QueryParam("period"); periodStr != "" {
		parsed, err := domain.ParseMonth(periodStr)
		if err != nil {
			return NewValidationError(c, "Invalid period (use YYYY-MM)", nil)
		}
		period = &parsed
	}

	allocations, err := h.allocationService.GetAllocations(budgetID, period)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get allocations")
		return NewInternalError(c, "Failed to get allocations")
	}

	response := make([]AllocationResponse, len(allocations))
	for i, allocation := range allocations {
		response[i] = toAllocationResponse(allocation)
	}

	return c.JSON(http.StatusOK, response)
}

// Helper function to convert domain.Allocation to AllocationResponse
func toAllocationResponse(allocation *domain.Allocation) AllocationResponse {
	return AllocationResponse{
		ID:        allocation.ID.String(),
		BudgetID:  allocation.BudgetID.String(),
		Amount:    moneyString(allocation.Amount),
		Period:    string(allocation.Period),
		CreatedAt: allocation.CreatedAt.Format(time.RFC3339),
	}
}
