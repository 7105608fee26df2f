package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/YuriiHoliuk/budget-sync-sub001/internal/domain"
	"github.com/YuriiHoliuk/budget-sync-sub001/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// OverviewHandler handles overview HTTP requests
type OverviewHandler struct {
	overviewService *service.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler
func NewOverviewHandler(overviewService *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

// BudgetSummaryResponse represents one budget's monthly figures in API responses
type BudgetSummaryResponse struct {
	BudgetID     string `json:"budgetId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	TargetAmount string `json:"targetAmount"`
	Allocated    string `json:"allocated"`
	Spent        string `json:"spent"`
	Carryover    string `json:"carryover"`
	Available    string `json:"available"`
}

// MonthlyOverviewResponse represents the monthly overview in API responses
type MonthlyOverviewResponse struct {
	Month          string                  `json:"month"`
	CapitalBalance string                  `json:"capitalBalance"`
	AvailableFunds string                  `json:"availableFunds"`
	ReadyToAssign  string                  `json:"readyToAssign"`
	TotalAllocated string                  `json:"totalAllocated"`
	TotalSpent     string                  `json:"totalSpent"`
	SavingsRate    float64                 `json:"savingsRate"`
	Budgets        []BudgetSummaryResponse `json:"budgets"`
}

// GetMonthOverview godoc
// @Summary Get monthly overview
// @Description Compute the overview for one month: capital, ready-to-assign, totals, and per-budget envelope figures
// @Tags overview
// @Produce json
// @Param month path string true "Month in YYYY-MM format"
// @Success 200 {object} MonthlyOverviewResponse
// @Failure 400 {object} ProblemDetails
// @Router /overview/{month} [get]
func (h *OverviewHandler) GetMonthOverview(c echo.Context) error {
	month, err := domain.ParseMonth(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be in YYYY-MM format"},
		})
	}

	overview, err := h.overviewService.GetMonthOverview(month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMonth) {
			return NewValidationError(c, "Invalid month", []ValidationError{
				{Field: "month", Message: "Must be in YYYY-MM format"},
			})
		}
		// ErrInvalidPeriod here means a stored allocation carries a bad
		// period, which repository validation should have made impossible.
		log.Error().Err(err).Str("month", string(month)).Msg("Failed to compute overview")
		return NewInternalError(c, "Failed to compute overview")
	}

	return c.JSON(http.StatusOK, toMonthlyOverviewResponse(overview))
}

// GetYearOverview godoc
// @Summary Get yearly overview
// @Description Compute overviews for all twelve months of a year from one snapshot
// @Tags overview
// @Produce json
// @Param year path int true "Year (2000-2100)"
// @Success 200 {array} MonthlyOverviewResponse
// @Failure 400 {object} ProblemDetails
// @Router /overview/year/{year} [get]
func (h *OverviewHandler) GetYearOverview(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		return NewValidationError(c, "Invalid year", []ValidationError{
			{Field: "year", Message: "Year must be between 2000 and 2100"},
		})
	}

	overviews, err := h.overviewService.GetYearOverview(year)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Invalid year", nil)
		}
		log.Error().Err(err).Int("year", year).Msg("Failed to compute year overview")
		return NewInternalError(c, "Failed to compute year overview")
	}

	response := make([]MonthlyOverviewResponse, len(overviews))
	for i, overview := range overviews {
		response[i] = toMonthlyOverviewResponse(overview)
	}

	return c.JSON(http.StatusOK, response)
}

// Helper function to convert domain.MonthlyOverview to MonthlyOverviewResponse
func toMonthlyOverviewResponse(overview *domain.MonthlyOverview) MonthlyOverviewResponse {
	budgets := make([]BudgetSummaryResponse, len(overview.BudgetSummaries))
	for i, summary := range overview.BudgetSummaries {
		budgets[i] = BudgetSummaryResponse{
			BudgetID:     summary.BudgetID.String(),
			Name:         summary.Name,
			Type:         string(summary.Type),
			TargetAmount: moneyString(summary.TargetAmount),
			Allocated:    moneyString(summary.Allocated),
			Spent:        moneyString(summary.Spent),
			Carryover:    moneyString(summary.Carryover),
			Available:    moneyString(summary.Available),
		}
	}
	return MonthlyOverviewResponse{
		Month:          string(overview.Month),
		CapitalBalance: moneyString(overview.CapitalBalance),
		AvailableFunds: moneyString(overview.AvailableFunds),
		ReadyToAssign:  moneyString(overview.ReadyToAssign),
		TotalAllocated: moneyString(overview.TotalAllocated),
		TotalSpent:     moneyString(overview.TotalSpent),
		SavingsRate:    overview.SavingsRate,
		Budgets:        budgets,
	}
}
