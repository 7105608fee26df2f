package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, overviewHandler *OverviewHandler, budgetHandler *BudgetHandler, allocationHandler *AllocationHandler, accountHandler *AccountHandler, transactionHandler *TransactionHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Overview routes
	overview := api.Group("/overview")
	overview.GET("/year/:year", overviewHandler.GetYearOverview)
	overview.GET("/:month", overviewHandler.GetMonthOverview)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.ArchiveBudget)

	// Allocation routes
	allocations := api.Group("/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.GET("", allocationHandler.GetAllocations)

	// Account routes
	accounts := api.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.ArchiveAccount)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.PATCH("/:id/budget", transactionHandler.AssignBudget)

	// WebSocket endpoint for live entity-change events
	e.GET("/ws", wsHandler.HandleWS)

	// API documentation
	e.GET("/openapi.json", ServeOpenAPI3Spec)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
