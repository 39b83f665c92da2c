package routes

import (
	"propmarketing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathBudgets  = "/budgets"
)

func addCatalogRoutes(rg *gin.RouterGroup, serviceHandler *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
		services.GET("/:id/price", serviceHandler.ResolveServicePrice)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
		budgets.GET("/:id/summary", budgetHandler.GetBudgetSummary)

		// Lifecycle transitions; the only way status changes.
		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/send", budgetHandler.SendBudget)
		budgets.PATCH("/:id/revert", budgetHandler.RevertBudget)
		budgets.PATCH("/:id/archive", budgetHandler.ArchiveBudget)
	}
}
