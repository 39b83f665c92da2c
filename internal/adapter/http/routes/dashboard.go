package routes

import (
	"propmarketing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathAudit     = "/audit"
	PathData      = "/data"
)

func addDashboardRoutes(
	rg *gin.RouterGroup,
	dashboardHandler *handlers.DashboardHandler,
	auditHandler *handlers.AuditHandler,
	adminHandler *handlers.AdminHandler,
) {
	rg.GET(PathDashboard, dashboardHandler.GetDashboard)
	rg.GET(PathAudit, auditHandler.ListAuditEntries)

	data := rg.Group(PathData)
	{
		data.GET("/export", adminHandler.ExportData)
		data.POST("/import", adminHandler.ImportData)
		data.POST("/seed", adminHandler.SeedData)
		data.DELETE("", adminHandler.ClearData)
	}
}
