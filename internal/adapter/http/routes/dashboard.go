package routes

import (
	"gestao360/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	rg.GET("/dashboard/summary", dashboardHandler.Summary)
	rg.GET("/inventory/report", dashboardHandler.InventoryReport)
	rg.GET("/schedule", dashboardHandler.Schedule)
}
