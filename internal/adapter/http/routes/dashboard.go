package routes

import (
	"gestao_plataformas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathState     = "/state"
	PathDashboard = "/dashboard"
)

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	rg.GET(PathState, h.GetState)
	rg.GET(PathDashboard, h.GetSummary)
}
