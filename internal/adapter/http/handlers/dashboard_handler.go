package handlers

import (
	"net/http"

	response "gestao_plataformas/internal/adapter/http/dto/response"
	"gestao_plataformas/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetState godoc
// @Summary  Snapshot of every collection
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.StateResponse
// @Router   /state [get]
func (h *DashboardHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDatabase(h.usecase.Snapshot(c.Request.Context())))
}

// GetSummary godoc
// @Summary  Dashboard indicators
// @Tags     dashboard
// @Produce  json
// @Success  200 {object} response.DashboardResponse
// @Router   /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSummary(h.usecase.Summary(c.Request.Context())))
}
