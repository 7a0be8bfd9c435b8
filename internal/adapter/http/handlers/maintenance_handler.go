package handlers

import (
	"errors"
	"net/http"

	request "gestao_plataformas/internal/adapter/http/dto/request"
	response "gestao_plataformas/internal/adapter/http/dto/response"
	"gestao_plataformas/internal/usecase"
	"gestao_plataformas/pkg"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

// ListMaintenances godoc
// @Summary  List maintenances with the parts they consumed
// @Tags     maintenances
// @Produce  json
// @Success  200 {array} response.MaintenanceResponse
// @Router   /maintenances [get]
func (h *MaintenanceHandler) ListMaintenances(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromMaintenanceDetails(h.usecase.ListMaintenances(c.Request.Context(), "")))
}

// RegisterMaintenance godoc
// @Summary  Register an executed maintenance and deduct the parts used
// @Tags     maintenances
// @Accept   json
// @Produce  json
// @Param    body body request.MaintenanceRequest true "maintenance"
// @Success  201 {object} response.MaintenanceResponse
// @Router   /maintenances [post]
func (h *MaintenanceHandler) RegisterMaintenance(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	detail, err := h.usecase.RegisterMaintenance(c.Request.Context(), payload.ToEntity(""), payload.Usages())
	if err != nil {
		respondError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromMaintenanceDetail(detail))
}

// UpdateMaintenance godoc
// @Summary  Replace maintenance fields; parts_used is ignored
// @Tags     maintenances
// @Accept   json
// @Produce  json
// @Param    id   path string true "maintenance id"
// @Param    body body request.MaintenanceRequest true "maintenance"
// @Success  200 {object} entities.Maintenance
// @Router   /maintenances/{id} [put]
func (h *MaintenanceHandler) UpdateMaintenance(c *gin.Context) {
	var payload request.MaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	m, err := h.usecase.UpdateMaintenance(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapMaintenanceError(err))
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMaintenance godoc
// @Summary  Delete a maintenance and its parts exchanged (managers only)
// @Tags     maintenances
// @Param    id path string true "maintenance id"
// @Success  204
// @Failure  503 {object} pkg.HTTPError
// @Router   /maintenances/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	if err := h.usecase.DeleteMaintenance(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapMaintenanceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapMaintenanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrMaintenanceDeleteFailed):
		return pkg.NewDomainError("MAINTENANCE_DELETE_FAILED", "Erro ao excluir manutenção.", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
