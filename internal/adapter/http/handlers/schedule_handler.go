package handlers

import (
	"errors"
	"net/http"

	request "gestao_plataformas/internal/adapter/http/dto/request"
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
	"gestao_plataformas/pkg"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

// ListSchedules godoc
// @Summary  List schedules
// @Tags     schedules
// @Produce  json
// @Param    status query string false "Pendente | Concluido | Cancelado | Atrasado"
// @Success  200 {array} entities.Schedule
// @Router   /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	status := entities.ScheduleStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		invalidPayload(c, request.ErrInvalidScheduleStatus)
		return
	}
	c.JSON(http.StatusOK, h.usecase.ListSchedules(c.Request.Context(), status))
}

// CreateSchedule godoc
// @Summary  Plan a maintenance visit
// @Tags     schedules
// @Accept   json
// @Produce  json
// @Param    body body request.ScheduleRequest true "schedule"
// @Success  201 {object} entities.Schedule
// @Router   /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	schedule, err := h.usecase.AddSchedule(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule godoc
// @Summary  Replace a schedule
// @Tags     schedules
// @Accept   json
// @Produce  json
// @Param    id   path string true "schedule id"
// @Param    body body request.ScheduleRequest true "schedule"
// @Success  200 {object} entities.Schedule
// @Router   /schedules/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.ValidateUpdate(); err != nil {
		invalidPayload(c, err)
		return
	}

	schedule, err := h.usecase.UpdateSchedule(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule godoc
// @Summary  Delete a schedule (managers only)
// @Tags     schedules
// @Param    id path string true "schedule id"
// @Success  204
// @Failure  503 {object} pkg.HTTPError
// @Router   /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	if err := h.usecase.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapScheduleError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrScheduleDeleteFailed):
		return pkg.NewDomainError("SCHEDULE_DELETE_FAILED", "Erro ao excluir agendamento.", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPlatformSyncFailed):
		return pkg.NewDomainError("PLATFORM_SYNC_FAILED", "Schedule saved but the platform status could not be updated", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
