package handlers

import (
	"errors"
	"net/http"

	request "gestao_plataformas/internal/adapter/http/dto/request"
	response "gestao_plataformas/internal/adapter/http/dto/response"
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
	"gestao_plataformas/pkg"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	platforms    usecase.IPlatformUseCase
	maintenances usecase.IMaintenanceUseCase
}

func NewPlatformHandler(platforms usecase.IPlatformUseCase, maintenances usecase.IMaintenanceUseCase) *PlatformHandler {
	return &PlatformHandler{platforms: platforms, maintenances: maintenances}
}

// ListPlatforms godoc
// @Summary  List platforms
// @Tags     platforms
// @Produce  json
// @Param    status query string false "Ativa | Não Ativa"
// @Success  200 {array} entities.Platform
// @Router   /platforms [get]
func (h *PlatformHandler) ListPlatforms(c *gin.Context) {
	status := entities.PlatformStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		invalidPayload(c, request.ErrInvalidPlatformStatus)
		return
	}
	c.JSON(http.StatusOK, h.platforms.ListPlatforms(c.Request.Context(), status))
}

// CreatePlatform godoc
// @Summary  Register a platform
// @Tags     platforms
// @Accept   json
// @Produce  json
// @Param    body body request.PlatformRequest true "platform"
// @Success  201 {object} entities.Platform
// @Failure  400 {object} pkg.HTTPError
// @Router   /platforms [post]
func (h *PlatformHandler) CreatePlatform(c *gin.Context) {
	var payload request.PlatformRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	platform, err := h.platforms.AddPlatform(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapPlatformError(err))
		return
	}
	c.JSON(http.StatusCreated, platform)
}

// UpdatePlatform godoc
// @Summary  Replace a platform
// @Tags     platforms
// @Accept   json
// @Produce  json
// @Param    id   path string true "platform id"
// @Param    body body request.PlatformRequest true "platform"
// @Success  200 {object} entities.Platform
// @Router   /platforms/{id} [put]
func (h *PlatformHandler) UpdatePlatform(c *gin.Context) {
	var payload request.PlatformRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.ValidateUpdate(); err != nil {
		invalidPayload(c, err)
		return
	}

	platform, err := h.platforms.UpdatePlatform(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapPlatformError(err))
		return
	}
	c.JSON(http.StatusOK, platform)
}

// DeletePlatform godoc
// @Summary  Delete a platform (managers only)
// @Tags     platforms
// @Param    id path string true "platform id"
// @Success  204
// @Failure  503 {object} pkg.HTTPError
// @Router   /platforms/{id} [delete]
func (h *PlatformHandler) DeletePlatform(c *gin.Context) {
	if err := h.platforms.DeletePlatform(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapPlatformError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPlatformHistory godoc
// @Summary  Maintenance history of a platform, newest first
// @Tags     platforms
// @Produce  json
// @Param    id path string true "platform id"
// @Success  200 {array} response.MaintenanceResponse
// @Router   /platforms/{id}/history [get]
func (h *PlatformHandler) GetPlatformHistory(c *gin.Context) {
	history := h.maintenances.ListMaintenances(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, response.FromMaintenanceDetails(history))
}

func mapPlatformError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPlatformDeleteFailed):
		return pkg.NewDomainError("PLATFORM_DELETE_FAILED", "Erro ao excluir plataforma. Tente novamente.", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
