package handlers

import (
	"errors"
	"net/http"

	request "gestao_plataformas/internal/adapter/http/dto/request"
	"gestao_plataformas/internal/usecase"
	"gestao_plataformas/pkg"

	"github.com/gin-gonic/gin"
)

type PartHandler struct {
	usecase usecase.IPartUseCase
}

func NewPartHandler(uc usecase.IPartUseCase) *PartHandler {
	return &PartHandler{usecase: uc}
}

// ListParts godoc
// @Summary  List parts
// @Tags     parts
// @Produce  json
// @Param    low_stock query bool false "only parts at or below min_stock"
// @Success  200 {array} entities.Part
// @Router   /parts [get]
func (h *PartHandler) ListParts(c *gin.Context) {
	lowStock := c.Query("low_stock") == "true"
	c.JSON(http.StatusOK, h.usecase.ListParts(c.Request.Context(), lowStock))
}

// CreatePart godoc
// @Summary  Register a part
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    body body request.PartRequest true "part"
// @Success  201 {object} entities.Part
// @Router   /parts [post]
func (h *PartHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	part, err := h.usecase.AddPart(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusCreated, part)
}

// UpdatePart godoc
// @Summary  Replace a part, also the manual stock correction path
// @Tags     parts
// @Accept   json
// @Produce  json
// @Param    id   path string true "part id"
// @Param    body body request.PartRequest true "part"
// @Success  200 {object} entities.Part
// @Router   /parts/{id} [put]
func (h *PartHandler) UpdatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	part, err := h.usecase.UpdatePart(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapPartError(err))
		return
	}
	c.JSON(http.StatusOK, part)
}

func mapPartError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidID) {
		return errInvalidRequest
	}
	return internalError(err)
}
