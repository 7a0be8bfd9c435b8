package handlers

import (
	"errors"
	"net/http"

	request "gestao_plataformas/internal/adapter/http/dto/request"
	response "gestao_plataformas/internal/adapter/http/dto/response"
	"gestao_plataformas/internal/adapter/http/middleware"
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
	"gestao_plataformas/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler covers registration, login and the logged-in profile.
type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// Register godoc
// @Summary  Create an account and log it in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.RegisterRequest true "account"
// @Success  201 {object} response.UserResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	if err := payload.Validate(); err != nil {
		invalidPayload(c, err)
		return
	}

	user, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromUser(user))
}

// Login godoc
// @Summary  Log in with email and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.UserResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// Logout godoc
// @Summary  End the session
// @Tags     auth
// @Success  204
// @Router   /auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	h.usecase.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary  Current session user
// @Tags     auth
// @Produce  json
// @Success  200 {object} response.UserResponse
// @Router   /auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, mapUserError(usecase.ErrNotAuthenticated))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

// UpdateUser godoc
// @Summary  Update the logged-in profile
// @Tags     users
// @Accept   json
// @Produce  json
// @Param    body body request.UpdateUserRequest true "profile"
// @Success  200 {object} response.UserResponse
// @Router   /users [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, mapUserError(usecase.ErrNotAuthenticated))
		return
	}

	var payload request.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}

	user, err := h.usecase.UpdateUser(c.Request.Context(), payload.Apply(current))
	if err != nil {
		respondError(c, mapUserError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Email already registered", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Login required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
