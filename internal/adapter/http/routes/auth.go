package routes

import (
	"gestao_plataformas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth  = "/auth"
	PathUsers = "/users"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.UserHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
	}
	rg.PUT(PathUsers, h.UpdateUser)
}
