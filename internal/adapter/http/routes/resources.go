package routes

import (
	"gestao_plataformas/internal/adapter/http/handlers"
	"gestao_plataformas/internal/adapter/http/middleware"
	"gestao_plataformas/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPlatforms    = "/platforms"
	PathParts        = "/parts"
	PathSchedules    = "/schedules"
	PathMaintenances = "/maintenances"
)

// Deletes are restricted to managers; every other route only needs a session.
func addPlatformRoutes(rg *gin.RouterGroup, h *handlers.PlatformHandler) {
	platforms := rg.Group(PathPlatforms)
	{
		platforms.GET("", h.ListPlatforms)
		platforms.POST("", h.CreatePlatform)
		platforms.PUT("/:id", h.UpdatePlatform)
		platforms.DELETE("/:id", middleware.RequireRole(entities.UserRoleManager), h.DeletePlatform)
		platforms.GET("/:id/history", h.GetPlatformHistory)
	}
}

func addPartRoutes(rg *gin.RouterGroup, h *handlers.PartHandler) {
	parts := rg.Group(PathParts)
	{
		parts.GET("", h.ListParts)
		parts.POST("", h.CreatePart)
		parts.PUT("/:id", h.UpdatePart)
	}
}

func addScheduleRoutes(rg *gin.RouterGroup, h *handlers.ScheduleHandler) {
	schedules := rg.Group(PathSchedules)
	{
		schedules.GET("", h.ListSchedules)
		schedules.POST("", h.CreateSchedule)
		schedules.PUT("/:id", h.UpdateSchedule)
		schedules.DELETE("/:id", middleware.RequireRole(entities.UserRoleManager), h.DeleteSchedule)
	}
}

func addMaintenanceRoutes(rg *gin.RouterGroup, h *handlers.MaintenanceHandler) {
	maintenances := rg.Group(PathMaintenances)
	{
		maintenances.GET("", h.ListMaintenances)
		maintenances.POST("", h.RegisterMaintenance)
		maintenances.PUT("/:id", h.UpdateMaintenance)
		maintenances.DELETE("/:id", middleware.RequireRole(entities.UserRoleManager), h.DeleteMaintenance)
	}
}
