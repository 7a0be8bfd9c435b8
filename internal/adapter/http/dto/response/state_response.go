package response

import (
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
)

// StateResponse is the full snapshot rendered by the dashboard, with
// passwords stripped from the user list.
type StateResponse struct {
	Users          []UserResponse           `json:"users"`
	Platforms      []entities.Platform      `json:"platforms"`
	Parts          []entities.Part          `json:"parts"`
	Maintenances   []entities.Maintenance   `json:"maintenances"`
	Schedules      []entities.Schedule      `json:"schedules"`
	PartsExchanged []entities.PartExchanged `json:"parts_exchanged"`
}

func FromDatabase(db entities.Database) StateResponse {
	db.Normalize()
	return StateResponse{
		Users:          FromUsers(db.Users),
		Platforms:      db.Platforms,
		Parts:          db.Parts,
		Maintenances:   db.Maintenances,
		Schedules:      db.Schedules,
		PartsExchanged: db.PartsExchanged,
	}
}

type DashboardResponse struct {
	TotalPlatforms          int                    `json:"total_platforms"`
	OperationalPlatforms    int                    `json:"operational_platforms"`
	NonOperationalPlatforms int                    `json:"non_operational_platforms"`
	PendingSchedules        int                    `json:"pending_schedules"`
	DelayedSchedules        int                    `json:"delayed_schedules"`
	LowStockParts           int                    `json:"low_stock_parts"`
	TotalMaintenances       int                    `json:"total_maintenances"`
	TotalMaintenanceCost    float64                `json:"total_maintenance_cost"`
	RecentMaintenances      []entities.Maintenance `json:"recent_maintenances"`
}

func FromSummary(s usecase.DashboardSummary) DashboardResponse {
	recent := s.RecentMaintenances
	if recent == nil {
		recent = []entities.Maintenance{}
	}
	return DashboardResponse{
		TotalPlatforms:          s.TotalPlatforms,
		OperationalPlatforms:    s.OperationalPlatforms,
		NonOperationalPlatforms: s.NonOperationalPlatforms,
		PendingSchedules:        s.PendingSchedules,
		DelayedSchedules:        s.DelayedSchedules,
		LowStockParts:           s.LowStockParts,
		TotalMaintenances:       s.TotalMaintenances,
		TotalMaintenanceCost:    s.TotalMaintenanceCost,
		RecentMaintenances:      recent,
	}
}
