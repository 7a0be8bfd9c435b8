package request

import (
	"time"

	"gestao_plataformas/internal/domain/entities"
)

// ScheduleRequest carries an optional operational_state ("Ativa" or
// "Não Ativa") that is pushed onto the platform once the schedule is saved.
type ScheduleRequest struct {
	PlatformID       string `json:"platform_id" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Type             string `json:"type" binding:"required"`
	Status           string `json:"status"`
	Observations     string `json:"observations"`
	OperationalState string `json:"operational_state"`
}

func (r ScheduleRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if !entities.MaintenanceType(r.Type).Valid() {
		return ErrInvalidMaintenanceType
	}
	if r.Status != "" && !entities.ScheduleStatus(r.Status).Valid() {
		return ErrInvalidScheduleStatus
	}
	if !entities.OperationalState(r.OperationalState).Valid() {
		return ErrInvalidOperationalState
	}
	return nil
}

func (r ScheduleRequest) ValidateUpdate() error {
	if r.Status == "" {
		return ErrInvalidScheduleStatus
	}
	return r.Validate()
}

func (r ScheduleRequest) ToEntity(id string) entities.Schedule {
	return entities.Schedule{
		ID:               id,
		PlatformID:       r.PlatformID,
		Date:             r.Date,
		Type:             entities.MaintenanceType(r.Type),
		Status:           entities.ScheduleStatus(r.Status),
		Observations:     r.Observations,
		OperationalState: entities.OperationalState(r.OperationalState),
	}
}
