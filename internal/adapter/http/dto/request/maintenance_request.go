package request

import (
	"time"

	"gestao_plataformas/internal/domain/entities"
)

type PartUsageRequest struct {
	PartID   string `json:"part_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// MaintenanceRequest registers an executed maintenance. parts_used is only
// honored on creation; updates never touch stock.
type MaintenanceRequest struct {
	PlatformID    string             `json:"platform_id" binding:"required"`
	ExecutionDate string             `json:"execution_date" binding:"required"`
	Type          string             `json:"type" binding:"required"`
	Technician    string             `json:"technician"`
	Description   string             `json:"description"`
	Cost          float64            `json:"cost" binding:"gte=0"`
	PartsUsed     []PartUsageRequest `json:"parts_used" binding:"dive"`
}

func (r MaintenanceRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.ExecutionDate); err != nil {
		return ErrInvalidDate
	}
	if !entities.MaintenanceType(r.Type).Valid() {
		return ErrInvalidMaintenanceType
	}
	return nil
}

func (r MaintenanceRequest) ToEntity(id string) entities.Maintenance {
	return entities.Maintenance{
		ID:            id,
		PlatformID:    r.PlatformID,
		ExecutionDate: r.ExecutionDate,
		Type:          entities.MaintenanceType(r.Type),
		Technician:    r.Technician,
		Description:   r.Description,
		Cost:          r.Cost,
	}
}

func (r MaintenanceRequest) Usages() []entities.PartUsage {
	out := make([]entities.PartUsage, 0, len(r.PartsUsed))
	for _, p := range r.PartsUsed {
		out = append(out, entities.PartUsage{PartID: p.PartID, Quantity: p.Quantity})
	}
	return out
}
