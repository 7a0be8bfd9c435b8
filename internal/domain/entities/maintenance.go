package entities

// MaintenanceType classifies both executed maintenances and schedules.

type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "Preventiva"
	MaintenanceTypePredictive MaintenanceType = "Preditiva"
	MaintenanceTypeCorrective MaintenanceType = "Corretiva"
	MaintenanceTypeEmergency  MaintenanceType = "Emergencial"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceTypePreventive, MaintenanceTypePredictive, MaintenanceTypeCorrective, MaintenanceTypeEmergency:
		return true
	}
	return false
}

// Maintenance is a completed service event on a platform.
type Maintenance struct {
	ID            string          `json:"id"`
	PlatformID    string          `json:"platform_id"`
	ExecutionDate string          `json:"execution_date"`
	Type          MaintenanceType `json:"type"`
	Technician    string          `json:"technician"`
	Description   string          `json:"description"`
	Cost          float64         `json:"cost"`
}

func (m Maintenance) GetID() string { return m.ID }

func (m Maintenance) WithID(id string) Record {
	m.ID = id
	return m
}

func (Maintenance) Collection() Collection { return CollectionMaintenances }
