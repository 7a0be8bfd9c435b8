package entities

type ScheduleStatus string

const (
	ScheduleStatusPending   ScheduleStatus = "Pendente"
	ScheduleStatusCompleted ScheduleStatus = "Concluido"
	ScheduleStatusCanceled  ScheduleStatus = "Cancelado"
	ScheduleStatusDelayed   ScheduleStatus = "Atrasado"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusPending, ScheduleStatusCompleted, ScheduleStatusCanceled, ScheduleStatusDelayed:
		return true
	}
	return false
}

// OperationalState is the optional annotation a technician leaves on a
// schedule. An empty value means "not informed" and never touches the platform.

type OperationalState string

const (
	OperationalStateActive   OperationalState = "Ativa"
	OperationalStateInactive OperationalState = "Não Ativa"
)

func (s OperationalState) Valid() bool {
	return s == "" || s == OperationalStateActive || s == OperationalStateInactive
}

// PlatformStatus projects the annotation onto the platform status enum.
func (s OperationalState) PlatformStatus() PlatformStatus {
	if s == OperationalStateActive {
		return PlatformStatusOperational
	}
	return PlatformStatusNonOperational
}

// Schedule is a planned maintenance visit.
type Schedule struct {
	ID               string           `json:"id"`
	PlatformID       string           `json:"platform_id"`
	Date             string           `json:"date"`
	Type             MaintenanceType  `json:"type"`
	Status           ScheduleStatus   `json:"status"`
	Observations     string           `json:"observations"`
	OperationalState OperationalState `json:"operational_state,omitempty"`
}

func (s Schedule) GetID() string { return s.ID }

func (s Schedule) WithID(id string) Record {
	s.ID = id
	return s
}

func (Schedule) Collection() Collection { return CollectionSchedules }
