package entities

// PlatformStatus is derived from the operational state of the latest synced
// schedule. Direct edits through UpdatePlatform are still accepted.

type PlatformStatus string

const (
	PlatformStatusOperational    PlatformStatus = "Ativa"
	PlatformStatusNonOperational PlatformStatus = "Não Ativa"
)

func (s PlatformStatus) Valid() bool {
	return s == PlatformStatusOperational || s == PlatformStatusNonOperational
}

// Platform is a serviced piece of equipment (lift, alignment ramp, balancer).
type Platform struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Code        string         `json:"code"`
	Client      string         `json:"client"`
	Location    string         `json:"location"`
	InstallDate string         `json:"install_date"`
	Status      PlatformStatus `json:"status"`
}

func (p Platform) GetID() string { return p.ID }

func (p Platform) WithID(id string) Record {
	p.ID = id
	return p
}

func (Platform) Collection() Collection { return CollectionPlatforms }
