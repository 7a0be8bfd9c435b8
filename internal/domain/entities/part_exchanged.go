package entities

// DefaultExchangeObservation is attached to every exchange synthesized while
// registering a maintenance.
const DefaultExchangeObservation = "Manutenção Registrada"

// PartExchanged is one line item of parts consumed by a maintenance.
type PartExchanged struct {
	ID            string `json:"id"`
	MaintenanceID string `json:"maintenance_id"`
	PartID        string `json:"part_id"`
	Quantity      int    `json:"quantity"`
	Observation   string `json:"observation,omitempty"`
}

func (pe PartExchanged) GetID() string { return pe.ID }

func (pe PartExchanged) WithID(id string) Record {
	pe.ID = id
	return pe
}

func (PartExchanged) Collection() Collection { return CollectionPartsExchanged }

// PartUsage is a used-part line informed when a maintenance is registered.
type PartUsage struct {
	PartID   string `json:"part_id"`
	Quantity int    `json:"quantity"`
}

// UsagesOf turns exchange records back into used-part lines.
func UsagesOf(exchanges []PartExchanged) []PartUsage {
	out := make([]PartUsage, 0, len(exchanges))
	for _, pe := range exchanges {
		out = append(out, PartUsage{PartID: pe.PartID, Quantity: pe.Quantity})
	}
	return out
}
