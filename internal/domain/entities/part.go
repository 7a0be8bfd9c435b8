package entities

// Part is an inventory item consumed by maintenance events.
//
// MinStock is the reorder threshold. It only feeds the low-stock listing;
// nothing blocks a deduction below it.
type Part struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Manufacturer string `json:"manufacturer"`
	Stock        int    `json:"stock"`
	MinStock     int    `json:"min_stock"`
}

func (p Part) GetID() string { return p.ID }

func (p Part) WithID(id string) Record {
	p.ID = id
	return p
}

func (Part) Collection() Collection { return CollectionParts }

// LowStock reports whether the part reached its reorder threshold.
func (p Part) LowStock() bool {
	return p.Stock <= p.MinStock
}
