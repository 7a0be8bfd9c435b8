package response

import (
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
)

type MaintenanceResponse struct {
	entities.Maintenance
	PartsExchanged []entities.PartExchanged `json:"parts_exchanged"`
}

func FromMaintenanceDetail(d usecase.MaintenanceDetail) MaintenanceResponse {
	pe := d.PartsExchanged
	if pe == nil {
		pe = []entities.PartExchanged{}
	}
	return MaintenanceResponse{Maintenance: d.Maintenance, PartsExchanged: pe}
}

func FromMaintenanceDetails(ds []usecase.MaintenanceDetail) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromMaintenanceDetail(d))
	}
	return out
}
