package request

import (
	"strings"

	"gestao_plataformas/internal/domain/entities"
)

type PartRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Manufacturer string `json:"manufacturer"`
	Stock        int    `json:"stock"`
	MinStock     int    `json:"min_stock"`
}

func (r PartRequest) Validate() error {
	if r.Stock < 0 || r.MinStock < 0 {
		return ErrInvalidStock
	}
	return nil
}

func (r PartRequest) ToEntity(id string) entities.Part {
	return entities.Part{
		ID:           id,
		Name:         strings.TrimSpace(r.Name),
		Code:         strings.TrimSpace(r.Code),
		Manufacturer: strings.TrimSpace(r.Manufacturer),
		Stock:        r.Stock,
		MinStock:     r.MinStock,
	}
}
