package request

import (
	"strings"
	"time"

	"gestao_plataformas/internal/domain/entities"
)

// PlatformRequest is the body of POST /platforms and PUT /platforms/:id.
// Status may be omitted on creation, in which case the platform starts
// operational.
type PlatformRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Client      string `json:"client"`
	Location    string `json:"location"`
	InstallDate string `json:"install_date"`
	Status      string `json:"status"`
}

func (r PlatformRequest) Validate() error {
	if r.InstallDate != "" {
		if _, err := time.Parse(dateLayout, r.InstallDate); err != nil {
			return ErrInvalidDate
		}
	}
	if r.Status != "" && !entities.PlatformStatus(r.Status).Valid() {
		return ErrInvalidPlatformStatus
	}
	return nil
}

// ValidateUpdate also requires the status, since a PUT replaces the record.
func (r PlatformRequest) ValidateUpdate() error {
	if r.Status == "" {
		return ErrInvalidPlatformStatus
	}
	return r.Validate()
}

func (r PlatformRequest) ToEntity(id string) entities.Platform {
	return entities.Platform{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Code:        strings.TrimSpace(r.Code),
		Client:      strings.TrimSpace(r.Client),
		Location:    strings.TrimSpace(r.Location),
		InstallDate: r.InstallDate,
		Status:      entities.PlatformStatus(r.Status),
	}
}
