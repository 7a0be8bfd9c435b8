package request

import (
	"errors"
	"testing"

	"gestao_plataformas/internal/domain/entities"
)

func TestPlatformRequest_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  PlatformRequest
		want error
	}{
		{name: "minimal", req: PlatformRequest{Name: "A", Code: "C"}},
		{name: "full", req: PlatformRequest{Name: "A", Code: "C", InstallDate: "2023-01-15", Status: "Não Ativa"}},
		{name: "bad date", req: PlatformRequest{InstallDate: "15/01/2023"}, want: ErrInvalidDate},
		{name: "bad status", req: PlatformRequest{Status: "Quebrada"}, want: ErrInvalidPlatformStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUpdateRequiresStatus(t *testing.T) {
	p := PlatformRequest{Name: "A", Code: "C"}
	if err := p.ValidateUpdate(); !errors.Is(err, ErrInvalidPlatformStatus) {
		t.Fatalf("expected ErrInvalidPlatformStatus, got %v", err)
	}
	p.Status = "Ativa"
	if err := p.ValidateUpdate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := ScheduleRequest{PlatformID: "P1", Date: "2024-06-15", Type: "Preventiva"}
	if err := s.ValidateUpdate(); !errors.Is(err, ErrInvalidScheduleStatus) {
		t.Fatalf("expected ErrInvalidScheduleStatus, got %v", err)
	}
}

func TestPlatformRequest_ToEntity(t *testing.T) {
	p := PlatformRequest{Name: " Alpha ", Code: "ELV-1", Status: "Ativa"}.ToEntity("P1")
	if p.ID != "P1" || p.Name != "Alpha" || p.Status != entities.PlatformStatusOperational {
		t.Fatalf("unexpected platform: %+v", p)
	}
}

func TestPartRequest_Validate(t *testing.T) {
	if err := (PartRequest{Stock: 0, MinStock: 0}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (PartRequest{Stock: -1}).Validate(); !errors.Is(err, ErrInvalidStock) {
		t.Fatalf("expected ErrInvalidStock, got %v", err)
	}
}

func TestScheduleRequest_Validate(t *testing.T) {
	ok := ScheduleRequest{PlatformID: "P1", Date: "2024-06-15", Type: "Preventiva"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := ok
	bad.Type = "Rápida"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidMaintenanceType) {
		t.Fatalf("expected ErrInvalidMaintenanceType, got %v", err)
	}

	bad = ok
	bad.Status = "Feito"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidScheduleStatus) {
		t.Fatalf("expected ErrInvalidScheduleStatus, got %v", err)
	}

	bad = ok
	bad.OperationalState = "Parada"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidOperationalState) {
		t.Fatalf("expected ErrInvalidOperationalState, got %v", err)
	}

	s := ok
	s.OperationalState = "Não Ativa"
	if got := s.ToEntity("S1"); got.OperationalState != entities.OperationalStateInactive || got.ID != "S1" {
		t.Fatalf("unexpected schedule: %+v", got)
	}
}

func TestMaintenanceRequest(t *testing.T) {
	r := MaintenanceRequest{
		PlatformID:    "P1",
		ExecutionDate: "2024-02-10",
		Type:          "Corretiva",
		Cost:          120,
		PartsUsed:     []PartUsageRequest{{PartID: "PT1", Quantity: 2}, {PartID: "PT1", Quantity: 1}},
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	usages := r.Usages()
	if len(usages) != 2 || usages[0].PartID != "PT1" || usages[1].Quantity != 1 {
		t.Fatalf("unexpected usages: %+v", usages)
	}

	r.ExecutionDate = "ontem"
	if err := r.Validate(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUserRequests(t *testing.T) {
	if err := (RegisterRequest{Role: "ADMIN"}).Validate(); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	u := RegisterRequest{Name: " Ana ", Email: " ana@tec.com ", Password: "pw", Role: "GESTOR"}.ToEntity()
	if u.Name != "Ana" || u.Email != "ana@tec.com" || u.Role != entities.UserRoleManager {
		t.Fatalf("unexpected user: %+v", u)
	}

	current := entities.User{ID: "u1", Name: "Old", Email: "a@a.com", Password: "secret", Role: entities.UserRoleTechnician}
	got := UpdateUserRequest{Name: "New"}.Apply(current)
	if got.Name != "New" || got.Password != "secret" || got.Email != "a@a.com" || got.ID != "u1" {
		t.Fatalf("unexpected update: %+v", got)
	}
	if got := (UpdateUserRequest{Name: "New", Password: "n3w"}).Apply(current); got.Password != "n3w" {
		t.Fatalf("expected new password, got %+v", got)
	}
}
