package response

import (
	"encoding/json"
	"strings"
	"testing"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
)

func TestFromDatabase_HidesPasswords(t *testing.T) {
	res := FromDatabase(entities.DefaultDatabase())

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "123456") || strings.Contains(string(raw), "password") {
		t.Fatalf("password leaked: %s", raw)
	}
	if len(res.Users) != 2 || res.Users[0].Role != "GESTOR" {
		t.Fatalf("unexpected users: %+v", res.Users)
	}
	if len(res.PartsExchanged) != 4 {
		t.Fatalf("expected 4 exchanges, got %d", len(res.PartsExchanged))
	}
}

func TestFromDatabase_EmptyCollectionsRenderAsArrays(t *testing.T) {
	raw, err := json.Marshal(FromDatabase(entities.Database{}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "null") {
		t.Fatalf("expected empty arrays, got %s", raw)
	}
}

func TestFromMaintenanceDetail(t *testing.T) {
	res := FromMaintenanceDetail(usecase.MaintenanceDetail{
		Maintenance: entities.Maintenance{ID: "M1", PlatformID: "P1", Cost: 10},
	})

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["id"] != "M1" || decoded["platform_id"] != "P1" {
		t.Fatalf("maintenance fields not flattened: %s", raw)
	}
	if pe, ok := decoded["parts_exchanged"].([]any); !ok || len(pe) != 0 {
		t.Fatalf("expected empty parts_exchanged, got %s", raw)
	}
}

func TestFromSummary(t *testing.T) {
	res := FromSummary(usecase.DashboardSummary{TotalPlatforms: 5, TotalMaintenanceCost: 4650})
	if res.TotalPlatforms != 5 || res.TotalMaintenanceCost != 4650 || res.RecentMaintenances == nil {
		t.Fatalf("unexpected summary: %+v", res)
	}
}
