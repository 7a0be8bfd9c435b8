package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gestao_plataformas/internal/adapter/http/handlers/mocks"
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newScheduleRouter(t *testing.T) (*gin.Engine, *mocks.MockIScheduleUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIScheduleUseCase(ctrl)
	h := NewScheduleHandler(uc)

	r := gin.New()
	r.GET("/v1/schedules", h.ListSchedules)
	r.POST("/v1/schedules", h.CreateSchedule)
	r.PUT("/v1/schedules/:id", h.UpdateSchedule)
	r.DELETE("/v1/schedules/:id", h.DeleteSchedule)
	return r, uc
}

func TestScheduleHandler_CreateSchedule(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{"},
		{"missing platform", `{"date":"2024-06-01","type":"Preventiva"}`},
		{"invalid date", `{"platform_id":"P1","date":"01/06/2024","type":"Preventiva"}`},
		{"invalid type", `{"platform_id":"P1","date":"2024-06-01","type":"Rotina"}`},
		{"invalid operational state", `{"platform_id":"P1","date":"2024-06-01","type":"Preventiva","operational_state":"Parada"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newScheduleRouter(t)
			w := doRequest(r, http.MethodPost, "/v1/schedules", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}

	t.Run("success carries the operational state", func(t *testing.T) {
		r, uc := newScheduleRouter(t)
		uc.EXPECT().AddSchedule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Schedule) (entities.Schedule, error) {
				if s.OperationalState != entities.OperationalStateInactive || s.PlatformID != "P1" {
					t.Fatalf("unexpected schedule: %+v", s)
				}
				s.ID = "S-1"
				s.Status = entities.ScheduleStatusPending
				return s, nil
			})

		w := doRequest(r, http.MethodPost, "/v1/schedules",
			`{"platform_id":"P1","date":"2024-06-01","type":"Corretiva","operational_state":"Não Ativa"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("platform sync failure", func(t *testing.T) {
		r, uc := newScheduleRouter(t)
		uc.EXPECT().AddSchedule(gomock.Any(), gomock.Any()).
			Return(entities.Schedule{ID: "S-1"}, fmt.Errorf("%w: %w", usecase.ErrPlatformSyncFailed, errors.New("throttled")))

		w := doRequest(r, http.MethodPost, "/v1/schedules",
			`{"platform_id":"P1","date":"2024-06-01","type":"Corretiva","operational_state":"Ativa"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if e := decodeError(t, w); e.Code != "PLATFORM_SYNC_FAILED" {
			t.Fatalf("unexpected error body: %+v", e)
		}
	})
}

func TestScheduleHandler_UpdateSchedule(t *testing.T) {
	t.Run("status required", func(t *testing.T) {
		r, _ := newScheduleRouter(t)
		w := doRequest(r, http.MethodPut, "/v1/schedules/S1", `{"platform_id":"P1","date":"2024-06-01","type":"Preventiva"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newScheduleRouter(t)
		want := entities.Schedule{
			ID:         "S1",
			PlatformID: "P1",
			Date:       "2024-06-01",
			Type:       entities.MaintenanceTypePreventive,
			Status:     entities.ScheduleStatusCompleted,
		}
		uc.EXPECT().UpdateSchedule(gomock.Any(), want).Return(want, nil)

		w := doRequest(r, http.MethodPut, "/v1/schedules/S1",
			`{"platform_id":"P1","date":"2024-06-01","type":"Preventiva","status":"Concluido"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestScheduleHandler_DeleteSchedule(t *testing.T) {
	r, uc := newScheduleRouter(t)
	uc.EXPECT().DeleteSchedule(gomock.Any(), "S1").
		Return(fmt.Errorf("%w: %w", usecase.ErrScheduleDeleteFailed, errors.New("offline")))

	w := doRequest(r, http.MethodDelete, "/v1/schedules/S1", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
	if e := decodeError(t, w); e.Message != "Erro ao excluir agendamento." {
		t.Fatalf("unexpected error body: %+v", e)
	}
}

func TestScheduleHandler_ListSchedules(t *testing.T) {
	r, uc := newScheduleRouter(t)
	uc.EXPECT().ListSchedules(gomock.Any(), entities.ScheduleStatusDelayed).Return([]entities.Schedule{})

	if w := doRequest(r, http.MethodGet, "/v1/schedules?status=Atrasado", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodGet, "/v1/schedules?status=Feito", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
