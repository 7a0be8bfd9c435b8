package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_plataformas/internal/adapter/http/handlers"
	"gestao_plataformas/internal/adapter/http/handlers/mocks"
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type routerMocks struct {
	users        *mocks.MockIUserUseCase
	platforms    *mocks.MockIPlatformUseCase
	parts        *mocks.MockIPartUseCase
	schedules    *mocks.MockIScheduleUseCase
	maintenances *mocks.MockIMaintenanceUseCase
	dashboard    *mocks.MockIDashboardUseCase
}

func newTestRouter(t *testing.T) (*gin.Engine, routerMocks) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := routerMocks{
		users:        mocks.NewMockIUserUseCase(ctrl),
		platforms:    mocks.NewMockIPlatformUseCase(ctrl),
		parts:        mocks.NewMockIPartUseCase(ctrl),
		schedules:    mocks.NewMockIScheduleUseCase(ctrl),
		maintenances: mocks.NewMockIMaintenanceUseCase(ctrl),
		dashboard:    mocks.NewMockIDashboardUseCase(ctrl),
	}

	r := NewRouter(zap.NewNop(), m.users, Handlers{
		Users:        handlers.NewUserHandler(m.users),
		Platforms:    handlers.NewPlatformHandler(m.platforms, m.maintenances),
		Parts:        handlers.NewPartHandler(m.parts),
		Schedules:    handlers.NewScheduleHandler(m.schedules),
		Maintenances: handlers.NewMaintenanceHandler(m.maintenances),
		Dashboard:    handlers.NewDashboardHandler(m.dashboard),
	})
	return r, m
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Ping(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/v1/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_PrivateRoutesNeedSession(t *testing.T) {
	r, m := newTestRouter(t)
	m.users.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{}, usecase.ErrNotAuthenticated).Times(3)

	for _, path := range []string{"/v1/platforms", "/v1/state", "/v1/auth/me"} {
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, path).Code, path)
	}
}

func TestRouter_DeletesNeedManager(t *testing.T) {
	technician := entities.User{ID: "U2", Role: entities.UserRoleTechnician}

	for _, path := range []string{"/v1/platforms/P1", "/v1/schedules/S1", "/v1/maintenances/M1"} {
		t.Run(path, func(t *testing.T) {
			r, m := newTestRouter(t)
			m.users.EXPECT().CurrentUser(gomock.Any()).Return(technician, nil)

			assert.Equal(t, http.StatusForbidden, serve(r, http.MethodDelete, path).Code)
		})
	}
}

func TestRouter_ManagerDeletesPlatform(t *testing.T) {
	r, m := newTestRouter(t)
	m.users.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{ID: "U1", Role: entities.UserRoleManager}, nil)
	m.platforms.EXPECT().DeletePlatform(gomock.Any(), "P1").Return(nil)

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/v1/platforms/P1").Code)
}

func TestRouter_TechnicianListsSchedules(t *testing.T) {
	r, m := newTestRouter(t)
	m.users.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{ID: "U2", Role: entities.UserRoleTechnician}, nil)
	m.schedules.EXPECT().ListSchedules(gomock.Any(), entities.ScheduleStatus("")).Return([]entities.Schedule{})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/v1/schedules").Code)
}

func TestRouter_Swagger(t *testing.T) {
	r, _ := newTestRouter(t)

	w := serve(r, http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/platforms")
}
