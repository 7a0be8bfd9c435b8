package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao_plataformas/internal/adapter/http/handlers/mocks"
	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newSessionRouter(t *testing.T, user entities.User, err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserUseCase(ctrl)
	users.EXPECT().CurrentUser(gomock.Any()).Return(user, err).AnyTimes()

	r := gin.New()
	private := r.Group("/", RequireSession(users))
	private.GET("/me", func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, u.ID)
	})
	private.DELETE("/platforms/:id", RequireRole(entities.UserRoleManager), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRequireSession(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		r := newSessionRouter(t, entities.User{}, usecase.ErrNotAuthenticated)
		w := serve(r, http.MethodGet, "/me")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_AUTHENTICATED")
	})

	t.Run("exposes the session user", func(t *testing.T) {
		r := newSessionRouter(t, entities.User{ID: "U1", Role: entities.UserRoleTechnician}, nil)
		w := serve(r, http.MethodGet, "/me")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "U1", w.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("technician is forbidden", func(t *testing.T) {
		r := newSessionRouter(t, entities.User{ID: "U2", Role: entities.UserRoleTechnician}, nil)
		w := serve(r, http.MethodDelete, "/platforms/P1")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("manager passes", func(t *testing.T) {
		r := newSessionRouter(t, entities.User{ID: "U1", Role: entities.UserRoleManager}, nil)
		w := serve(r, http.MethodDelete, "/platforms/P1")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("without session middleware", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		r.DELETE("/x", RequireRole(entities.UserRoleManager), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodDelete, "/x").Code)
	})
}
