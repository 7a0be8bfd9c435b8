package middleware

import (
	"net/http"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase"
	"gestao_plataformas/pkg"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

var (
	errNotAuthenticated = pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "Login required", http.StatusUnauthorized)
	errForbidden        = pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this role", http.StatusForbidden)
)

// RequireSession rejects requests while nobody is logged in and exposes the
// session user to downstream handlers.
func RequireSession(users usecase.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.CurrentUser(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(errNotAuthenticated.HTTPStatus, errNotAuthenticated.ToHTTPError())
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireRole must run after RequireSession.
func RequireRole(role entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errNotAuthenticated.HTTPStatus, errNotAuthenticated.ToHTTPError())
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireSession.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok
}
