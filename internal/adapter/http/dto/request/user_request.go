package request

import (
	"strings"

	"gestao_plataformas/internal/domain/entities"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	if r.Role != "" && !entities.UserRole(r.Role).Valid() {
		return ErrInvalidRole
	}
	return nil
}

func (r RegisterRequest) ToEntity() entities.User {
	return entities.User{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
		Role:     entities.UserRole(r.Role),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest edits the logged-in profile. An empty password keeps the
// current one.
type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password"`
}

// Apply returns current with the requested changes. Email, id and role are
// never changed through this request.
func (r UpdateUserRequest) Apply(current entities.User) entities.User {
	current.Name = strings.TrimSpace(r.Name)
	if r.Password != "" {
		current.Password = r.Password
	}
	return current
}
