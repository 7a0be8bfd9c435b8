package interfaces

import (
	"context"
	"gestao_plataformas/internal/domain/entities"
)

// IAuthenticator is the login/registration collaborator of the user use case.

type IAuthenticator interface {
	Authenticate(ctx context.Context, users []entities.User, email, password string) (entities.User, error)
	Register(ctx context.Context, user entities.User) (entities.User, error)
}
