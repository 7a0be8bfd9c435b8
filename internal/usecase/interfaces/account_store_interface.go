package interfaces

import (
	"context"
	"gestao_plataformas/internal/domain/entities"
)

// IAccountStore creates user accounts natively on the active backend.
//
// Implementations must reject an email that is already registered with
// entities.ErrEmailAlreadyRegistered.

type IAccountStore interface {
	CreateAccount(ctx context.Context, user entities.User) (entities.User, error)
}
