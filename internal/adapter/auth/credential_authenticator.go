package auth

import (
	"context"
	"strings"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"
)

// CredentialAuthenticator checks logins against the in-memory user list and
// delegates registration to the active backend's account store.
type CredentialAuthenticator struct {
	accounts interfaces.IAccountStore
}

var _ interfaces.IAuthenticator = (*CredentialAuthenticator)(nil)

func NewCredentialAuthenticator(accounts interfaces.IAccountStore) *CredentialAuthenticator {
	return &CredentialAuthenticator{accounts: accounts}
}

// Authenticate matches the email case-insensitively and the password exactly.
func (a *CredentialAuthenticator) Authenticate(_ context.Context, users []entities.User, email, password string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.User{}, entities.ErrInvalidCredentials
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			return u, nil
		}
	}
	return entities.User{}, entities.ErrInvalidCredentials
}

func (a *CredentialAuthenticator) Register(ctx context.Context, user entities.User) (entities.User, error) {
	return a.accounts.CreateAccount(ctx, user)
}
