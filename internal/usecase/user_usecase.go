package usecase

import (
	"context"
	"strings"

	"gestao_plataformas/internal/domain/entities"
	"gestao_plataformas/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IUserUseCase handles registration, login and profile updates. A successful
// Register or Login establishes the session identity held by State.

type IUserUseCase interface {
	Register(ctx context.Context, user entities.User) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, error)
	Logout(ctx context.Context)
	UpdateUser(ctx context.Context, user entities.User) (entities.User, error)
	CurrentUser(ctx context.Context) (entities.User, error)
}

type UserUseCase struct {
	state   *State
	backend interfaces.IStorageBackend
	auth    interfaces.IAuthenticator
	log     *zap.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(state *State, backend interfaces.IStorageBackend, auth interfaces.IAuthenticator, log *zap.Logger) *UserUseCase {
	return &UserUseCase{state: state, backend: backend, auth: auth, log: log}
}

// Register creates the account through the authenticator and, only once it
// succeeded, appends it and logs the user in. Failures are returned as is.
func (u *UserUseCase) Register(ctx context.Context, user entities.User) (entities.User, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	user.Email = strings.TrimSpace(user.Email)
	if user.Role == "" {
		user.Role = entities.UserRoleTechnician
	}

	registered, err := u.auth.Register(ctx, user)
	if err != nil {
		u.log.Error("registration failed", zap.String("email", user.Email), zap.Error(err))
		return entities.User{}, err
	}

	u.state.write(func(db *entities.Database) {
		db.Users = append(db.Users, registered)
	})
	u.state.setCurrentUser(&registered)

	u.log.Info("user registered", zap.String("user_id", registered.ID), zap.String("role", string(registered.Role)))
	return registered, nil
}

func (u *UserUseCase) Login(ctx context.Context, email, password string) (entities.User, error) {
	user, err := u.auth.Authenticate(ctx, u.state.users(), strings.TrimSpace(email), password)
	if err != nil {
		u.log.Warn("login rejected", zap.String("email", email))
		return entities.User{}, err
	}

	u.state.setCurrentUser(&user)
	u.log.Info("user logged in", zap.String("user_id", user.ID))
	return user, nil
}

func (u *UserUseCase) Logout(_ context.Context) {
	u.state.setCurrentUser(nil)
}

// UpdateUser replaces the user matching the email and refreshes the session
// once the change is kept. It is persisted only when the record already
// carries an id.
func (u *UserUseCase) UpdateUser(ctx context.Context, user entities.User) (entities.User, error) {
	u.state.opMu.Lock()
	defer u.state.opMu.Unlock()

	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return entities.User{}, ErrUserNotFound
	}

	err := u.state.commit(ctx, mutation{
		touches: []entities.Collection{entities.CollectionUsers},
		apply: func(db *entities.Database) {
			for i := range db.Users {
				if db.Users[i].Email == user.Email {
					db.Users[i] = user
				}
			}
		},
		persist: func(ctx context.Context) error {
			if user.ID == "" {
				return nil
			}
			return u.backend.Update(ctx, entities.CollectionUsers, user.ID, user)
		},
	})
	if err != nil {
		u.log.Error("update user failed", zap.String("user_id", user.ID), zap.Error(err))
		return entities.User{}, err
	}
	u.state.setCurrentUser(&user)

	u.log.Info("user updated", zap.String("user_id", user.ID))
	return user, nil
}

func (u *UserUseCase) CurrentUser(_ context.Context) (entities.User, error) {
	user, ok := u.state.CurrentUser()
	if !ok {
		return entities.User{}, ErrNotAuthenticated
	}
	return user, nil
}
