package impl

import (
	"context"
	"time"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	"medistore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type userService struct {
	users repository.UserRepository
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Users repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		users: params.Users,
	}
}

// RegisterUser creates an account keyed by email. An empty role defaults to
// customer; registering an email twice is a conflict.
func (s *userService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}

	role := entity.Role(input.Role)
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown role: " + input.Role)
	}

	user := &entity.User{
		Email:     input.Email,
		Name:      input.Name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

// GetUserByEmail retrieves a single account.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user, nil
}

// GetAllUsers lists every account.
func (s *userService) GetAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.users.FindAllUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	return users, nil
}

// UpdateUserRole changes an account's role.
func (s *userService) UpdateUserRole(ctx context.Context, email string, role string) error {
	newRole := entity.Role(role)
	if !newRole.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown role: " + role)
	}

	if err := s.users.UpdateUserRole(ctx, email, newRole); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user role")
	}

	return nil
}
