package usecase

import (
	"context"

	"medistore/internal/domain/entity"
)

// RegisterUserInput carries a new account registration.
type RegisterUserInput struct {
	Email string
	Name  string
	Role  string
}

// UserUsecase defines the account management operations.
type UserUsecase interface {
	// RegisterUser creates an account keyed by email. Registration of an
	// existing email is a conflict; an empty role defaults to customer.
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)

	// GetUserByEmail retrieves a single account.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetAllUsers lists every account.
	GetAllUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUserRole changes an account's role.
	UpdateUserRole(ctx context.Context, email string, role string) error
}
