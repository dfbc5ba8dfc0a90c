// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"medistore/internal/domain/entity"
	"medistore/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when registering an email that already exists.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByEmail retrieves a user by its identity email.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAllUsers retrieves every registered user.
	FindAllUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateUserRole changes the role of the user identified by email.
	UpdateUserRole(ctx context.Context, email string, role entity.Role) error
}
