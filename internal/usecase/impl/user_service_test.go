package impl

import (
	"context"
	"testing"

	"medistore/internal/domain/entity"
	domainerrors "medistore/internal/domain/errors"
	"medistore/internal/domain/repository"
	mockRepo "medistore/internal/mocks/repository"
	"medistore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*mockRepo.MockUserRepository, usecase.UserUsecase) {
	mockUsers := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{Users: mockUsers})

	return mockUsers, svc
}

func TestUserService_RegisterUser_DefaultsToCustomerRole(t *testing.T) {
	mockUsers, svc := newUserFixture(t)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = "user-1"
		}).
		Return(nil)

	user, err := svc.RegisterUser(ctx, usecase.RegisterUserInput{
		Email: "buyer@example.com",
		Name:  "Buyer One",
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockUsers, svc := newUserFixture(t)
	ctx := context.Background()

	mockUsers.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	_, err := svc.RegisterUser(ctx, usecase.RegisterUserInput{
		Email: "existing@example.com",
		Name:  "Existing",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_RejectsUnknownRole(t *testing.T) {
	_, svc := newUserFixture(t)

	_, err := svc.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Email: "buyer@example.com",
		Role:  "superadmin",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestUserService_GetUserByEmail_NotFound(t *testing.T) {
	mockUsers, svc := newUserFixture(t)
	ctx := context.Background()

	mockUsers.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := svc.GetUserByEmail(ctx, "ghost@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUserRole_PromotesSeller(t *testing.T) {
	mockUsers, svc := newUserFixture(t)
	ctx := context.Background()

	mockUsers.EXPECT().
		UpdateUserRole(ctx, "buyer@example.com", entity.RoleSeller).
		Return(nil)

	err := svc.UpdateUserRole(ctx, "buyer@example.com", "seller")
	require.NoError(t, err)
}

func TestUserService_UpdateUserRole_UnknownUser(t *testing.T) {
	mockUsers, svc := newUserFixture(t)
	ctx := context.Background()

	mockUsers.EXPECT().
		UpdateUserRole(ctx, "ghost@example.com", entity.RoleAdmin).
		Return(repository.ErrUserNotFound)

	err := svc.UpdateUserRole(ctx, "ghost@example.com", "admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
