package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workspaceai/workspaceai/pkg/user"
)

func TestUserServiceImpl_CreateUser(t *testing.T) {
	service := user.NewUserService(user.NewStubUserRepository())

	created, err := service.CreateUser(context.Background(), user.User{
		Username:    "jdoe",
		DisplayName: "John Doe",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.Id)
	assert.NotEmpty(t, created.Uid, "a uid must be generated on creation")
}

func TestUserServiceImpl_CreateUser_InvalidData(t *testing.T) {
	service := user.NewUserService(user.NewStubUserRepository())

	testCases := []struct {
		name string
		user user.User
	}{
		{name: "missing username", user: user.User{DisplayName: "John Doe"}},
		{name: "missing display name", user: user.User{Username: "jdoe"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateUser(context.Background(), tc.user)
			assert.ErrorIs(t, err, user.ErrUserDataInvalid)
		})
	}
}

func TestUserServiceImpl_CreateUser_UsernameTaken(t *testing.T) {
	service := user.NewUserService(user.NewStubUserRepository())
	_, err := service.CreateUser(context.Background(), user.User{Username: "jdoe", DisplayName: "John Doe"})
	require.NoError(t, err)

	_, err = service.CreateUser(context.Background(), user.User{Username: "jdoe", DisplayName: "Jane Doe"})

	assert.ErrorIs(t, err, user.ErrUserDataInvalid)
}

func TestUserServiceImpl_GetCurrentUser(t *testing.T) {
	service := user.NewUserService(user.NewStubUserRepository())
	created, err := service.CreateUser(context.Background(), user.User{Username: "jdoe", DisplayName: "John Doe"})
	require.NoError(t, err)

	ctx := user.WithUser(context.Background(), created)
	current, err := service.GetCurrentUser(ctx)

	require.NoError(t, err)
	assert.Equal(t, created.Id, current.Id)
}

func TestUserServiceImpl_GetCurrentUser_NoUserInContext(t *testing.T) {
	service := user.NewUserService(user.NewStubUserRepository())

	_, err := service.GetCurrentUser(context.Background())

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestUserServiceImpl_UpdateUser(t *testing.T) {
	service := user.NewUserService(user.NewStubUserRepository())
	created, err := service.CreateUser(context.Background(), user.User{Username: "jdoe", DisplayName: "John Doe"})
	require.NoError(t, err)

	ctx := user.WithUser(context.Background(), created)
	updated, err := service.UpdateUser(ctx, user.User{Username: "jdoe", DisplayName: "Johnny Doe"})

	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "Johnny Doe", updated.DisplayName)
}
