package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workspaceai/workspaceai/internal/test_utils"
	"github.com/workspaceai/workspaceai/pkg/user"
)

func setupTestRepository(t *testing.T) (context.Context, *user.UserRepoImpl) {
	db := test_utils.SetupTestDB(t)
	return context.Background(), user.NewUserRepo(db)
}

func TestUserRepoImpl_CreateUser(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)

	// when
	id, err := repo.CreateUser(ctx, user.User{
		Uid:         "uid-1",
		Username:    "jdoe",
		DisplayName: "John Doe",
		Settings:    user.Settings{Timezone: "Europe/Warsaw"},
	})
	assert.NoError(t, err)

	// then
	stored, err := repo.GetUser(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "uid-1", stored.Uid)
	assert.Equal(t, "jdoe", stored.Username)
	assert.Equal(t, "John Doe", stored.DisplayName)
	assert.Equal(t, "Europe/Warsaw", stored.Settings.Timezone)
}

func TestUserRepoImpl_GetUserByUid(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	_, err := repo.CreateUser(ctx, user.User{Uid: "uid-2", Username: "asmith", DisplayName: "Anna Smith"})
	assert.NoError(t, err)

	// when
	stored, err := repo.GetUserByUid(ctx, "uid-2")

	// then
	assert.NoError(t, err)
	assert.Equal(t, "asmith", stored.Username)
}

func TestUserRepoImpl_GetUser_NotFound(t *testing.T) {
	ctx, repo := setupTestRepository(t)

	_, err := repo.GetUser(ctx, 12345)

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoImpl_UpdateUser(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	id, err := repo.CreateUser(ctx, user.User{Uid: "uid-3", Username: "old", DisplayName: "Old Name"})
	assert.NoError(t, err)

	// when
	updated, err := repo.UpdateUser(ctx, id, user.User{
		Username:    "new",
		DisplayName: "New Name",
		Settings:    user.Settings{Timezone: "UTC"},
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, id, updated.Id)

	stored, err := repo.GetUser(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "new", stored.Username)
	assert.Equal(t, "New Name", stored.DisplayName)
}

func TestUserRepoImpl_UpdateUser_NotFound(t *testing.T) {
	ctx, repo := setupTestRepository(t)

	_, err := repo.UpdateUser(ctx, 999, user.User{Username: "ghost"})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoImpl_DeleteUser(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	id, err := repo.CreateUser(ctx, user.User{Uid: "uid-4", Username: "temp", DisplayName: "Temp"})
	assert.NoError(t, err)

	// when
	err = repo.DeleteUser(ctx, id)

	// then
	assert.NoError(t, err)
	_, err = repo.GetUser(ctx, id)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepoImpl_IsUsernameAvailable(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	_, err := repo.CreateUser(ctx, user.User{Uid: "uid-5", Username: "taken", DisplayName: "Taken"})
	assert.NoError(t, err)

	// when / then
	available, err := repo.IsUsernameAvailable(ctx, "taken")
	assert.NoError(t, err)
	assert.False(t, available)

	available, err = repo.IsUsernameAvailable(ctx, "free")
	assert.NoError(t, err)
	assert.True(t, available)
}

func TestUserRepoImpl_GetAllUsers(t *testing.T) {
	// given
	ctx, repo := setupTestRepository(t)
	_, err := repo.CreateUser(ctx, user.User{Uid: "uid-6", Username: "first", DisplayName: "First"})
	assert.NoError(t, err)
	_, err = repo.CreateUser(ctx, user.User{Uid: "uid-7", Username: "second", DisplayName: "Second"})
	assert.NoError(t, err)

	// when
	users, err := repo.GetAllUsers(ctx)

	// then
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "second", users[1].Username)
}
