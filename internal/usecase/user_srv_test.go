package usecase

import (
	"context"
	"testing"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedUserWithPassword(t *testing.T, repo *fakeUserRepo, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Eve",
		Email:        "eve@example.com",
		PasswordHash: hash,
		Phone:        "08123456789",
		City:         "Springfield",
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestUpdateUserPartialFields(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	user := seedUserWithPassword(t, userRepo, "secret123")

	newName := "Eve Updated"
	resp, err := svc.Update(context.Background(), user.ID, &request.UpdateUserRequest{
		Name: &newName,
	})
	require.NoError(t, err)

	// Only the provided field changes
	assert.Equal(t, "Eve Updated", resp.Name)
	assert.Equal(t, "eve@example.com", resp.Email)
	assert.Equal(t, "Springfield", resp.City)
	assert.Equal(t, "08123456789", resp.Phone)
}

func TestUpdateUserPromoteToAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	user := seedUserWithPassword(t, userRepo, "secret123")

	isAdmin := true
	resp, err := svc.Update(context.Background(), user.ID, &request.UpdateUserRequest{
		IsAdmin: &isAdmin,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), zap.NewNop())

	name := "Ghost"
	_, err := svc.Update(context.Background(), uuid.New(), &request.UpdateUserRequest{Name: &name})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdatePasswordChecksOld(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	user := seedUserWithPassword(t, userRepo, "secret123")

	err := svc.UpdatePassword(context.Background(), user.ID, &request.UpdatePasswordRequest{
		OldPassword: "wrong-password",
		NewPassword: "newsecret",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect")

	// Stored hash is untouched
	stored, _ := userRepo.FindByID(context.Background(), user.ID)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestUpdatePasswordSuccess(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	user := seedUserWithPassword(t, userRepo, "secret123")

	err := svc.UpdatePassword(context.Background(), user.ID, &request.UpdatePasswordRequest{
		OldPassword: "secret123",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)

	stored, _ := userRepo.FindByID(context.Background(), user.ID)
	assert.True(t, utils.CheckPasswordHash("newsecret", stored.PasswordHash))
	assert.False(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestCountUsers(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count.Count)

	seedUserWithPassword(t, userRepo, "secret123")
	count, err = svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestGetUserNeverLeaksHash(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	user := seedUserWithPassword(t, userRepo, "secret123")

	resp, err := svc.GetByID(context.Background(), user.ID)
	require.NoError(t, err)

	// The response type carries no password field at all; spot-check
	// the visible fields anyway
	assert.Equal(t, user.Email, resp.Email)
	assert.Equal(t, user.ID.String(), resp.ID)
}

func TestDeleteUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewUserService(userRepo, zap.NewNop())
	user := seedUserWithPassword(t, userRepo, "secret123")

	require.NoError(t, svc.Delete(context.Background(), user.ID))

	err := svc.Delete(context.Background(), user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
