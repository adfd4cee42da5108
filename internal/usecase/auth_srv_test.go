package usecase

import (
	"context"
	"testing"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			ExpiryHours: 1,
		},
	}
}

func registerReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret123",
		Phone:    "08123456789",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), registerReq("alice@example.com"))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.False(t, resp.User.IsAdmin)

	claims, err := utils.ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), registerReq("  Alice@Example.COM "))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// Login with a differently-cased spelling still finds the account
	login, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "ALICE@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq("bob@example.com"))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("bob@example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterShortPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	req := registerReq("short@example.com")
	req.Password = "12345"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	_, err := svc.Register(context.Background(), registerReq("carol@example.com"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &request.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	// Unknown email and wrong password must be indistinguishable
	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestPasswordStoredHashed(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAuthService(repo, testConfig(), zap.NewNop())

	resp, err := svc.Register(context.Background(), registerReq("dave@example.com"))
	require.NoError(t, err)

	userID, err := utils.ParseUUID(resp.User.ID)
	require.NoError(t, err)

	stored, err := repo.User.FindByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}
