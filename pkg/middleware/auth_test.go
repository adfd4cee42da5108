package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/pkg/middleware"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindAll(_ context.Context) ([]*entity.User, error) { return nil, nil }
func (s *stubUserRepo) CountAll(_ context.Context) (int64, error)         { return 0, nil }
func (s *stubUserRepo) Update(_ context.Context, _ *entity.User) error    { return nil }
func (s *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.users, id)
	return nil
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func testUser(isAdmin bool) *entity.User {
	return &entity.User{
		Base:    entity.Base{ID: uuid.New()},
		Name:    "Middleware Tester",
		Email:   "mw@example.com",
		IsAdmin: isAdmin,
	}
}

func authConfig() *utils.Config {
	return &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
}

// okHandler records the role the middleware resolved into the context
func okHandler(gotRole *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role, ok := utils.GetRoleFromContext(r.Context()); ok {
			*gotRole = role
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMissingHeader(t *testing.T) {
	repo := newStubUserRepo()
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(okHandler(&role))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	repo := newStubUserRepo()
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(okHandler(&role))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthGarbageToken(t *testing.T) {
	repo := newStubUserRepo()
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(okHandler(&role))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthWrongSecret(t *testing.T) {
	user := testUser(false)
	repo := newStubUserRepo(user)
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(okHandler(&role))

	token, _, err := utils.GenerateToken(user.ID, false, "other-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthDeletedUser(t *testing.T) {
	user := testUser(false)
	repo := newStubUserRepo() // token user never stored
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(okHandler(&role))

	token, _, err := utils.GenerateToken(user.ID, false, "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthResolvesRoleFromStore(t *testing.T) {
	user := testUser(false)
	repo := newStubUserRepo(user)
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(okHandler(&role))

	// Claim says admin, but the stored record does not: store wins
	token, _, err := utils.GenerateToken(user.ID, true, "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "customer", role)
}

func TestAdminRejectsCustomer(t *testing.T) {
	user := testUser(false)
	repo := newStubUserRepo(user)
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(
		middleware.Admin(repo, zap.NewNop())(okHandler(&role)),
	)

	token, _, err := utils.GenerateToken(user.ID, false, "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminAllowsAdmin(t *testing.T) {
	user := testUser(true)
	repo := newStubUserRepo(user)
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(
		middleware.Admin(repo, zap.NewNop())(okHandler(&role)),
	)

	token, _, err := utils.GenerateToken(user.ID, true, "test-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", role)
}

func TestAdminRevokedSinceTokenIssued(t *testing.T) {
	user := testUser(true)
	repo := newStubUserRepo(user)
	var role string
	handler := middleware.Auth(repo, authConfig(), zap.NewNop())(
		middleware.Admin(repo, zap.NewNop())(okHandler(&role)),
	)

	token, _, err := utils.GenerateToken(user.ID, true, "test-secret", 1)
	require.NoError(t, err)

	// Demote after the token was signed; the old token must not retain power
	user.IsAdmin = false

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
