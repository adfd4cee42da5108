package wire_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/wire"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *memUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memUserRepo) Update(_ context.Context, user *entity.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func testApp() *wire.App {
	repo := &repository.Repository{User: newMemUserRepo()}
	config := &utils.Config{JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}}
	return wire.Wiring(repo, config, zap.NewNop())
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	app := testApp()

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	app := testApp()

	rec := postJSON(t, app.Router, "/api/users/register", map[string]any{
		"name":     "Flow Tester",
		"email":    "flow@example.com",
		"password": "secret123",
		"phone":    "08123456789",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var registered utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.True(t, registered.Status)

	rec = postJSON(t, app.Router, "/api/users/login", map[string]any{
		"email":    "flow@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = postJSON(t, app.Router, "/api/users/login", map[string]any{
		"email":    "flow@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := testApp()

	paths := []string{"/api/products", "/api/categories", "/api/cart", "/api/users/profile"}
	for _, path := range paths {
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAdminRoutesRejectCustomer(t *testing.T) {
	app := testApp()

	rec := postJSON(t, app.Router, "/api/users/register", map[string]any{
		"name":     "Plain Customer",
		"email":    "customer@example.com",
		"password": "secret123",
		"phone":    "08123456789",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)

	for _, path := range []string{"/api/users", "/api/users/get/count", "/api/orders/get/totalsales"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
		rec := httptest.NewRecorder()
		app.Router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestProfileReturnsOwnUser(t *testing.T) {
	app := testApp()

	rec := postJSON(t, app.Router, "/api/users/register", map[string]any{
		"name":     "Profile Tester",
		"email":    "profile@example.com",
		"password": "secret123",
		"phone":    "08123456789",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	out := httptest.NewRecorder()
	app.Router.ServeHTTP(out, req)

	require.Equal(t, http.StatusOK, out.Code)
	assert.Contains(t, out.Body.String(), "profile@example.com")
	assert.NotContains(t, out.Body.String(), "password")
}
