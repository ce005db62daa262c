package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gym_admin/internal/app/service"
	"gym_admin/internal/common"
	"gym_admin/internal/common/security"
	"gym_admin/internal/domain/model"
	"gym_admin/internal/platform/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal in-memory user store for wiring a real AuthService under the handler.
type memUserRepo struct {
	users []*model.User
}

func (f *memUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return common.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *memUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *memUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *memUserRepo) UpdateRole(_ context.Context, id, role string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func newAuthRouter(t *testing.T) http.Handler {
	t.Helper()
	config.AppConfig = &config.Config{JWTKey: []byte("test-secret"), JWTExp: time.Hour}
	security.InitJWT()

	r := chi.NewRouter()
	NewAuthHandler(service.NewAuthService(&memUserRepo{})).RegisterRoutes(r)
	return r
}

func TestRegisterEndpoint(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"name":"Jane Doe","email":"jane@example.com","password":"secret123","confirmPassword":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		User  model.User `json:"user"`
		Token string     `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.NotContains(t, rec.Body.String(), "hashed_password")
}

func TestRegisterEndpointRejectsUnknownFields(t *testing.T) {
	router := newAuthRouter(t)

	// A role smuggled into the payload must not be silently dropped.
	body := `{"name":"Jane","email":"jane@example.com","password":"secret123","confirmPassword":"secret123","role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterEndpointValidationStatus(t *testing.T) {
	router := newAuthRouter(t)

	body := `{"name":"Jane","email":"jane@example.com","password":"abc","confirmPassword":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 6 characters")
}

func TestLoginEndpoint(t *testing.T) {
	router := newAuthRouter(t)

	register := `{"name":"Jane","email":"jane@example.com","password":"secret123","confirmPassword":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(register))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("valid credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"secret123"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"nope12"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid email or password")
	})
}
