package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/auth"
	"github.com/meshahan/pakcuisine/internal/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[strings.ToLower(email)]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.User) error {
	s.users[u.Email] = u
	return nil
}

func (s *stubUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, u := range s.users {
		if u.ID == id {
			delete(s.users, email)
		}
	}
	return nil
}

func newUsersAdminHandler(t *testing.T) (*AdminHandler, *stubUserRepo) {
	t.Helper()

	repo := &stubUserRepo{users: map[string]*domain.User{}}
	lgr := logger.New("test")
	authSvc := auth.NewService(repo, "test-signing-secret", time.Hour, lgr)
	return NewAdminHandler(nil, nil, nil, nil, nil, authSvc, lgr), repo
}

func TestAdminCreateUser(t *testing.T) {
	handler, repo := newUsersAdminHandler(t)

	body := `{"email": "manager@pakcuisine.com", "name": "Manager", "password": "front-of-house", "role": "admin"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateUser(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "manager@pakcuisine.com", resp["email"])
	assert.Equal(t, "admin", resp["role"])

	stored, ok := repo.users["manager@pakcuisine.com"]
	require.True(t, ok)
	assert.NotEqual(t, "front-of-house", stored.PasswordHash)
}

func TestAdminCreateUserValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "short password", body: `{"email": "a@b.com", "password": "short", "role": "admin"}`},
		{name: "bad email", body: `{"email": "nope", "password": "long-enough-pw", "role": "admin"}`},
		{name: "bad role", body: `{"email": "a@b.com", "password": "long-enough-pw", "role": "superuser"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newUsersAdminHandler(t)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.CreateUser(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// The list panel must never leak password hashes.
func TestAdminListUsers(t *testing.T) {
	handler, repo := newUsersAdminHandler(t)

	hash, err := auth.HashPassword("long-enough-pw")
	require.NoError(t, err)
	u, err := domain.NewUser("manager@pakcuisine.com", "Manager", hash, domain.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	rec := httptest.NewRecorder()
	handler.ListUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "manager@pakcuisine.com")
	assert.NotContains(t, rec.Body.String(), hash)
}

func TestAdminDeleteUser(t *testing.T) {
	handler, repo := newUsersAdminHandler(t)

	hash, err := auth.HashPassword("long-enough-pw")
	require.NoError(t, err)
	u, err := domain.NewUser("manager@pakcuisine.com", "Manager", hash, domain.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/users/"+u.ID.String(), nil)
	req.SetPathValue("id", u.ID.String())
	rec := httptest.NewRecorder()
	handler.DeleteUser(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.users)

	badReq := httptest.NewRequest(http.MethodDelete, "/api/admin/users/not-a-uuid", nil)
	badReq.SetPathValue("id", "not-a-uuid")
	badRec := httptest.NewRecorder()
	handler.DeleteUser(badRec, badReq)

	assert.Equal(t, http.StatusBadRequest, badRec.Code)
}
