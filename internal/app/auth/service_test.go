package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.users[u.Email] = u
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range f.users {
		users = append(users, u)
	}
	return users, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
		}
	}
	return nil
}

func newTestAuth(t *testing.T) (*Service, *domain.User) {
	t.Helper()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	admin, err := domain.NewUser("admin@pakcuisine.com", "Admin", hash, domain.RoleAdmin)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*domain.User{admin.Email: admin}}
	return NewService(repo, "test-signing-secret", time.Hour, logger.New("test")), admin
}

func TestLoginAndVerifyToken(t *testing.T) {
	svc, admin := newTestAuth(t)

	token, user, err := svc.Login(context.Background(), "admin@pakcuisine.com", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, admin.ID, user.ID)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.UserID)
	assert.Equal(t, "admin@pakcuisine.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, _, err := svc.Login(context.Background(), "admin@pakcuisine.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, _, err := svc.Login(context.Background(), "nobody@pakcuisine.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	svc, _ := newTestAuth(t)

	token, _, err := svc.Login(context.Background(), "admin@pakcuisine.com", "correct horse battery staple")
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "x")
	assert.Error(t, err)

	_, err = svc.VerifyToken("not.a.token")
	assert.Error(t, err)
}

func TestCreateUserAndLogin(t *testing.T) {
	svc, _ := newTestAuth(t)

	user, err := svc.CreateUser(context.Background(), "Waiter@PakCuisine.com", "Waiter", "table-service-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "waiter@pakcuisine.com", user.Email)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	assert.NotEqual(t, "table-service-1", user.PasswordHash)

	// The provisioned account can sign in with the original password.
	_, logged, err := svc.Login(context.Background(), "waiter@pakcuisine.com", "table-service-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.CreateUser(context.Background(), "waiter@pakcuisine.com", "Waiter", "short", domain.RoleAdmin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuth(t)

	_, err := svc.CreateUser(context.Background(), "admin@pakcuisine.com", "Other Admin", "another-password", domain.RoleAdmin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDeleteUser(t *testing.T) {
	svc, admin := newTestAuth(t)

	require.NoError(t, svc.DeleteUser(context.Background(), admin.ID.String()))

	_, _, err := svc.Login(context.Background(), admin.Email, "correct horse battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*domain.User{}}

	require.NoError(t, EnsureAdmin(context.Background(), repo, "owner@pakcuisine.com", "first-admin-password"))
	created, err := repo.FindByEmail(context.Background(), "owner@pakcuisine.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)

	// A second run must not replace the existing account.
	require.NoError(t, EnsureAdmin(context.Background(), repo, "owner@pakcuisine.com", "different-password"))
	after, err := repo.FindByEmail(context.Background(), "owner@pakcuisine.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, after.ID)

	// Empty credentials are a no-op.
	require.NoError(t, EnsureAdmin(context.Background(), repo, "", ""))
	assert.Len(t, repo.users, 1)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	svc, _ := newTestAuth(t)
	other := NewService(&fakeUserRepo{users: map[string]*domain.User{}}, "different-secret", time.Hour, logger.New("test"))

	token, _, err := svc.Login(context.Background(), "admin@pakcuisine.com", "correct horse battery staple")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}
