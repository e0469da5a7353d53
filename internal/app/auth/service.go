package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Service issues and verifies signed session tokens. The role claim gates
// the admin API; row-level rules belong to the database.
type Service struct {
	users    interfaces.UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   logger.Logger
}

func NewService(users interfaces.UserRepository, secret string, tokenTTL time.Duration, logger logger.Logger) *Service {
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown user and wrong password.
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("login_rejected", "Password mismatch", "", map[string]interface{}{"email": email})
		return "", nil, ErrInvalidCredentials
	}

	claims := sessionClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

func (s *Service) VerifyToken(token string) (*interfaces.Claims, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return &interfaces.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   domain.Role(claims.Role),
	}, nil
}

// HashPassword is used by account provisioning.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser provisions an account for the admin users panel. The plaintext
// password never leaves this method.
func (s *Service) CreateUser(ctx context.Context, email, name, password string, role domain.Role) (*domain.User, error) {
	if len(password) < 8 {
		return nil, errors.New("validation failed: password must be at least 8 characters")
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, errors.New("validation failed: email is already registered")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(email, name, hash, role)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user_created", "Account provisioned", "", map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("validation failed: invalid user id")
	}
	return s.users.Delete(ctx, userID)
}

// EnsureAdmin provisions the first dashboard account during migration. An
// existing account with the same email wins; empty credentials are a no-op.
func EnsureAdmin(ctx context.Context, users interfaces.UserRepository, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	user, err := domain.NewUser(email, "Administrator", hash, domain.RoleAdmin)
	if err != nil {
		return err
	}
	return users.Create(ctx, user)
}
