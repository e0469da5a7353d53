package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign into the admin dashboard or storefront.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

func NewUser(email, name, passwordHash string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return nil, errors.New("a valid email address is required")
	}
	if passwordHash == "" {
		return nil, errors.New("password hash is required")
	}
	if role != RoleAdmin && role != RoleCustomer {
		return nil, errors.New("invalid role")
	}
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
