package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arbor-inc/arbor/internal/shared/authorization"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type User struct {
	id           uuid.UUID
	name         string
	email        string
	role         authorization.Role
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email string, role authorization.Role, passwordHash string) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("user name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("user name too long (max 255 characters)")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now()
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name, email string, role authorization.Role,
	passwordHash string, createdAt, updatedAt time.Time) (*User, error) {

	if id == uuid.Nil {
		return nil, fmt.Errorf("user ID cannot be nil")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		role:         role,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uuid.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("user name is required")
	}
	if len(name) > 255 {
		return fmt.Errorf("user name too long (max 255 characters)")
	}
	u.name = name
	u.updatedAt = time.Now()
	return nil
}

func (u *User) UpdateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

// ChangeRole reassigns the user's platform role. Callers are responsible for
// ensuring only platform admins reach this path; a user can never change
// their own role through the self-update surface.
func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) IsPlatformAdmin() bool {
	return u.role == authorization.RolePlatformAdmin
}
