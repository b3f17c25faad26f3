package user

import (
	"fmt"
	"time"

	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/biztime"
)

// User represents the user aggregate root (pure domain model without persistence concerns)
type User struct {
	id                     uint
	name                   string
	email                  *vo.Email
	role                   authorization.UserRole
	createdAt              time.Time
	updatedAt              time.Time
	passwordHash           string
	passwordResetToken     *string
	passwordResetExpiresAt *time.Time
}

// NewUser creates a new user aggregate with initial values
func NewUser(name string, email *vo.Email) (*User, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	now := biztime.NowUTC()
	return &User{
		name:      name,
		email:     email,
		role:      authorization.RoleUser,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// UserAuthData carries credential state between the aggregate and persistence.
type UserAuthData struct {
	PasswordHash           string
	PasswordResetToken     *string
	PasswordResetExpiresAt *time.Time
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(id uint, name string, email *vo.Email, role authorization.UserRole, createdAt, updatedAt time.Time, authData *UserAuthData) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	u := &User{
		id:        id,
		name:      name,
		email:     email,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}

	if authData != nil {
		u.passwordHash = authData.PasswordHash
		u.passwordResetToken = authData.PasswordResetToken
		u.passwordResetExpiresAt = authData.PasswordResetExpiresAt
	}

	return u, nil
}

func (u *User) GetAuthData() *UserAuthData {
	return &UserAuthData{
		PasswordHash:           u.passwordHash,
		PasswordResetToken:     u.passwordResetToken,
		PasswordResetExpiresAt: u.passwordResetExpiresAt,
	}
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// Name returns the user's display name
func (u *User) Name() string {
	return u.name
}

// Email returns the user's email
func (u *User) Email() *vo.Email {
	return u.email
}

// Role returns the user's role
func (u *User) Role() authorization.UserRole {
	return u.role
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// PromoteToAdmin grants the admin role. Used by the bootstrap seeding path.
func (u *User) PromoteToAdmin() {
	if u.role.IsAdmin() {
		return
	}
	u.role = authorization.RoleAdmin
	u.updatedAt = biztime.NowUTC()
}
