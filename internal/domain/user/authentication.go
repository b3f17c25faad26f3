package user

import (
	"fmt"
	"time"

	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/biztime"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

func (u *User) SetPassword(password *vo.Password, hasher PasswordHasher) error {
	if password == nil {
		return fmt.Errorf("password cannot be nil")
	}

	hash, err := hasher.Hash(password.String())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()

	return nil
}

func (u *User) VerifyPassword(plainPassword string, hasher PasswordHasher) error {
	if u.passwordHash == "" {
		return fmt.Errorf("user has no password set")
	}

	if err := hasher.Verify(plainPassword, u.passwordHash); err != nil {
		return fmt.Errorf("invalid password")
	}

	return nil
}

// GeneratePasswordResetToken issues a reset token valid for ttl. The
// returned token carries the plain value for the notification email;
// the aggregate keeps only the hash.
func (u *User) GeneratePasswordResetToken(ttl time.Duration) (*vo.Token, error) {
	token, err := vo.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	hash := token.Hash()
	expiresAt := biztime.NowUTC().Add(ttl)
	u.passwordResetToken = &hash
	u.passwordResetExpiresAt = &expiresAt
	u.updatedAt = biztime.NowUTC()

	return token, nil
}

func (u *User) ResetPassword(plainToken string, newPassword *vo.Password, hasher PasswordHasher) error {
	if u.passwordResetToken == nil || *u.passwordResetToken == "" {
		return fmt.Errorf("no password reset token found")
	}

	if u.passwordResetExpiresAt == nil || biztime.NowUTC().After(*u.passwordResetExpiresAt) {
		return fmt.Errorf("password reset token has expired")
	}

	token, err := vo.NewTokenFromValue(plainToken)
	if err != nil {
		return fmt.Errorf("invalid token: %w", err)
	}

	if token.Hash() != *u.passwordResetToken {
		return fmt.Errorf("invalid reset token")
	}

	if err := u.SetPassword(newPassword, hasher); err != nil {
		return fmt.Errorf("failed to set new password: %w", err)
	}

	u.passwordResetToken = nil
	u.passwordResetExpiresAt = nil

	return nil
}

func (u *User) HasPassword() bool {
	return u.passwordHash != ""
}
