package models

import (
	"time"

	"github.com/sovoz-hq/sovoz/internal/shared/constants"
)

// UserModel is the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID                     uint    `gorm:"primarykey"`
	Name                   string  `gorm:"not null;size:100"`
	Email                  string  `gorm:"uniqueIndex;not null;size:255"`
	Role                   string  `gorm:"not null;default:user;size:20"`
	PasswordHash           string  `gorm:"not null;size:255"`
	PasswordResetToken     *string `gorm:"size:255;index:idx_password_reset_token"`
	PasswordResetExpiresAt *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
