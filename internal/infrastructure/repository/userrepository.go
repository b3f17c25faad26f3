package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/mappers"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/models"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// UserRepository is the GORM-backed implementation of user.Repository.
// Lookups return (nil, nil) when no row matches.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set user ID", "error", err)
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}

	return entity, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}

	return entity, nil
}

func (r *UserRepository) GetByPasswordResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("password_reset_token = ?", tokenHash).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by reset token", "error", err)
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}

	return entity, nil
}

func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	// Save with explicit column selection so nil reset tokens clear the
	// stored value instead of being skipped as zero values.
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("name", "email", "role", "password_hash", "password_reset_token", "password_reset_expires_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: id=%d", model.ID)
	}

	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check user existence by email", "error", err)
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}
