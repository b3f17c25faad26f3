package mappers

import (
	"fmt"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/models"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models.
type UserMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.UserModel) (*user.User, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *user.User) (*models.UserModel, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	role := authorization.ParseUserRole(model.Role)

	authData := &user.UserAuthData{
		PasswordHash:           model.PasswordHash,
		PasswordResetToken:     model.PasswordResetToken,
		PasswordResetExpiresAt: model.PasswordResetExpiresAt,
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Name,
		email,
		role,
		model.CreatedAt,
		model.UpdatedAt,
		authData,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	authData := entity.GetAuthData()

	return &models.UserModel{
		ID:                     entity.ID(),
		Name:                   entity.Name(),
		Email:                  entity.Email().String(),
		Role:                   entity.Role().String(),
		PasswordHash:           authData.PasswordHash,
		PasswordResetToken:     authData.PasswordResetToken,
		PasswordResetExpiresAt: authData.PasswordResetExpiresAt,
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
	}, nil
}
