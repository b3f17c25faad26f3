package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type GetCurrentUserQuery struct {
	UserID uint
}

type GetCurrentUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetCurrentUserUseCase(userRepo user.Repository, logger logger.Interface) *GetCurrentUserUseCase {
	return &GetCurrentUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetCurrentUserUseCase) Execute(ctx context.Context, query GetCurrentUserQuery) (*UserResult, error) {
	if query.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", query.UserID, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	result := toUserResult(u)
	return &result, nil
}
