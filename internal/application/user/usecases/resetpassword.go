package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	token, err := vo.NewTokenFromValue(cmd.Token)
	if err != nil {
		return errors.NewValidationError("invalid or expired reset token")
	}

	newPassword, err := vo.NewPassword(cmd.NewPassword)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	existingUser, err := uc.userRepo.GetByPasswordResetToken(ctx, token.Hash())
	if err != nil {
		uc.logger.Errorw("failed to look up reset token", "error", err)
		return err
	}
	if existingUser == nil {
		return errors.NewValidationError("invalid or expired reset token")
	}

	if err := existingUser.ResetPassword(cmd.Token, newPassword, uc.hasher); err != nil {
		return errors.NewValidationError("invalid or expired reset token")
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to persist password reset", "user_id", existingUser.ID(), "error", err)
		return err
	}

	uc.logger.Infow("password reset completed", "user_id", existingUser.ID())
	return nil
}
