package usecases

import (
	"context"
	"time"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

type RequestPasswordResetUseCase struct {
	userRepo    user.Repository
	mailService MailService
	tokenTTL    time.Duration
	logger      logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	mailService MailService,
	tokenTTL time.Duration,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:    userRepo,
		mailService: mailService,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Execute always reports success to the caller. Whether the account exists
// is only observable through the mailbox.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil
	}
	if existingUser == nil {
		return nil
	}

	token, err := existingUser.GeneratePasswordResetToken(uc.tokenTTL)
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "user_id", existingUser.ID(), "error", err)
		return nil
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to persist reset token", "user_id", existingUser.ID(), "error", err)
		return nil
	}

	if err := uc.mailService.SendPasswordResetEmail(ctx, existingUser.Email().String(), existingUser.Name(), token.Value()); err != nil {
		uc.logger.Errorw("failed to send reset email", "user_id", existingUser.ID(), "error", err)
		return nil
	}

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())
	return nil
}
