package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo    user.Repository
	hasher      user.PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}

	// Uniform failure for unknown email and wrong password: no account
	// enumeration through this endpoint.
	if existingUser == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	token, expiresIn, err := uc.tokenIssuer.Generate(existingUser.ID(), existingUser.Email().String(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", existingUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &AuthResult{
		User:      toUserResult(existingUser),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
