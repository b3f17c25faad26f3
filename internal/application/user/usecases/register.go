package usecases

import (
	"context"
	"time"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/sanitize"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

// UserResult is the outward representation of an account.
type UserResult struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult pairs an account with a freshly issued access token.
type AuthResult struct {
	User      UserResult `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expires_in"`
}

type RegisterUseCase struct {
	userRepo    user.Repository
	hasher      user.PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	name := sanitize.Text(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	// Public registration always produces a regular user.
	newUser, err := user.NewUser(name, email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(password, uc.hasher); err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	token, expiresIn, err := uc.tokenIssuer.Generate(newUser.ID(), newUser.Email().String(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email().String())

	return &AuthResult{
		User:      toUserResult(newUser),
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}

func toUserResult(u *user.User) UserResult {
	return UserResult{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().String(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}
