package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
)

// TokenIssuer issues signed access tokens for authenticated principals.
type TokenIssuer interface {
	Generate(userID uint, email string, role authorization.UserRole) (token string, expiresIn int64, err error)
}

// MailService delivers account notifications.
type MailService interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error)
}

type GetCurrentUserExecutor interface {
	Execute(ctx context.Context, query GetCurrentUserQuery) (*UserResult, error)
}

type RequestPasswordResetExecutor interface {
	Execute(ctx context.Context, cmd RequestPasswordResetCommand) error
}

type ResetPasswordExecutor interface {
	Execute(ctx context.Context, cmd ResetPasswordCommand) error
}
