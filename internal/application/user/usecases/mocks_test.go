package usecases

import (
	"context"
	"fmt"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc                  func(ctx context.Context, u *user.User) error
	GetByIDFunc                 func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc              func(ctx context.Context, email string) (*user.User, error)
	GetByPasswordResetTokenFunc func(ctx context.Context, tokenHash string) (*user.User, error)
	UpdateFunc                  func(ctx context.Context, u *user.User) error
	ExistsByEmailFunc           func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByPasswordResetToken(ctx context.Context, tokenHash string) (*user.User, error) {
	if m.GetByPasswordResetTokenFunc != nil {
		return m.GetByPasswordResetTokenFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type fakeHasher struct{}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, email string, role authorization.UserRole) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(userID uint, email string, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, role)
	}
	return "test-token", 86400, nil
}

type mockMailService struct {
	SendPasswordResetEmailFunc func(ctx context.Context, toEmail, toName, resetToken string) error
}

func (m *mockMailService) SendPasswordResetEmail(ctx context.Context, toEmail, toName, resetToken string) error {
	if m.SendPasswordResetEmailFunc != nil {
		return m.SendPasswordResetEmailFunc(ctx, toEmail, toName, resetToken)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
