package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/repository/memory"
	"github.com/sovoz-hq/sovoz/internal/shared/config"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return assert.AnError
	}
	return nil
}

func TestEnsureAdminUser_CreatesAdmin(t *testing.T) {
	repo := memory.NewUserRepository()
	cfg := &config.BootstrapConfig{
		AdminName:     "Administrator",
		AdminEmail:    "admin@example.com",
		AdminPassword: "bootstrap-secret",
	}

	err := EnsureAdminUser(context.Background(), repo, fakeHasher{}, cfg, logger.NewNopLogger())
	require.NoError(t, err)

	admin, err := repo.GetByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.True(t, admin.IsAdmin())
	assert.NoError(t, admin.VerifyPassword("bootstrap-secret", fakeHasher{}))
}

func TestEnsureAdminUser_PromotesExistingUser(t *testing.T) {
	repo := memory.NewUserRepository()
	ctx := context.Background()

	email, err := vo.NewEmail("admin@example.com")
	require.NoError(t, err)
	existing, err := user.NewUser("Existing", email)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, existing))
	require.False(t, existing.IsAdmin())

	cfg := &config.BootstrapConfig{AdminEmail: "admin@example.com"}
	require.NoError(t, EnsureAdminUser(ctx, repo, fakeHasher{}, cfg, logger.NewNopLogger()))

	promoted, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin())
}

func TestEnsureAdminUser_SkipsWhenUnconfigured(t *testing.T) {
	repo := memory.NewUserRepository()

	err := EnsureAdminUser(context.Background(), repo, fakeHasher{}, &config.BootstrapConfig{}, logger.NewNopLogger())
	assert.NoError(t, err)
}

func TestEnsureAdminUser_RequiresPasswordForNewAdmin(t *testing.T) {
	repo := memory.NewUserRepository()
	cfg := &config.BootstrapConfig{AdminEmail: "admin@example.com"}

	err := EnsureAdminUser(context.Background(), repo, fakeHasher{}, cfg, logger.NewNopLogger())
	assert.Error(t, err)
}
