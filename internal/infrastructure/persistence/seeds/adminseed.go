package seeds

import (
	"context"
	"fmt"

	"github.com/sovoz-hq/sovoz/internal/domain/user"
	vo "github.com/sovoz-hq/sovoz/internal/domain/user/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/config"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// EnsureAdminUser creates or promotes the bootstrap administrator.
// Registration only ever produces regular users, so the first admin has
// to come from configuration. A no-op when no admin email is configured.
func EnsureAdminUser(ctx context.Context, userRepo user.Repository, hasher user.PasswordHasher, cfg *config.BootstrapConfig, log logger.Interface) error {
	if cfg.AdminEmail == "" {
		log.Debugw("no bootstrap admin configured, skipping")
		return nil
	}

	existing, err := userRepo.GetByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	if existing != nil {
		if existing.IsAdmin() {
			return nil
		}
		existing.PromoteToAdmin()
		if err := userRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to promote bootstrap admin: %w", err)
		}
		log.Infow("existing user promoted to admin", "email", cfg.AdminEmail)
		return nil
	}

	if cfg.AdminPassword == "" {
		return fmt.Errorf("bootstrap admin password is required to create %s", cfg.AdminEmail)
	}

	email, err := vo.NewEmail(cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("invalid bootstrap admin email: %w", err)
	}

	password, err := vo.NewPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("invalid bootstrap admin password: %w", err)
	}

	admin, err := user.NewUser(cfg.AdminName, email)
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	if err := admin.SetPassword(password, hasher); err != nil {
		return fmt.Errorf("failed to set bootstrap admin password: %w", err)
	}
	admin.PromoteToAdmin()

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to persist bootstrap admin: %w", err)
	}

	log.Infow("bootstrap admin created", "email", cfg.AdminEmail)
	return nil
}
