// Package migrate implements the `sovoz migrate` command group.
package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sovoz-hq/sovoz/internal/infrastructure/auth"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/config"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/database"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/migration"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/seeds"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/repository"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run pending migrations, roll them back, or inspect the current migration status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed bootstrap data",
		Long:  `Create or update the bootstrap admin account from configuration.`,
		RunE:  runSeed,
	}
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(env)
	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy("mysql")
	goose, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("rollback requires the goose migration strategy")
	}

	if err := goose.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	cfg := config.Get()
	userRepo := repository.NewUserRepository(database.Get(), log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := seeds.EnsureAdminUser(ctx, userRepo, hasher, &cfg.Bootstrap, log); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	log.Infow("seed complete")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy("mysql")
	goose, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("status requires the goose migration strategy")
	}

	return goose.Status(database.Get())
}
