// Package server implements the `sovoz server` command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/sovoz-hq/sovoz/internal/infrastructure/auth"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/config"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/database"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/migration"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/seeds"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/repository"
	httpRouter "github.com/sovoz-hq/sovoz/internal/interfaces/http"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

var (
	env           string
	skipMigration bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Sovoz helpdesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&skipMigration, "skip-migration", false, "Skip database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env)

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	if !skipMigration {
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get()); err != nil {
			log.Fatalw("database migration failed", "error", err)
		}
	}

	if err := seedAdmin(cfg, log); err != nil {
		log.Fatalw("admin bootstrap failed", "error", err)
	}

	router := httpRouter.NewRouter(cfg, database.Get(), log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func seedAdmin(cfg *config.Config, log logger.Interface) error {
	userRepo := repository.NewUserRepository(database.Get(), log)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return seeds.EnsureAdminUser(ctx, userRepo, hasher, &cfg.Bootstrap, log)
}
