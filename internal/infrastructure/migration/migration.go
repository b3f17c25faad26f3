package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/sovoz-hq/sovoz/internal/shared/constants"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// Manager handles database migrations with different strategies.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager chooses the strategy for the environment: development
// auto-migrates from the models, everything else runs the versioned
// scripts.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case constants.EnvDevelopment:
		strategy = NewGormAutoMigrateStrategy()
	case constants.EnvTest, constants.EnvProduction:
		strategy = NewGooseStrategy("mysql")
	default:
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a migration manager with a specific strategy.
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy.
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy.
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
