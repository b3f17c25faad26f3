package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/models"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema from the model structs.
// Convenient in development; production uses versioned SQL scripts.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("starting auto migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels returns every persistence model the schema needs.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.TicketCommentModel{},
		&models.TicketAttachmentModel{},
		&models.TicketSequenceModel{},
	}
}
