package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/models"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// StatsRepository serves the aggregation queries behind the statistics
// endpoint. Results are cached upstream, so every query here hits the
// database directly.
type StatsRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewStatsRepository(db *gorm.DB, logger logger.Interface) ticket.StatsRepository {
	return &StatsRepository{
		db:     db,
		logger: logger,
	}
}

func (r *StatsRepository) CountTickets(ctx context.Context) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	return count, nil
}

func (r *StatsRepository) CountByStatus(ctx context.Context) ([]ticket.StatusCount, error) {
	var counts []ticket.StatusCount

	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		r.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	return counts, nil
}

func (r *StatsRepository) CountByType(ctx context.Context) ([]ticket.TypeCount, error) {
	var counts []ticket.TypeCount

	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		r.logger.Errorw("failed to count tickets by type", "error", err)
		return nil, fmt.Errorf("failed to count tickets by type: %w", err)
	}

	return counts, nil
}

func (r *StatsRepository) TopDepartments(ctx context.Context, limit int) ([]ticket.DepartmentCount, error) {
	var counts []ticket.DepartmentCount

	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Select("department, COUNT(*) AS count").
		Group("department").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error; err != nil {
		r.logger.Errorw("failed to count tickets by department", "error", err)
		return nil, fmt.Errorf("failed to count tickets by department: %w", err)
	}

	return counts, nil
}
