package usecases

import (
	"context"
	"math"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// topDepartmentsLimit bounds the department breakdown to the busiest
// departments.
const topDepartmentsLimit = 6

type GetStatisticsUseCase struct {
	statsRepo  ticket.StatsRepository
	statsCache StatisticsCache
	logger     logger.Interface
}

func NewGetStatisticsUseCase(
	statsRepo ticket.StatsRepository,
	statsCache StatisticsCache,
	logger logger.Interface,
) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{
		statsRepo:  statsRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

func (uc *GetStatisticsUseCase) Execute(ctx context.Context) (*dto.StatisticsDTO, error) {
	if cached, err := uc.statsCache.Get(ctx); err != nil {
		uc.logger.Warnw("statistics cache read failed", "error", err)
	} else if cached != nil {
		return cached, nil
	}

	total, err := uc.statsRepo.CountTickets(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets", "error", err)
		return nil, err
	}

	statusStats, err := uc.statsRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by status", "error", err)
		return nil, err
	}

	typeStats, err := uc.statsRepo.CountByType(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by type", "error", err)
		return nil, err
	}

	departmentStats, err := uc.statsRepo.TopDepartments(ctx, topDepartmentsLimit)
	if err != nil {
		uc.logger.Errorw("failed to count tickets by department", "error", err)
		return nil, err
	}

	var resolved int64
	for _, s := range statusStats {
		if s.Status == vo.StatusResolved.String() {
			resolved = s.Count
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(resolved) / float64(total) * 100))
	}

	stats := &dto.StatisticsDTO{
		TotalTickets:       total,
		ResolvedTickets:    resolved,
		ResolvedPercentage: percentage,
		TypeStats:          typeStats,
		StatusStats:        statusStats,
		DepartmentStats:    departmentStats,
	}

	if err := uc.statsCache.Set(ctx, stats); err != nil {
		uc.logger.Warnw("statistics cache write failed", "error", err)
	}

	return stats, nil
}
