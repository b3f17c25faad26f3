package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	statsCache StatisticsCache
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	statsCache StatisticsCache,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		statsCache: statsCache,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.UpdateStatus(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := uc.statsCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", cmd.TicketID,
		"old_status", oldStatus.String(),
		"new_status", newStatus.String(),
	)

	return dto.ToTicketDTO(t), nil
}
