package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	Role     authorization.UserRole
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !authorization.CanAccessTicket(query.UserID, query.Role, t.UserID()) {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, errors.NewForbiddenError("access to this ticket is not allowed")
	}

	return dto.ToTicketDTO(t), nil
}
