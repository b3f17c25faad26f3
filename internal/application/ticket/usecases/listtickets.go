package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/utils"
)

type ListTicketsQuery struct {
	UserID   uint
	Role     authorization.UserRole
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Items    []dto.TicketListItemDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := ticket.Filter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	// Non-admins only ever see their own tickets.
	if !query.Role.IsAdmin() {
		userID := query.UserID
		filter.UserID = &userID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := make([]dto.TicketListItemDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, dto.ToTicketListItemDTO(t))
	}

	return &ListTicketsResult{
		Items:    items,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
