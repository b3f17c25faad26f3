package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type GetAttachmentQuery struct {
	TicketID uint
	Index    int
	UserID   uint
	Role     authorization.UserRole
}

type AttachmentResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

type GetAttachmentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetAttachmentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetAttachmentUseCase {
	return &GetAttachmentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetAttachmentUseCase) Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentResult, error) {
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
		return nil, errors.NewForbiddenError("access to this ticket is not allowed")
	}

	attachment, err := t.AttachmentAt(query.Index)
	if err != nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	return &AttachmentResult{
		Filename:    attachment.Filename(),
		ContentType: attachment.ContentType(),
		Data:        attachment.Data(),
	}, nil
}
