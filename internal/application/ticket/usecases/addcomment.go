package usecases

import (
	"context"
	"strings"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/sanitize"
)

type AddCommentCommand struct {
	TicketID uint
	Author   string
	Text     string
	UserID   uint
	Role     authorization.UserRole
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddCommentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) ([]dto.CommentDTO, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if strings.TrimSpace(cmd.Text) == "" {
		return nil, errors.NewValidationError("comment text cannot be empty")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !authorization.CanAccessTicket(cmd.UserID, cmd.Role, t.UserID()) {
		return nil, errors.NewForbiddenError("access to this ticket is not allowed")
	}

	comment, err := ticket.NewComment(sanitize.Text(cmd.Author), sanitize.Text(cmd.Text))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := t.AddComment(comment); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.AddComment(ctx, t.ID(), comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "author", comment.Author())

	comments := make([]dto.CommentDTO, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		comments = append(comments, dto.ToCommentDTO(c))
	}

	return comments, nil
}
