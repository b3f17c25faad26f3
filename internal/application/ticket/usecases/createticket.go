package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/shared/errors"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
	"github.com/sovoz-hq/sovoz/internal/shared/sanitize"
	"github.com/sovoz-hq/sovoz/internal/shared/utils"
)

type AttachmentInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CreateTicketCommand struct {
	Title          string `validate:"required,max=200"`
	Description    string `validate:"required,max=5000"`
	Type           string `validate:"required,max=100"`
	Department     string `validate:"required,max=100"`
	SubmitterName  string `validate:"max=100"`
	SubmitterEmail string `validate:"omitempty,email"`
	// UserID is nil for anonymous submissions.
	UserID      *uint
	Attachments []AttachmentInput
}

type CreateTicketUseCase struct {
	ticketRepo    ticket.Repository
	statsCache    StatisticsCache
	maxTotalBytes int64
	logger        logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	statsCache StatisticsCache,
	maxTotalBytes int64,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:    ticketRepo,
		statsCache:    statsCache,
		maxTotalBytes: maxTotalBytes,
		logger:        logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "anonymous", cmd.UserID == nil)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		sanitize.Text(cmd.Type),
		sanitize.Text(cmd.Department),
		sanitize.Text(cmd.SubmitterName),
		cmd.SubmitterEmail,
		cmd.UserID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	attachments := make([]*ticket.Attachment, 0, len(cmd.Attachments))
	for _, in := range cmd.Attachments {
		a, err := ticket.NewAttachment(in.Filename, in.ContentType, in.Data)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		attachments = append(attachments, a)
	}

	if err := newTicket.AttachFiles(attachments, uc.maxTotalBytes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	if err := uc.statsCache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("failed to invalidate statistics cache", "error", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "seq", newTicket.Seq())

	return dto.ToTicketDTO(newTicket), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if err := utils.ValidateStruct(cmd); err != nil {
		return err
	}

	if cmd.UserID != nil && *cmd.UserID == 0 {
		return errors.NewValidationError("user ID cannot be zero")
	}

	return nil
}
