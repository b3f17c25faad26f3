package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) ([]dto.CommentDTO, error)
}

type GetAttachmentExecutor interface {
	Execute(ctx context.Context, query GetAttachmentQuery) (*AttachmentResult, error)
}

type GetStatisticsExecutor interface {
	Execute(ctx context.Context) (*dto.StatisticsDTO, error)
}

// StatisticsCache caches the computed statistics projection. Writes that
// change ticket counts invalidate it.
type StatisticsCache interface {
	Get(ctx context.Context) (*dto.StatisticsDTO, error)
	Set(ctx context.Context, stats *dto.StatisticsDTO) error
	Invalidate(ctx context.Context) error
}
