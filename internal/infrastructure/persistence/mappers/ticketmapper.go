package mappers

import (
	"fmt"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	// Comments and attachments must be loaded separately by the repository.
	ToDomain(model *models.TicketModel, comments []*models.TicketCommentModel, attachments []*models.TicketAttachmentModel) (*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(ticketID uint, c *ticket.Comment) *models.TicketCommentModel

	// AttachmentToModel converts an attachment domain entity to a persistence model.
	AttachmentToModel(ticketID uint, a *ticket.Attachment) *models.TicketAttachmentModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		Seq:            t.Seq(),
		Title:          t.Title(),
		Description:    t.Description(),
		Type:           t.Type(),
		Department:     t.Department(),
		Status:         t.Status().String(),
		SubmitterName:  t.SubmitterName(),
		SubmitterEmail: t.SubmitterEmail(),
		UserID:         t.UserID(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel, commentModels []*models.TicketCommentModel, attachmentModels []*models.TicketAttachmentModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid ticket status (id=%d): %w", model.ID, err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for _, cm := range commentModels {
		comment, err := ticket.ReconstructComment(cm.ID, cm.TicketID, cm.Author, cm.Text, cm.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct comment (id=%d): %w", cm.ID, err)
		}
		comments = append(comments, comment)
	}

	attachments := make([]*ticket.Attachment, 0, len(attachmentModels))
	for _, am := range attachmentModels {
		attachment, err := ticket.ReconstructAttachment(am.ID, am.TicketID, am.Filename, am.ContentType, am.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct attachment (id=%d): %w", am.ID, err)
		}
		attachments = append(attachments, attachment)
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Seq,
		model.Title,
		model.Description,
		model.Type,
		model.Department,
		status,
		model.SubmitterName,
		model.SubmitterEmail,
		model.UserID,
		model.CreatedAt,
		model.UpdatedAt,
		comments,
		attachments,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket entity (id=%d): %w", model.ID, err)
	}

	return entity, nil
}

func (m *TicketMapperImpl) CommentToModel(ticketID uint, c *ticket.Comment) *models.TicketCommentModel {
	return &models.TicketCommentModel{
		ID:        c.ID(),
		TicketID:  ticketID,
		Author:    c.Author(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AttachmentToModel(ticketID uint, a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:          a.ID(),
		TicketID:    ticketID,
		Filename:    a.Filename(),
		ContentType: a.ContentType(),
		Size:        int64(a.Size()),
		Data:        a.Data(),
	}
}
