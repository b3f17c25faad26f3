package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/mappers"
	"github.com/sovoz-hq/sovoz/internal/infrastructure/persistence/models"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

// ticketSequenceRowID is the primary key of the single counter row in
// ticket_sequences.
const ticketSequenceRowID = 1

// TicketRepository is the GORM-backed implementation of ticket.Repository.
// Create runs in a transaction that locks the sequence counter row, so
// sequential numbers are gapless and never handed out twice.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := r.nextSeq(tx)
		if err != nil {
			return err
		}
		if err := t.SetSeq(seq); err != nil {
			return err
		}

		model := r.mapper.ToModel(t)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create ticket: %w", err)
		}
		if err := t.SetID(model.ID); err != nil {
			return err
		}

		for _, a := range t.Attachments() {
			am := r.mapper.AttachmentToModel(model.ID, a)
			if err := tx.Create(am).Error; err != nil {
				return fmt.Errorf("failed to create attachment: %w", err)
			}
			if err := a.SetID(am.ID); err != nil {
				return err
			}
		}

		for _, c := range t.Comments() {
			cm := r.mapper.CommentToModel(model.ID, c)
			if err := tx.Create(cm).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			if err := c.SetID(cm.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		r.logger.Errorw("failed to create ticket", "error", err)
		return err
	}

	r.logger.Infow("ticket created", "id", t.ID(), "seq", t.Seq())
	return nil
}

// nextSeq reads and advances the counter row inside the caller's
// transaction. The row lock is only needed on MySQL; SQLite serializes
// writing transactions.
func (r *TicketRepository) nextSeq(tx *gorm.DB) (uint64, error) {
	query := tx
	if tx.Dialector.Name() == "mysql" {
		query = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row models.TicketSequenceModel
	err := query.First(&row, ticketSequenceRowID).Error
	if err == gorm.ErrRecordNotFound {
		row = models.TicketSequenceModel{ID: ticketSequenceRowID, NextSeq: 2}
		if err := tx.Create(&row).Error; err != nil {
			return 0, fmt.Errorf("failed to initialize ticket sequence: %w", err)
		}
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read ticket sequence: %w", err)
	}

	seq := row.NextSeq
	if err := tx.Model(&models.TicketSequenceModel{}).
		Where("id = ?", ticketSequenceRowID).
		Update("next_seq", seq+1).Error; err != nil {
		return 0, fmt.Errorf("failed to advance ticket sequence: %w", err)
	}

	return seq, nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	var comments []*models.TicketCommentModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		r.logger.Errorw("failed to load ticket comments", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	// Attachment order is the upload order; indexes into this slice are
	// part of the download URL contract.
	var attachments []*models.TicketAttachmentModel
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("id ASC").
		Find(&attachments).Error; err != nil {
		r.logger.Errorw("failed to load ticket attachments", "id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model, comments, attachments)
	if err != nil {
		r.logger.Errorw("failed to map ticket model to entity", "id", ticketID, "error", err)
		return nil, err
	}

	return entity, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []*models.TicketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&ticketModels).Error; err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	// List rows skip comments and attachments; the detail endpoint loads them.
	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := r.mapper.ToDomain(model, nil, nil)
		if err != nil {
			r.logger.Errorw("failed to map ticket model to entity", "id", model.ID, "error", err)
			return nil, 0, err
		}
		tickets = append(tickets, entity)
	}

	return tickets, total, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"status":     t.Status().String(),
			"updated_at": t.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket status", "id", t.ID(), "error", result.Error)
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found: id=%d", t.ID())
	}

	r.logger.Infow("ticket status updated", "id", t.ID(), "status", t.Status().String())
	return nil
}

func (r *TicketRepository) AddComment(ctx context.Context, ticketID uint, comment *ticket.Comment) error {
	cm := r.mapper.CommentToModel(ticketID, comment)

	if err := r.db.WithContext(ctx).Create(cm).Error; err != nil {
		r.logger.Errorw("failed to add comment", "ticket_id", ticketID, "error", err)
		return fmt.Errorf("failed to add comment: %w", err)
	}

	if err := comment.SetID(cm.ID); err != nil {
		return err
	}

	return nil
}
