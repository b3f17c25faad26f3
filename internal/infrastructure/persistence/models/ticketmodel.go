package models

import (
	"time"

	"github.com/sovoz-hq/sovoz/internal/shared/constants"
)

// TicketModel is the database persistence model for tickets.
type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Seq            uint64 `gorm:"uniqueIndex;not null"`
	Title          string `gorm:"size:200;not null"`
	Description    string `gorm:"type:text;not null"`
	Type           string `gorm:"size:100;not null;index"`
	Department     string `gorm:"size:100;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	SubmitterName  string `gorm:"size:100"`
	SubmitterEmail string `gorm:"size:255"`
	UserID         *uint  `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Note: no foreign key constraints or GORM associations.
	// Comments and attachments are loaded by the repository.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketCommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	Author    string    `gorm:"size:100;not null"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

func (TicketCommentModel) TableName() string {
	return constants.TableTicketComments
}

// TicketAttachmentModel stores attachment bytes inline. Attachments are
// written once at ticket creation and never updated.
type TicketAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TicketID    uint   `gorm:"not null;index"`
	Filename    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100;not null"`
	Size        int64  `gorm:"not null"`
	Data        []byte `gorm:"type:longblob;not null"`
	CreatedAt   time.Time
}

func (TicketAttachmentModel) TableName() string {
	return constants.TableTicketAttachments
}

// TicketSequenceModel is a single-row counter table. The create
// transaction locks the row to hand out gapless sequential numbers.
type TicketSequenceModel struct {
	ID      uint   `gorm:"primaryKey"`
	NextSeq uint64 `gorm:"not null;default:1"`
}

func (TicketSequenceModel) TableName() string {
	return constants.TableTicketSequences
}
