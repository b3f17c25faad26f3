package dto

import (
	"time"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
)

type TicketDTO struct {
	ID             uint            `json:"id"`
	Seq            uint64          `json:"seq"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Type           string          `json:"type"`
	Department     string          `json:"department"`
	Status         string          `json:"status"`
	SubmitterName  string          `json:"submitter_name,omitempty"`
	SubmitterEmail string          `json:"submitter_email,omitempty"`
	UserID         *uint           `json:"user_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Comments       []CommentDTO    `json:"comments"`
	Attachments    []AttachmentDTO `json:"attachments"`
}

type CommentDTO struct {
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentDTO carries attachment metadata only. Bytes are served by the
// dedicated download endpoint.
type AttachmentDTO struct {
	Index       int    `json:"index"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type TicketListItemDTO struct {
	ID         uint      `json:"id"`
	Seq        uint64    `json:"seq"`
	Title      string    `json:"title"`
	Type       string    `json:"type"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	UserID     *uint     `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatisticsDTO struct {
	TotalTickets       int64                    `json:"totalTickets"`
	ResolvedTickets    int64                    `json:"resolvedTickets"`
	ResolvedPercentage int                      `json:"resolvedPercentage"`
	TypeStats          []ticket.TypeCount       `json:"typeStats"`
	StatusStats        []ticket.StatusCount     `json:"statusStats"`
	DepartmentStats    []ticket.DepartmentCount `json:"departmentStats"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	comments := make([]CommentDTO, 0, len(t.Comments()))
	for _, c := range t.Comments() {
		comments = append(comments, ToCommentDTO(c))
	}

	attachments := make([]AttachmentDTO, 0, len(t.Attachments()))
	for i, a := range t.Attachments() {
		attachments = append(attachments, AttachmentDTO{
			Index:       i,
			Filename:    a.Filename(),
			ContentType: a.ContentType(),
			Size:        a.Size(),
		})
	}

	return &TicketDTO{
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
		Comments:       comments,
		Attachments:    attachments,
	}
}

func ToCommentDTO(c *ticket.Comment) CommentDTO {
	return CommentDTO{
		Author:    c.Author(),
		Text:      c.Text(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:         t.ID(),
		Seq:        t.Seq(),
		Title:      t.Title(),
		Type:       t.Type(),
		Department: t.Department(),
		Status:     t.Status().String(),
		UserID:     t.UserID(),
		CreatedAt:  t.CreatedAt(),
	}
}
