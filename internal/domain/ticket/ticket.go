package ticket

import (
	"fmt"
	"time"

	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/biztime"
)

// Ticket is the aggregate root for a support request. Comments and
// attachments are owned by the ticket and share its lifecycle.
type Ticket struct {
	id             uint
	seq            uint64
	title          string
	description    string
	ticketType     string
	department     string
	status         vo.TicketStatus
	submitterName  string
	submitterEmail string
	userID         *uint
	createdAt      time.Time
	updatedAt      time.Time
	comments       []*Comment
	attachments    []*Attachment
}

func NewTicket(
	title string,
	description string,
	ticketType string,
	department string,
	submitterName string,
	submitterEmail string,
	userID *uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(ticketType) == 0 {
		return nil, fmt.Errorf("type is required")
	}
	if len(department) == 0 {
		return nil, fmt.Errorf("department is required")
	}
	if userID != nil && *userID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:          title,
		description:    description,
		ticketType:     ticketType,
		department:     department,
		status:         vo.StatusNew,
		submitterName:  submitterName,
		submitterEmail: submitterEmail,
		userID:         userID,
		createdAt:      now,
		updatedAt:      now,
		comments:       []*Comment{},
		attachments:    []*Attachment{},
	}, nil
}

func ReconstructTicket(
	id uint,
	seq uint64,
	title string,
	description string,
	ticketType string,
	department string,
	status vo.TicketStatus,
	submitterName string,
	submitterEmail string,
	userID *uint,
	createdAt, updatedAt time.Time,
	comments []*Comment,
	attachments []*Attachment,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if seq == 0 {
		return nil, fmt.Errorf("ticket seq is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	if comments == nil {
		comments = []*Comment{}
	}
	if attachments == nil {
		attachments = []*Attachment{}
	}

	return &Ticket{
		id:             id,
		seq:            seq,
		title:          title,
		description:    description,
		ticketType:     ticketType,
		department:     department,
		status:         status,
		submitterName:  submitterName,
		submitterEmail: submitterEmail,
		userID:         userID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		comments:       comments,
		attachments:    attachments,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

// Seq is the human-facing sequential ticket number, assigned once at
// creation and never reused.
func (t *Ticket) Seq() uint64 {
	return t.seq
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Type() string {
	return t.ticketType
}

func (t *Ticket) Department() string {
	return t.department
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) SubmitterName() string {
	return t.submitterName
}

func (t *Ticket) SubmitterEmail() string {
	return t.submitterEmail
}

// UserID returns the owning user id, nil for anonymous submissions.
func (t *Ticket) UserID() *uint {
	return t.userID
}

func (t *Ticket) IsAnonymous() bool {
	return t.userID == nil
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

// AttachmentAt returns the attachment at the given zero-based index.
func (t *Ticket) AttachmentAt(index int) (*Attachment, error) {
	if index < 0 || index >= len(t.attachments) {
		return nil, fmt.Errorf("attachment index %d out of range", index)
	}
	return t.attachments[index], nil
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	for _, c := range t.comments {
		c.setTicketID(id)
	}
	for _, a := range t.attachments {
		a.setTicketID(id)
	}
	return nil
}

// SetSeq assigns the sequential number. It can only be set once.
func (t *Ticket) SetSeq(seq uint64) error {
	if t.seq != 0 {
		return fmt.Errorf("ticket seq is already set")
	}
	if seq == 0 {
		return fmt.Errorf("ticket seq cannot be zero")
	}
	t.seq = seq
	return nil
}

// ChangeStatus moves the ticket to newStatus. Any transition within the
// valid set is allowed, including reopening a resolved ticket.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	return nil
}

func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}

	comment.setTicketID(t.id)
	t.comments = append(t.comments, comment)
	t.updatedAt = biztime.NowUTC()

	return nil
}

// AttachFiles validates and attaches files at submission time. Attachments
// cannot be added to a persisted ticket.
func (t *Ticket) AttachFiles(attachments []*Attachment, maxTotalBytes int64) error {
	if t.id != 0 {
		return fmt.Errorf("attachments are immutable after creation")
	}

	if err := ValidateAttachments(attachments, maxTotalBytes); err != nil {
		return err
	}

	t.attachments = append(t.attachments, attachments...)
	return nil
}

func (t *Ticket) Validate() error {
	if len(t.title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(t.description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(t.ticketType) == 0 {
		return fmt.Errorf("type is required")
	}
	if len(t.department) == 0 {
		return fmt.Errorf("department is required")
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status: %s", t.status)
	}
	return nil
}
