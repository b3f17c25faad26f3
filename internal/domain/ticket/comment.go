package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/sovoz-hq/sovoz/internal/shared/biztime"
)

// Comment is an append-only note on a ticket. Comments are never edited
// or deleted once recorded.
type Comment struct {
	id        uint
	ticketID  uint
	author    string
	text      string
	createdAt time.Time
}

func NewComment(author, text string) (*Comment, error) {
	if author == "" {
		return nil, fmt.Errorf("author is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(text) > 5000 {
		return nil, fmt.Errorf("text exceeds maximum length of 5000 characters")
	}

	return &Comment{
		author:    author,
		text:      text,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructComment(id, ticketID uint, author, text string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		author:    author,
		text:      text,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) Author() string {
	return c.author
}

func (c *Comment) Text() string {
	return c.text
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Comment) setTicketID(ticketID uint) {
	c.ticketID = ticketID
}
