package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
)

func uintPtr(v uint) *uint {
	return &v
}

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Printer broken", "The office printer jams on every job", "Bug", "IT", "John Doe", "john@example.com", uintPtr(1))
	require.NoError(t, err)
	return tk
}

func newTestAttachment(t *testing.T, name, contentType string, size int) *Attachment {
	t.Helper()
	a, err := NewAttachment(name, contentType, make([]byte, size))
	require.NoError(t, err)
	return a
}

func TestNewTicket(t *testing.T) {
	t.Run("creates ticket with defaults", func(t *testing.T) {
		tk := newTestTicket(t)

		assert.Equal(t, uint(0), tk.ID())
		assert.Equal(t, uint64(0), tk.Seq())
		assert.Equal(t, vo.StatusNew, tk.Status())
		assert.Equal(t, "Bug", tk.Type())
		assert.Equal(t, "IT", tk.Department())
		assert.False(t, tk.IsAnonymous())
		assert.Empty(t, tk.Comments())
		assert.Empty(t, tk.Attachments())
	})

	t.Run("anonymous ticket has nil owner", func(t *testing.T) {
		tk, err := NewTicket("Title", "Description", "Feedback", "HR", "Jane", "jane@example.com", nil)
		require.NoError(t, err)
		assert.True(t, tk.IsAnonymous())
		assert.Nil(t, tk.UserID())
	})

	tests := []struct {
		name        string
		title       string
		description string
		ticketType  string
		department  string
	}{
		{"missing title", "", "desc", "Bug", "IT"},
		{"title too long", strings.Repeat("a", 201), "desc", "Bug", "IT"},
		{"missing description", "title", "", "Bug", "IT"},
		{"description too long", "title", strings.Repeat("a", 5001), "Bug", "IT"},
		{"missing type", "title", "desc", "", "IT"},
		{"missing department", "title", "desc", "Bug", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.title, tt.description, tt.ticketType, tt.department, "", "", nil)
			assert.Error(t, err)
		})
	}
}

func TestTicketSetIDAndSeq(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.SetSeq(7))
	assert.Equal(t, uint64(7), tk.Seq())
	assert.Error(t, tk.SetSeq(8), "seq is assigned once")

	require.NoError(t, tk.SetID(3))
	assert.Equal(t, uint(3), tk.ID())
	assert.Error(t, tk.SetID(4))
}

func TestTicketChangeStatus(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusInProgress))
	assert.Equal(t, vo.StatusInProgress, tk.Status())

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	assert.Equal(t, vo.StatusResolved, tk.Status())

	// resolved tickets can be reopened
	require.NoError(t, tk.ChangeStatus(vo.StatusNew))
	assert.Equal(t, vo.StatusNew, tk.Status())

	err := tk.ChangeStatus(vo.TicketStatus("Closed"))
	assert.Error(t, err)
	assert.Equal(t, vo.StatusNew, tk.Status(), "status unchanged on invalid input")

	assert.NoError(t, tk.ChangeStatus(vo.StatusNew), "same-status change is a no-op")
}

func TestTicketAddComment(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.SetID(5))

	c, err := NewComment("Jane Admin", "Looking into it")
	require.NoError(t, err)

	require.NoError(t, tk.AddComment(c))
	comments := tk.Comments()
	require.Len(t, comments, 1)
	assert.Equal(t, "Jane Admin", comments[0].Author())
	assert.Equal(t, uint(5), comments[0].TicketID())

	assert.Error(t, tk.AddComment(nil))
}

func TestNewComment(t *testing.T) {
	t.Run("rejects blank text", func(t *testing.T) {
		_, err := NewComment("Jane", "   ")
		assert.Error(t, err)
	})

	t.Run("rejects missing author", func(t *testing.T) {
		_, err := NewComment("", "hello")
		assert.Error(t, err)
	})

	t.Run("records creation time", func(t *testing.T) {
		c, err := NewComment("Jane", "hello")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), c.CreatedAt(), time.Second)
	})
}

func TestNewAttachment(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"jpeg allowed", "image/jpeg", false},
		{"png allowed", "image/png", false},
		{"mp4 allowed", "video/mp4", false},
		{"gif rejected", "image/gif", true},
		{"pdf rejected", "application/pdf", true},
		{"executable rejected", "application/octet-stream", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAttachment("file", tt.contentType, []byte{1, 2, 3})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("rejects empty data", func(t *testing.T) {
		_, err := NewAttachment("file.png", "image/png", nil)
		assert.Error(t, err)
	})

	t.Run("rejects empty filename", func(t *testing.T) {
		_, err := NewAttachment("", "image/png", []byte{1})
		assert.Error(t, err)
	})
}

func TestValidateAttachments(t *testing.T) {
	t.Run("accepts within cap", func(t *testing.T) {
		attachments := []*Attachment{
			newTestAttachment(t, "a.png", "image/png", 4<<20),
			newTestAttachment(t, "b.jpg", "image/jpeg", 4<<20),
		}
		assert.NoError(t, ValidateAttachments(attachments, MaxAttachmentTotalBytes))
	})

	t.Run("rejects combined size over cap", func(t *testing.T) {
		attachments := []*Attachment{
			newTestAttachment(t, "a.mp4", "video/mp4", 6<<20),
			newTestAttachment(t, "b.mp4", "video/mp4", 5<<20),
		}
		assert.Error(t, ValidateAttachments(attachments, MaxAttachmentTotalBytes))
	})

	t.Run("empty list is valid", func(t *testing.T) {
		assert.NoError(t, ValidateAttachments(nil, MaxAttachmentTotalBytes))
	})
}

func TestAttachFiles(t *testing.T) {
	t.Run("attaches at creation", func(t *testing.T) {
		tk := newTestTicket(t)
		err := tk.AttachFiles([]*Attachment{newTestAttachment(t, "a.png", "image/png", 10)}, MaxAttachmentTotalBytes)
		require.NoError(t, err)
		assert.Len(t, tk.Attachments(), 1)
	})

	t.Run("immutable after persistence", func(t *testing.T) {
		tk := newTestTicket(t)
		require.NoError(t, tk.SetID(1))
		err := tk.AttachFiles([]*Attachment{newTestAttachment(t, "a.png", "image/png", 10)}, MaxAttachmentTotalBytes)
		assert.Error(t, err)
	})
}

func TestAttachmentAt(t *testing.T) {
	tk := newTestTicket(t)
	require.NoError(t, tk.AttachFiles([]*Attachment{
		newTestAttachment(t, "first.png", "image/png", 10),
		newTestAttachment(t, "second.jpg", "image/jpeg", 10),
	}, MaxAttachmentTotalBytes))

	a, err := tk.AttachmentAt(1)
	require.NoError(t, err)
	assert.Equal(t, "second.jpg", a.Filename())

	_, err = tk.AttachmentAt(2)
	assert.Error(t, err)

	_, err = tk.AttachmentAt(-1)
	assert.Error(t, err)
}
