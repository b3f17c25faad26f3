package ticket

import "fmt"

// MaxAttachmentTotalBytes caps the combined size of all attachments on a
// single submission.
const MaxAttachmentTotalBytes = 10 << 20

var allowedAttachmentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"video/mp4":  true,
}

// Attachment is an immutable binary owned by a ticket. It is written once
// at submission time and never modified.
type Attachment struct {
	id          uint
	ticketID    uint
	filename    string
	contentType string
	data        []byte
}

func NewAttachment(filename, contentType string, data []byte) (*Attachment, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if !allowedAttachmentTypes[contentType] {
		return nil, fmt.Errorf("unsupported attachment type: %s", contentType)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("attachment data cannot be empty")
	}

	return &Attachment{
		filename:    filename,
		contentType: contentType,
		data:        data,
	}, nil
}

func ReconstructAttachment(id, ticketID uint, filename, contentType string, data []byte) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		filename:    filename,
		contentType: contentType,
		data:        data,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Data() []byte {
	return a.data
}

func (a *Attachment) Size() int {
	return len(a.data)
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Attachment) setTicketID(ticketID uint) {
	a.ticketID = ticketID
}

// IsAllowedAttachmentType reports whether a MIME type is accepted for upload.
func IsAllowedAttachmentType(contentType string) bool {
	return allowedAttachmentTypes[contentType]
}

// ValidateAttachments checks attachment types and the combined size cap
// before anything is persisted.
func ValidateAttachments(attachments []*Attachment, maxTotalBytes int64) error {
	if maxTotalBytes <= 0 {
		maxTotalBytes = MaxAttachmentTotalBytes
	}

	var total int64
	for _, a := range attachments {
		if a == nil {
			return fmt.Errorf("attachment cannot be nil")
		}
		if !allowedAttachmentTypes[a.ContentType()] {
			return fmt.Errorf("unsupported attachment type: %s", a.ContentType())
		}
		total += int64(a.Size())
	}

	if total > maxTotalBytes {
		return fmt.Errorf("attachments exceed maximum total size of %d bytes", maxTotalBytes)
	}

	return nil
}
