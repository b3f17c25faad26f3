package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	sharederrors "github.com/sovoz-hq/sovoz/internal/shared/errors"
)

func ticketWithAttachments(t *testing.T, userID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	a1, err := ticket.ReconstructAttachment(1, 1, "screenshot.png", "image/png", []byte{0x89, 0x50})
	require.NoError(t, err)
	a2, err := ticket.ReconstructAttachment(2, 1, "clip.mp4", "video/mp4", []byte{0x00, 0x00, 0x00, 0x18})
	require.NoError(t, err)

	tk, err := ticket.ReconstructTicket(
		1, 1,
		"Test ticket", "Test description", "Bug", "IT",
		vo.StatusNew,
		"John", "john@example.com",
		userID,
		now, now,
		nil,
		[]*ticket.Attachment{a1, a2},
	)
	require.NoError(t, err)
	return tk
}

func TestGetAttachmentUseCase_Execute_Success(t *testing.T) {
	owner := uint(2)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketWithAttachments(t, &owner), nil
		},
	}

	useCase := NewGetAttachmentUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetAttachmentQuery{
		TicketID: 1,
		Index:    1,
		UserID:   2,
		Role:     authorization.RoleUser,
	})

	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", result.Filename)
	assert.Equal(t, "video/mp4", result.ContentType)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x18}, result.Data)
}

func TestGetAttachmentUseCase_Execute_IndexOutOfRange(t *testing.T) {
	owner := uint(2)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketWithAttachments(t, &owner), nil
		},
	}

	useCase := NewGetAttachmentUseCase(mockRepo, &mockLogger{})

	for _, index := range []int{2, -1, 100} {
		_, err := useCase.Execute(context.Background(), GetAttachmentQuery{
			TicketID: 1,
			Index:    index,
			UserID:   2,
			Role:     authorization.RoleUser,
		})
		require.Error(t, err, "index %d must be rejected", index)
		assert.True(t, sharederrors.IsNotFoundError(err))
	}
}

func TestGetAttachmentUseCase_Execute_Forbidden(t *testing.T) {
	owner := uint(2)
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return ticketWithAttachments(t, &owner), nil
		},
	}

	useCase := NewGetAttachmentUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), GetAttachmentQuery{
		TicketID: 1,
		Index:    0,
		UserID:   3,
		Role:     authorization.RoleUser,
	})

	assert.True(t, sharederrors.IsForbiddenError(err))
}

func TestGetAttachmentUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, nil
		},
	}

	useCase := NewGetAttachmentUseCase(mockRepo, &mockLogger{})
	_, err := useCase.Execute(context.Background(), GetAttachmentQuery{
		TicketID: 42,
		UserID:   1,
		Role:     authorization.RoleAdmin,
	})

	assert.True(t, sharederrors.IsNotFoundError(err))
}
