package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
)

func newTicket(t *testing.T, title, department string, userID *uint) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.NewTicket(title, "Test description", "incident", department, "John Doe", "john@example.com", userID)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_CreateAssignsIDsAndSeqs(t *testing.T) {
	repo := NewTicketRepository()
	ctx := context.Background()

	first := newTicket(t, "First", "IT", nil)
	second := newTicket(t, "Second", "IT", nil)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	assert.Equal(t, uint(1), first.ID())
	assert.Equal(t, uint64(1), first.Seq())
	assert.Equal(t, uint(2), second.ID())
	assert.Equal(t, uint64(2), second.Seq())

	found, err := repo.GetByID(ctx, first.ID())
	require.NoError(t, err)
	assert.Equal(t, "First", found.Title())

	missing, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_ListFiltersAndPaginates(t *testing.T) {
	repo := NewTicketRepository()
	ctx := context.Background()

	userID := uint(7)
	require.NoError(t, repo.Create(ctx, newTicket(t, "Mine", "IT", &userID)))
	require.NoError(t, repo.Create(ctx, newTicket(t, "Anonymous", "IT", nil)))
	require.NoError(t, repo.Create(ctx, newTicket(t, "Also mine", "HR", &userID)))

	mine, total, err := repo.List(ctx, ticket.Filter{UserID: &userID, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)

	firstPage, total, err := repo.List(ctx, ticket.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, firstPage, 2)

	secondPage, _, err := repo.List(ctx, ticket.Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, secondPage, 1)
}

func TestTicketRepository_UpdateStatusAndAddComment(t *testing.T) {
	repo := NewTicketRepository()
	ctx := context.Background()

	tk := newTicket(t, "Broken printer", "IT", nil)
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
	require.NoError(t, repo.UpdateStatus(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, found.Status())

	comment, err := ticket.NewComment("Jane", "Fixed it")
	require.NoError(t, err)
	require.NoError(t, repo.AddComment(ctx, tk.ID(), comment))
	assert.NotZero(t, comment.ID())

	stored, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, stored.Comments(), 1)
	assert.Equal(t, "Fixed it", stored.Comments()[0].Text())

	// A comment already appended through the shared aggregate must not
	// be duplicated, only given an id.
	second, err := ticket.NewComment("Jane", "Closing")
	require.NoError(t, err)
	require.NoError(t, stored.AddComment(second))
	require.NoError(t, repo.AddComment(ctx, tk.ID(), second))
	assert.NotZero(t, second.ID())
	assert.NotEqual(t, comment.ID(), second.ID())

	stored, err = repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Len(t, stored.Comments(), 2)

	assert.Error(t, repo.AddComment(ctx, 99, comment))

	ghost := newTicket(t, "Ghost", "IT", nil)
	require.NoError(t, ghost.SetID(42))
	assert.Error(t, repo.UpdateStatus(ctx, ghost))
}

func TestTicketRepository_Statistics(t *testing.T) {
	repo := NewTicketRepository()
	ctx := context.Background()

	for _, dept := range []string{"IT", "IT", "HR", "Finance"} {
		require.NoError(t, repo.Create(ctx, newTicket(t, "Ticket for "+dept, dept, nil)))
	}

	resolved, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, resolved.ChangeStatus(vo.StatusResolved))
	require.NoError(t, repo.UpdateStatus(ctx, resolved))

	total, err := repo.CountTickets(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	statusCounts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ticket.StatusCount{
		{Status: "New", Count: 3},
		{Status: "Resolved", Count: 1},
	}, statusCounts)

	typeCounts, err := repo.CountByType(ctx)
	require.NoError(t, err)
	require.Len(t, typeCounts, 1)
	assert.Equal(t, int64(4), typeCounts[0].Count)

	topDepts, err := repo.TopDepartments(ctx, 2)
	require.NoError(t, err)
	require.Len(t, topDepts, 2)
	assert.Equal(t, ticket.DepartmentCount{Department: "IT", Count: 2}, topDepts[0])
}
