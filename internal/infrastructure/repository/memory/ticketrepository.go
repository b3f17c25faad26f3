package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
)

// TicketRepository is a mutex-guarded in-memory implementation of both
// ticket.Repository and ticket.StatsRepository for tests and development
// mode.
type TicketRepository struct {
	mu            sync.RWMutex
	tickets       map[uint]*ticket.Ticket
	nextID        uint
	nextSeq       uint64
	nextCommentID uint
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		tickets:       make(map[uint]*ticket.Ticket),
		nextID:        1,
		nextSeq:       1,
		nextCommentID: 1,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := t.SetSeq(r.nextSeq); err != nil {
		return err
	}
	if err := t.SetID(r.nextID); err != nil {
		return err
	}
	r.tickets[r.nextID] = t
	r.nextID++
	r.nextSeq++

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tickets[ticketID], nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*ticket.Ticket, 0, len(r.tickets))
	for _, t := range r.tickets {
		if filter.UserID != nil && (t.UserID() == nil || *t.UserID() != *filter.UserID) {
			continue
		}
		if filter.Status != nil && t.Status() != *filter.Status {
			continue
		}
		if filter.Type != nil && t.Type() != *filter.Type {
			continue
		}
		matched = append(matched, t)
	}

	// Newest first, matching the database ordering.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt().Equal(matched[j].CreatedAt()) {
			return matched[i].ID() > matched[j].ID()
		}
		return matched[i].CreatedAt().After(matched[j].CreatedAt())
	})

	total := int64(len(matched))

	start := (filter.Page - 1) * filter.PageSize
	if start >= len(matched) {
		return []*ticket.Ticket{}, total, nil
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tickets[t.ID()]; !ok {
		return fmt.Errorf("ticket not found: id=%d", t.ID())
	}
	r.tickets[t.ID()] = t

	return nil
}

func (r *TicketRepository) AddComment(ctx context.Context, ticketID uint, comment *ticket.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[ticketID]
	if !ok {
		return fmt.Errorf("ticket not found: id=%d", ticketID)
	}

	// GetByID hands out the stored aggregate, so the caller may already
	// have appended this exact comment through it.
	held := false
	for _, c := range t.Comments() {
		if c == comment {
			held = true
			break
		}
	}
	if !held {
		if err := t.AddComment(comment); err != nil {
			return err
		}
	}

	if comment.ID() == 0 {
		if err := comment.SetID(r.nextCommentID); err != nil {
			return err
		}
		r.nextCommentID++
	}

	return nil
}

func (r *TicketRepository) CountTickets(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.tickets)), nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) ([]ticket.StatusCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byStatus := make(map[string]int64)
	for _, t := range r.tickets {
		byStatus[t.Status().String()]++
	}

	counts := make([]ticket.StatusCount, 0, len(byStatus))
	for _, status := range vo.AllStatuses() {
		if n, ok := byStatus[status.String()]; ok {
			counts = append(counts, ticket.StatusCount{Status: status.String(), Count: n})
		}
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	return counts, nil
}

func (r *TicketRepository) CountByType(ctx context.Context) ([]ticket.TypeCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byType := make(map[string]int64)
	for _, t := range r.tickets {
		byType[t.Type()]++
	}

	counts := make([]ticket.TypeCount, 0, len(byType))
	for ticketType, n := range byType {
		counts = append(counts, ticket.TypeCount{Type: ticketType, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Type < counts[j].Type
		}
		return counts[i].Count > counts[j].Count
	})
	return counts, nil
}

func (r *TicketRepository) TopDepartments(ctx context.Context, limit int) ([]ticket.DepartmentCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byDepartment := make(map[string]int64)
	for _, t := range r.tickets {
		byDepartment[t.Department()]++
	}

	counts := make([]ticket.DepartmentCount, 0, len(byDepartment))
	for department, n := range byDepartment {
		counts = append(counts, ticket.DepartmentCount{Department: department, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count == counts[j].Count {
			return counts[i].Department < counts[j].Department
		}
		return counts[i].Count > counts[j].Count
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}
