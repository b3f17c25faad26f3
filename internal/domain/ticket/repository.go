package ticket

import (
	"context"

	vo "github.com/sovoz-hq/sovoz/internal/domain/ticket/valueobjects"
)

// Repository persists tickets together with their owned comments and
// attachments. Create assigns both the storage id and the sequential
// number atomically.
type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	UpdateStatus(ctx context.Context, ticket *Ticket) error
	AddComment(ctx context.Context, ticketID uint, comment *Comment) error
}

// Filter represents filtering and pagination options for ticket lists.
type Filter struct {
	UserID   *uint
	Status   *vo.TicketStatus
	Type     *string
	Page     int
	PageSize int
}

// TypeCount is the number of tickets per type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// StatusCount is the number of tickets per status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DepartmentCount is the number of tickets per department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

// StatsRepository serves the read-side aggregation queries behind the
// statistics endpoint.
type StatsRepository interface {
	CountTickets(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByType(ctx context.Context) ([]TypeCount, error)
	TopDepartments(ctx context.Context, limit int) ([]DepartmentCount, error)
}
