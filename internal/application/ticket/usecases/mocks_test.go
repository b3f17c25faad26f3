package usecases

import (
	"context"

	"github.com/sovoz-hq/sovoz/internal/application/ticket/dto"
	"github.com/sovoz-hq/sovoz/internal/domain/ticket"
	"github.com/sovoz-hq/sovoz/internal/shared/logger"
)

type mockTicketRepository struct {
	CreateFunc       func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc      func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc         func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	UpdateStatusFunc func(ctx context.Context, t *ticket.Ticket) error
	AddCommentFunc   func(ctx context.Context, ticketID uint, comment *ticket.Comment) error
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) AddComment(ctx context.Context, ticketID uint, comment *ticket.Comment) error {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, ticketID, comment)
	}
	return nil
}

type mockStatsRepository struct {
	CountTicketsFunc   func(ctx context.Context) (int64, error)
	CountByStatusFunc  func(ctx context.Context) ([]ticket.StatusCount, error)
	CountByTypeFunc    func(ctx context.Context) ([]ticket.TypeCount, error)
	TopDepartmentsFunc func(ctx context.Context, limit int) ([]ticket.DepartmentCount, error)
}

func (m *mockStatsRepository) CountTickets(ctx context.Context) (int64, error) {
	if m.CountTicketsFunc != nil {
		return m.CountTicketsFunc(ctx)
	}
	return 0, nil
}

func (m *mockStatsRepository) CountByStatus(ctx context.Context) ([]ticket.StatusCount, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsRepository) CountByType(ctx context.Context) ([]ticket.TypeCount, error) {
	if m.CountByTypeFunc != nil {
		return m.CountByTypeFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsRepository) TopDepartments(ctx context.Context, limit int) ([]ticket.DepartmentCount, error) {
	if m.TopDepartmentsFunc != nil {
		return m.TopDepartmentsFunc(ctx, limit)
	}
	return nil, nil
}

type mockStatsCache struct {
	GetFunc        func(ctx context.Context) (*dto.StatisticsDTO, error)
	SetFunc        func(ctx context.Context, stats *dto.StatisticsDTO) error
	InvalidateFunc func(ctx context.Context) error
}

func (m *mockStatsCache) Get(ctx context.Context) (*dto.StatisticsDTO, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *mockStatsCache) Set(ctx context.Context, stats *dto.StatisticsDTO) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, stats)
	}
	return nil
}

func (m *mockStatsCache) Invalidate(ctx context.Context) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx)
	}
	return nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}
func (m *mockLogger) Fatal(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
