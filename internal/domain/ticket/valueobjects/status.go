package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusNew        TicketStatus = "New"
	StatusInProgress TicketStatus = "In Progress"
	StatusResolved   TicketStatus = "Resolved"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsNew() bool {
	return ts == StatusNew
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

// AllStatuses returns the complete status set in workflow order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusNew, StatusInProgress, StatusResolved}
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
