package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{"New", StatusNew, false},
		{"In Progress", StatusInProgress, false},
		{"Resolved", StatusResolved, false},
		{"new", "", true},
		{"Closed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, StatusNew.IsNew())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.False(t, StatusNew.IsResolved())
}

func TestAllStatuses(t *testing.T) {
	all := AllStatuses()
	require.Len(t, all, 3)
	for _, s := range all {
		assert.True(t, s.IsValid())
	}
}
