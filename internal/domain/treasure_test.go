package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventConfig_ClosesAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		cfg    EventConfig
		want   time.Time
		wantOK bool
	}{
		{"end date wins", EventConfig{StartDate: &start, EndDate: &end, DurationDays: 30}, end, true},
		{"start plus duration", EventConfig{StartDate: &start, DurationDays: 7}, start.AddDate(0, 0, 7), true},
		{"start without duration", EventConfig{StartDate: &start}, time.Time{}, false},
		{"no dates", EventConfig{DurationDays: 7}, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.cfg.ClosesAt()
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}
