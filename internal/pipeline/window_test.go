package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "midday instant resolves to its own day",
			input:     time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC),
			wantStart: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "midnight is the start of its day",
			input:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "non-UTC instant is resolved in UTC",
			input:     time.Date(2024, 3, 15, 23, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			wantStart: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 16, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "month boundary",
			input:     time.Date(2024, 2, 29, 6, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := DayWindow(tt.input)
			assert.True(t, w.Start.Equal(tt.wantStart), "start: got %v want %v", w.Start, tt.wantStart)
			assert.True(t, w.End.Equal(tt.wantEnd), "end: got %v want %v", w.End, tt.wantEnd)
		})
	}
}

func TestDayWindow_Contains(t *testing.T) {
	w := DayWindow(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))

	// Every instant with calendar day 2024-03-15 falls inside.
	assert.True(t, w.Contains(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 3, 15, 23, 59, 59, 999000000, time.UTC)))

	// No instant of the adjacent days does.
	assert.False(t, w.Contains(time.Date(2024, 3, 14, 23, 59, 59, 999000000, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestDayWindowOrNow(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 45, 0, 0, time.UTC)

	t.Run("zero date falls back to today", func(t *testing.T) {
		w := DayWindowOrNow(time.Time{}, now)
		assert.True(t, w.Start.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("explicit date wins over now", func(t *testing.T) {
		w := DayWindowOrNow(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), now)
		assert.True(t, w.Start.Equal(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
	})
}
