package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
)

func TestIsTomorrow(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		viewed time.Time
		want   bool
	}{
		{name: "next day", viewed: time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), want: true},
		{name: "next day at any hour", viewed: time.Date(2024, 3, 16, 23, 0, 0, 0, time.UTC), want: true},
		{name: "today", viewed: now, want: false},
		{name: "yesterday", viewed: time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC), want: false},
		{name: "two days ahead", viewed: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTomorrow(tt.viewed, now))
		})
	}
}

func TestIsTomorrow_MonthBoundary(t *testing.T) {
	now := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)
	assert.True(t, IsTomorrow(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestUnfinished(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Status: types.StatusDone},
		{ID: "t2", Status: types.StatusTodo},
		{ID: "t3", Status: types.StatusInProgress},
		{ID: "t4", Status: types.StatusBlocked},
	}

	open := Unfinished(tasks)

	require.Len(t, open, 3)
	for _, task := range open {
		assert.NotEqual(t, types.StatusDone, task.Status)
	}
}

func TestMergeCarried(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Description: "Tomorrow's own task"},
		{ID: "t2", Description: "Present on both days"},
	}
	carried := []models.Task{
		{ID: "t2", Description: "Present on both days"},
		{ID: "t3", Description: "Unfinished from today"},
	}

	merged := MergeCarried(tasks, carried)

	require.Len(t, merged, 3)

	// Own tasks come first, unflagged.
	assert.Equal(t, "t1", merged[0].ID)
	assert.False(t, merged[0].IsCarriedOver)

	// A task already present by id is not duplicated.
	assert.Equal(t, "t2", merged[1].ID)
	assert.False(t, merged[1].IsCarriedOver)

	// Genuinely carried tasks are appended and flagged.
	assert.Equal(t, "t3", merged[2].ID)
	assert.True(t, merged[2].IsCarriedOver)
}

func TestMergeCarried_EmptyCarried(t *testing.T) {
	tasks := []models.Task{{ID: "t1"}}
	assert.Equal(t, tasks, MergeCarried(tasks, nil))
}
