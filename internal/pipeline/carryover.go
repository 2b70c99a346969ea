package pipeline

import (
	"time"

	"github.com/verita-dev/verita/internal/models"
	"github.com/verita-dev/verita/internal/types"
)

// IsTomorrow reports whether viewed falls on the calendar day exactly
// one after now's, in UTC. Carry-over only applies to that single
// day; there is no multi-day look-back.
func IsTomorrow(viewed, now time.Time) bool {
	tomorrow := DayWindow(now).Start.Add(24 * time.Hour)
	return DayWindow(viewed).Start.Equal(tomorrow)
}

// Unfinished filters tasks to those not yet done.
func Unfinished(tasks []models.Task) []models.Task {
	open := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status != types.StatusDone {
			open = append(open, t)
		}
	}
	return open
}

// MergeCarried unions carried tasks into the viewed day's own list,
// skipping any task already present by id and flagging the rest as
// carry-overs so the consuming layer can render them distinctly.
func MergeCarried(tasks, carried []models.Task) []models.Task {
	present := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		present[t.ID] = true
	}

	merged := make([]models.Task, 0, len(tasks)+len(carried))
	merged = append(merged, tasks...)

	for _, t := range carried {
		if present[t.ID] {
			continue
		}
		t.IsCarriedOver = true
		merged = append(merged, t)
	}

	return merged
}
