package pipeline

import "time"

// Window is an inclusive UTC instant pair covering exactly one
// calendar day: [00:00:00.000, 23:59:59.999]. The same window is used
// both to filter a day's existing tasks and to stamp the creation
// instant of new ones, so a task created "for" a day always falls
// inside the window later used to query it.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayWindow resolves the calendar day of t, in UTC, to its day window.
func DayWindow(t time.Time) Window {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.Add(24*time.Hour - time.Millisecond),
	}
}

// DayWindowOrNow resolves t's day window, or now's when t is the zero
// value. Callers with an optional date parameter must go through this
// so relative-day math (carry-over) stays anchored to the real today.
func DayWindowOrNow(t, now time.Time) Window {
	if t.IsZero() {
		return DayWindow(now)
	}
	return DayWindow(t)
}
