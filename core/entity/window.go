package entity

import "time"

// Window is an inclusive time range [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

const lastMillisecond = 24*time.Hour - time.Millisecond

// DayWindow spans 00:00:00.000 to 23:59:59.999 of the calendar date of t,
// kept in t's own location.
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{Start: start, End: start.Add(lastMillisecond)}
}

// MonthWindow spans the first day 00:00:00.000 through the last day
// 23:59:59.999 of the month containing t.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := start.AddDate(0, 1, -1)
	return Window{Start: start, End: last.Add(lastMillisecond)}
}

// Contains is the point-in-range test with inclusive bounds.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ContainsPtr treats a nil timestamp as outside every window.
func (w Window) ContainsPtr(t *time.Time) bool {
	return t != nil && w.Contains(*t)
}

// Overlaps is the interval-overlap test: start < w.End && end > w.Start.
func (w Window) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}
