package utils

import (
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339 and the common ISO-8601 local forms. The
// result is the wall clock as written, in UTC representation: an offset, if
// present, is dropped rather than applied. This matches how the timestamp
// columns store values.
func ParseTimestamp(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return WallClock(t), true
		}
	}
	return time.Time{}, false
}

// WallClock keeps t's clock reading to the millisecond and drops its
// location. Day and month windows end at .999, so finer precision would fall
// between two windows.
func WallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC).
		Truncate(time.Millisecond)
}

// ParseOptionalTimestamp returns nil for empty or unparseable input.
func ParseOptionalTimestamp(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, ok := ParseTimestamp(*raw)
	if !ok {
		return nil
	}
	return &t
}

// ParseDate parses a YYYY-MM-DD calendar date at 00:00 UTC.
func ParseDate(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// TrimToNil trims s and returns nil when nothing is left.
func TrimToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
