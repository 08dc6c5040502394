// Package timefmt converts between the wire representation of dates
// and times of day (YYYY-MM-DD and HH:MM strings) and the values kept
// in storage, and computes elapsed hours between wall-clock strings.
package timefmt

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	timeLayout        = "15:04"
	timeSecondsLayout = "15:04:05"
)

// ParseDate parses a YYYY-MM-DD string into a date at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseTime parses an HH:MM or HH:MM:SS wall-clock string into a
// value anchored to 1970-01-01 UTC. The empty string means the field
// is unset and yields nil.
func ParseTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	layout := timeLayout
	if strings.Count(s, ":") == 2 {
		layout = timeSecondsLayout
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return nil, err
	}

	anchored := time.Date(1970, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return &anchored, nil
}

// FormatDate renders a stored date as YYYY-MM-DD in UTC. The zero
// value renders as "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

// FormatTime renders a stored wall-clock value as zero-padded HH:MM
// in UTC. Seconds never appear on the wire. nil renders as "".
func FormatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// Hours returns the elapsed hours between two wall-clock strings.
// A missing or malformed endpoint counts as zero, and a span that
// ends at or before its start is clamped to zero. Seconds, when
// present, are ignored.
func Hours(in, out string) float64 {
	inMinutes, ok := wallClockMinutes(in)
	if !ok {
		return 0
	}
	outMinutes, ok := wallClockMinutes(out)
	if !ok {
		return 0
	}
	if outMinutes <= inMinutes {
		return 0
	}
	return float64(outMinutes-inMinutes) / 60
}

func wallClockMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			return 0, false
		}
	}
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute, true
}
