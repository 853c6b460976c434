package schedule

import (
	"fmt"
	"time"
)

const (
	// DateLayout is how lesson dates are stored; lexicographic order on
	// this layout matches chronological order.
	DateLayout = "2006-01-02"
	// TimeLayout is how lesson start and end times are stored.
	TimeLayout = "15:04"
)

// Window holds the rolling three-day view boundaries around an instant.
type Window struct {
	Yesterday   string
	Today       string
	Tomorrow    string
	CurrentTime string
}

// ComputeWindow derives the yesterday/today/tomorrow dates and the wall
// clock time-of-day for now. Pure; now is always passed in explicitly.
func ComputeWindow(now time.Time) Window {
	return Window{
		Yesterday:   now.AddDate(0, 0, -1).Format(DateLayout),
		Today:       now.Format(DateLayout),
		Tomorrow:    now.AddDate(0, 0, 1).Format(DateLayout),
		CurrentTime: now.Format(TimeLayout),
	}
}

// Duration returns the minutes between two same-day HH:MM values. The
// result is negative or zero for an inverted or empty range.
func Duration(start, end string) (int, error) {
	s, err := time.Parse(TimeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("bad start time %q: %w", start, err)
	}
	e, err := time.Parse(TimeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("bad end time %q: %w", end, err)
	}
	return int(e.Sub(s).Minutes()), nil
}
