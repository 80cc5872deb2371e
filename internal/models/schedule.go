package models

import (
	"fmt"
	"strings"
	"time"
)

// Canonical layouts of a committed schedule entry.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// RunDuration is one of the fixed pump-run lengths an operator can pick.
type RunDuration string

const (
	Run15Minutes RunDuration = "15 minutes"
	Run30Minutes RunDuration = "30 minutes"
	Run1Hour     RunDuration = "1 hour"
	Run2Hours    RunDuration = "2 hours"
	Run4Hours    RunDuration = "4 hours"
)

// DefaultRunDuration is preselected in a fresh draft.
const DefaultRunDuration = Run30Minutes

var runDurations = map[RunDuration]time.Duration{
	Run15Minutes: 15 * time.Minute,
	Run30Minutes: 30 * time.Minute,
	Run1Hour:     time.Hour,
	Run2Hours:    2 * time.Hour,
	Run4Hours:    4 * time.Hour,
}

// RunDurations returns the selectable durations, shortest first.
func RunDurations() []RunDuration {
	return []RunDuration{Run15Minutes, Run30Minutes, Run1Hour, Run2Hours, Run4Hours}
}

// Valid reports whether d belongs to the fixed set.
func (d RunDuration) Valid() bool {
	_, ok := runDurations[d]
	return ok
}

// Duration returns the run length; zero for values outside the set.
func (d RunDuration) Duration() time.Duration {
	return runDurations[d]
}

// ParseRunDuration accepts a label ("1 hour") or a Go duration ("1h").
func ParseRunDuration(s string) (RunDuration, error) {
	s = strings.TrimSpace(s)
	if d := RunDuration(strings.ToLower(s)); d.Valid() {
		return d, nil
	}
	if parsed, err := time.ParseDuration(s); err == nil {
		for label, length := range runDurations {
			if length == parsed {
				return label, nil
			}
		}
	}
	return "", fmt.Errorf("unsupported run duration %q", s)
}

// ScheduleEntry is a committed, timed pump-run request.
type ScheduleEntry struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"` // YYYY-MM-DD
	Time     string      `json:"time"` // HH:MM, 24-hour
	Duration RunDuration `json:"duration"`
}

// StartsAt resolves the entry's wall-clock start in loc.
func (e ScheduleEntry) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+e.Time, loc)
}
