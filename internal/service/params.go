package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pump_console/internal/models"
)

// DraftParams carries optional draft edits; nil fields are left as they are.
type DraftParams struct {
	Date     *time.Time
	Time     *time.Time
	Duration *models.RunDuration
}

// LogFilter supports journal filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "PUMP_TOGGLE", "MODE_CHANGE", "SCHEDULE_ADD", ...
}

var (
	ErrInvalidTimeRange = errors.New("journal range starts after it ends")
	ErrUnknownEventType = errors.New("unknown journal event type")
)

// Normalize returns f with UTC bounds and a canonical type.
func (f LogFilter) Normalize() (LogFilter, error) {
	out := LogFilter{Type: strings.ToUpper(strings.TrimSpace(f.Type))}
	if !f.From.IsZero() {
		out.From = f.From.UTC()
	}
	if !f.To.IsZero() {
		out.To = f.To.UTC()
	}
	if !out.From.IsZero() && !out.To.IsZero() && out.To.Before(out.From) {
		return LogFilter{}, ErrInvalidTimeRange
	}
	if out.Type != "" && !models.IsEventType(out.Type) {
		return LogFilter{}, fmt.Errorf("%w: %q", ErrUnknownEventType, f.Type)
	}
	return out, nil
}

// FeedParams tune the simulated tank feed.
type FeedParams struct {
	Spec               string  // cron spec for ticks
	FlowLPerMin        float64 // main -> upper while the pump runs
	ConsumptionLPerMin float64 // drawn from each upper tank
}
