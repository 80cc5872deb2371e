package models

import "time"

// Journal event types.
const (
	EventPumpToggle           = "PUMP_TOGGLE"
	EventModeChange           = "MODE_CHANGE"
	EventManualScheduleToggle = "MANUAL_SCHEDULE_TOGGLE"
	EventScheduleToggle       = "SCHEDULE_TOGGLE"
	EventScheduleAdd          = "SCHEDULE_ADD"
	EventScheduleRemove       = "SCHEDULE_REMOVE"
	EventDraftCancel          = "DRAFT_CANCEL"
	EventLowLevel             = "LOW_LEVEL"
)

// EventTypes lists every journal event type.
func EventTypes() []string {
	return []string{
		EventPumpToggle, EventModeChange, EventManualScheduleToggle, EventScheduleToggle,
		EventScheduleAdd, EventScheduleRemove, EventDraftCancel, EventLowLevel,
	}
}

// IsEventType reports whether s names a journal event type.
func IsEventType(s string) bool {
	for _, t := range EventTypes() {
		if t == s {
			return true
		}
	}
	return false
}

// ConsoleEvent is a single journal entry.
type ConsoleEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // PUMP_TOGGLE | MODE_CHANGE | SCHEDULE_ADD | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
