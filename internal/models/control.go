package models

// ControlState holds the operator toggles of one console session.
type ControlState struct {
	PumpOn                bool `json:"pump_on"`
	AutoMode              bool `json:"auto_mode"`
	ManualScheduleEnabled bool `json:"manual_schedule_enabled"`
	ScheduleEnabled       bool `json:"schedule_enabled"`
}
