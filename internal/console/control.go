package console

import "pump_console/internal/models"

// Intent is an operator request against the control toggles.
type Intent int

const (
	IntentTogglePump Intent = iota + 1
	IntentToggleAutoMode
	IntentToggleManualSchedule
	IntentToggleSchedule
)

func (i Intent) String() string {
	switch i {
	case IntentTogglePump:
		return "toggle_pump"
	case IntentToggleAutoMode:
		return "toggle_auto_mode"
	case IntentToggleManualSchedule:
		return "toggle_manual_schedule"
	case IntentToggleSchedule:
		return "toggle_schedule"
	default:
		return "unknown"
	}
}

// Transition applies in to s and returns the resulting state.
//
// Every intent flips exactly its own flag, with one cascade: switching
// from automatic to manual forces ManualScheduleEnabled on. Switching back
// to automatic leaves ManualScheduleEnabled as it was.
func Transition(s models.ControlState, in Intent) models.ControlState {
	switch in {
	case IntentTogglePump:
		s.PumpOn = !s.PumpOn
	case IntentToggleAutoMode:
		s.AutoMode = !s.AutoMode
		if !s.AutoMode {
			s.ManualScheduleEnabled = true
		}
	case IntentToggleManualSchedule:
		s.ManualScheduleEnabled = !s.ManualScheduleEnabled
	case IntentToggleSchedule:
		s.ScheduleEnabled = !s.ScheduleEnabled
	}
	return s
}

// DefaultControlState is the state of a freshly opened console.
var DefaultControlState = models.ControlState{
	PumpOn:                true,
	AutoMode:              true,
	ManualScheduleEnabled: false,
	ScheduleEnabled:       true,
}

// Controller owns the control toggles of one session.
type Controller struct {
	state models.ControlState
}

// NewController starts from initial.
func NewController(initial models.ControlState) *Controller {
	return &Controller{state: initial}
}

// Apply runs in through Transition and returns the new state.
func (c *Controller) Apply(in Intent) models.ControlState {
	c.state = Transition(c.state, in)
	return c.state
}

func (c *Controller) TogglePump() models.ControlState { return c.Apply(IntentTogglePump) }

func (c *Controller) ToggleAutoMode() models.ControlState { return c.Apply(IntentToggleAutoMode) }

func (c *Controller) ToggleManualSchedule() models.ControlState {
	return c.Apply(IntentToggleManualSchedule)
}

func (c *Controller) ToggleSchedule() models.ControlState { return c.Apply(IntentToggleSchedule) }

// State returns the current toggles.
func (c *Controller) State() models.ControlState { return c.state }
