package service

import (
	"context"

	"pump_console/internal/console"
	"pump_console/internal/metrics"
	"pump_console/internal/models"
	"pump_console/internal/repository"
)

type ControlService struct {
	loop      *console.Loop
	eventRepo repository.EventRepo
	metrics   *metrics.Recorder
}

func NewControlService(loop *console.Loop, eventRepo repository.EventRepo, rec *metrics.Recorder) *ControlService {
	return &ControlService{loop: loop, eventRepo: eventRepo, metrics: rec}
}

func (s *ControlService) TogglePump(ctx context.Context) (models.ControlState, error) {
	return s.apply(ctx, console.IntentTogglePump)
}

// ToggleAutoMode switches between automatic and manual control.
// Entering manual mode also enables the manual schedule.
func (s *ControlService) ToggleAutoMode(ctx context.Context) (models.ControlState, error) {
	return s.apply(ctx, console.IntentToggleAutoMode)
}

func (s *ControlService) ToggleManualSchedule(ctx context.Context) (models.ControlState, error) {
	return s.apply(ctx, console.IntentToggleManualSchedule)
}

func (s *ControlService) ToggleSchedule(ctx context.Context) (models.ControlState, error) {
	return s.apply(ctx, console.IntentToggleSchedule)
}

// apply runs the transition on the session loop, then journals it.
func (s *ControlService) apply(ctx context.Context, in console.Intent) (models.ControlState, error) {
	var before, after models.ControlState
	if err := s.loop.Do(ctx, func(c *console.Console) {
		before = c.Control.State()
		after = c.Control.Apply(in)
	}); err != nil {
		return models.ControlState{}, err
	}
	s.metrics.Transition(in.String())

	// the transition is applied; journal it even if the caller went away
	if err := s.eventRepo.Append(context.WithoutCancel(ctx), controlEvent(in, before, after)); err != nil {
		return after, err
	}
	return after, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// controlEvent describes a toggle for the journal.
func controlEvent(in console.Intent, before, after models.ControlState) models.ConsoleEvent {
	ev := models.ConsoleEvent{Metadata: map[string]any{"before": before, "after": after}}
	switch in {
	case console.IntentTogglePump:
		ev.Type = models.EventPumpToggle
		ev.Description = "Pump switched " + onOff(after.PumpOn)
	case console.IntentToggleAutoMode:
		ev.Type = models.EventModeChange
		if after.AutoMode {
			ev.Description = "Mode changed to AUTO"
		} else {
			ev.Description = "Mode changed to MANUAL"
			if !before.ManualScheduleEnabled {
				ev.Description += "; manual schedule enabled"
			}
		}
	case console.IntentToggleManualSchedule:
		ev.Type = models.EventManualScheduleToggle
		ev.Description = "Manual schedule switched " + onOff(after.ManualScheduleEnabled)
	case console.IntentToggleSchedule:
		ev.Type = models.EventScheduleToggle
		ev.Description = "Schedule switched " + onOff(after.ScheduleEnabled)
	}
	return ev
}
