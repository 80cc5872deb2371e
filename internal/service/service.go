package service

import (
	"context"

	"pump_console/internal/console"
	"pump_console/internal/logger"
	"pump_console/internal/metrics"
	"pump_console/internal/models"
	"pump_console/internal/repository"
)

// Control exposes the operator toggles.
type Control interface {
	TogglePump(ctx context.Context) (models.ControlState, error)
	ToggleAutoMode(ctx context.Context) (models.ControlState, error)
	ToggleManualSchedule(ctx context.Context) (models.ControlState, error)
	ToggleSchedule(ctx context.Context) (models.ControlState, error)
}

// Schedules exposes the schedule list and its add dialog.
type Schedules interface {
	List(ctx context.Context) ([]models.ScheduleEntry, error)
	Remove(ctx context.Context, id string) (bool, error)
	OpenDraft(ctx context.Context) (models.DraftView, error)
	UpdateDraft(ctx context.Context, p DraftParams) (models.DraftView, error)
	ConfirmDraft(ctx context.Context) (models.ScheduleEntry, error)
	CancelDraft(ctx context.Context) error
}

// Tanks exposes the upper-tank carousel.
type Tanks interface {
	Carousel(ctx context.Context) (models.CarouselView, error)
	Settle(ctx context.Context, offset, pageWidth float64) (models.CarouselView, error)
}

// Monitoring exposes the read-only session snapshot.
type Monitoring interface {
	GetState(ctx context.Context) (models.ConsoleState, error)
}

// EventLog exposes the operator journal with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.ConsoleEvent, error)
}

// Simulator feeds tank readings into the console until ctx is canceled.
type Simulator interface {
	Sync(ctx context.Context) error
	Run(ctx context.Context) error
}

// Service aggregates all sub-services.
type Service struct {
	Control
	Schedules
	Tanks
	Monitoring
	EventLog
	Simulator
}

// NewService wires the session loop and repositories into concrete services.
func NewService(loop *console.Loop, repos *repository.Repository, rec *metrics.Recorder, log *logger.Logger, feed FeedParams) *Service {
	return &Service{
		Control:    NewControlService(loop, repos.EventRepo, rec),
		Schedules:  NewScheduleService(loop, repos.EventRepo, rec),
		Tanks:      NewTankService(loop),
		Monitoring: NewMonitoringService(loop),
		EventLog:   NewEventLogService(repos.EventRepo),
		Simulator:  NewSimulatorService(loop, repos.TankRepo, repos.EventRepo, rec, log, feed),
	}
}
