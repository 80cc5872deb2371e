package service

import (
	"context"

	"pump_console/internal/console"
	"pump_console/internal/models"
)

type MonitoringService struct {
	loop *console.Loop
}

func NewMonitoringService(loop *console.Loop) *MonitoringService {
	return &MonitoringService{loop: loop}
}

// GetState returns the current session snapshot.
func (s *MonitoringService) GetState(ctx context.Context) (models.ConsoleState, error) {
	return s.loop.Snapshot(ctx)
}
