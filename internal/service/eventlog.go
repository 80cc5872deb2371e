package service

import (
	"context"

	"pump_console/internal/models"
	"pump_console/internal/repository"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// List returns journal events matching f, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.ConsoleEvent, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, f.From, f.To, f.Type)
}
