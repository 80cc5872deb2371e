package service

import (
	"context"
	"errors"

	"pump_console/internal/console"
	"pump_console/internal/metrics"
	"pump_console/internal/models"
	"pump_console/internal/repository"
)

var (
	// ErrNoDraft is returned when a draft operation needs an open dialog.
	ErrNoDraft = errors.New("no schedule draft is open")
	// ErrInvalidDuration is returned for run lengths outside the fixed set.
	ErrInvalidDuration = errors.New("invalid run duration")
)

type ScheduleService struct {
	loop      *console.Loop
	eventRepo repository.EventRepo
	metrics   *metrics.Recorder
}

func NewScheduleService(loop *console.Loop, eventRepo repository.EventRepo, rec *metrics.Recorder) *ScheduleService {
	return &ScheduleService{loop: loop, eventRepo: eventRepo, metrics: rec}
}

// List returns committed entries in display order; never nil on success.
func (s *ScheduleService) List(ctx context.Context) ([]models.ScheduleEntry, error) {
	var out []models.ScheduleEntry
	err := s.loop.Do(ctx, func(c *console.Console) { out = c.Store.List() })
	return out, err
}

// Remove deletes an entry by id. Unknown ids report false without error.
func (s *ScheduleService) Remove(ctx context.Context, id string) (bool, error) {
	var (
		removed bool
		left    int
	)
	if err := s.loop.Do(ctx, func(c *console.Console) {
		removed = c.Store.Remove(id)
		left = c.Store.Len()
	}); err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}
	s.metrics.Transition("schedule_remove")
	s.metrics.ScheduleEntries(left)
	return true, s.eventRepo.Append(context.WithoutCancel(ctx), models.ConsoleEvent{
		Type:        models.EventScheduleRemove,
		Description: "Schedule entry removed",
		Metadata:    map[string]any{"id": id},
	})
}

// OpenDraft opens the add dialog with default values, replacing any open draft.
func (s *ScheduleService) OpenDraft(ctx context.Context) (models.DraftView, error) {
	var v models.DraftView
	err := s.loop.Do(ctx, func(c *console.Console) {
		c.Drafts.Open()
		v = c.Drafts.View()
	})
	return v, err
}

// UpdateDraft applies the non-nil fields of p to the open draft.
func (s *ScheduleService) UpdateDraft(ctx context.Context, p DraftParams) (models.DraftView, error) {
	if p.Duration != nil && !p.Duration.Valid() {
		return models.DraftView{}, ErrInvalidDuration
	}
	var (
		v    models.DraftView
		open bool
	)
	if err := s.loop.Do(ctx, func(c *console.Console) {
		if open = c.Drafts.Editing(); !open {
			return
		}
		if p.Date != nil {
			c.Drafts.SetDate(*p.Date)
		}
		if p.Time != nil {
			c.Drafts.SetTime(*p.Time)
		}
		if p.Duration != nil {
			c.Drafts.SetDuration(*p.Duration)
		}
		v = c.Drafts.View()
	}); err != nil {
		return models.DraftView{}, err
	}
	if !open {
		return models.DraftView{}, ErrNoDraft
	}
	return v, nil
}

// ConfirmDraft commits the open draft and closes the dialog.
func (s *ScheduleService) ConfirmDraft(ctx context.Context) (models.ScheduleEntry, error) {
	var (
		e     models.ScheduleEntry
		ok    bool
		total int
	)
	if err := s.loop.Do(ctx, func(c *console.Console) {
		e, ok = c.Drafts.Confirm()
		total = c.Store.Len()
	}); err != nil {
		return models.ScheduleEntry{}, err
	}
	if !ok {
		return models.ScheduleEntry{}, ErrNoDraft
	}
	s.metrics.Transition("schedule_add")
	s.metrics.ScheduleEntries(total)
	return e, s.eventRepo.Append(context.WithoutCancel(ctx), models.ConsoleEvent{
		Type:        models.EventScheduleAdd,
		Description: "Schedule entry added for " + e.Date + " " + e.Time,
		Metadata: map[string]any{
			"id":       e.ID,
			"date":     e.Date,
			"time":     e.Time,
			"duration": string(e.Duration),
		},
	})
}

// CancelDraft discards the open draft, if any.
func (s *ScheduleService) CancelDraft(ctx context.Context) error {
	var wasOpen bool
	if err := s.loop.Do(ctx, func(c *console.Console) {
		wasOpen = c.Drafts.Editing()
		c.Drafts.Cancel()
	}); err != nil {
		return err
	}
	if !wasOpen {
		return nil
	}
	s.metrics.Transition("draft_cancel")
	return s.eventRepo.Append(context.WithoutCancel(ctx), models.ConsoleEvent{
		Type:        models.EventDraftCancel,
		Description: "Schedule draft discarded",
	})
}
