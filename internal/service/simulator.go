package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"pump_console/internal/console"
	"pump_console/internal/logger"
	"pump_console/internal/metrics"
	"pump_console/internal/models"
	"pump_console/internal/repository"
)

// Feed defaults.
const (
	DefaultFeedSpec           = "@every 5s"
	DefaultFlowLPerMin        = 45.0
	DefaultConsumptionLPerMin = 5.0
)

// SimulatorService advances tank readings over time and pushes them into
// the console session.
type SimulatorService struct {
	loop      *console.Loop
	tankRepo  repository.TankRepo
	eventRepo repository.EventRepo
	metrics   *metrics.Recorder
	log       *logger.Logger
	feed      FeedParams
	now       func() time.Time
}

// NewSimulatorService returns a simulator; zero feed fields take defaults.
func NewSimulatorService(
	loop *console.Loop,
	tankRepo repository.TankRepo,
	eventRepo repository.EventRepo,
	rec *metrics.Recorder,
	log *logger.Logger,
	feed FeedParams,
) *SimulatorService {
	if feed.Spec == "" {
		feed.Spec = DefaultFeedSpec
	}
	if feed.FlowLPerMin == 0 {
		feed.FlowLPerMin = DefaultFlowLPerMin
	}
	if feed.ConsumptionLPerMin == 0 {
		feed.ConsumptionLPerMin = DefaultConsumptionLPerMin
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatorService{
		loop:      loop,
		tankRepo:  tankRepo,
		eventRepo: eventRepo,
		metrics:   rec,
		log:       log.Named("simulator"),
		feed:      feed,
		now:       time.Now,
	}
}

// Run schedules ticks on the feed's cron spec until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(s.feed.Spec, func() {
		if err := s.Tick(ctx); err != nil && ctx.Err() == nil {
			s.log.Errorw("tank feed tick failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule tank feed %q: %w", s.feed.Spec, err)
	}
	c.Start()
	s.log.Infow("tank feed started", "spec", s.feed.Spec)

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Infow("tank feed stopped")
	return nil
}

// Sync pushes the stored readings into the console without advancing them.
func (s *SimulatorService) Sync(ctx context.Context) error {
	tanks, err := s.tankRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list tanks: %w", err)
	}
	return s.publish(ctx, tanks, nil)
}

// Tick advances every tank by the time elapsed since the last reading.
func (s *SimulatorService) Tick(ctx context.Context) error {
	tanks, err := s.tankRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list tanks: %w", err)
	}
	if len(tanks) == 0 {
		return nil
	}

	var pumpOn bool
	if err := s.loop.Do(ctx, func(c *console.Console) {
		pumpOn = c.Control.State().PumpOn
	}); err != nil {
		return err
	}

	now := s.now().UTC()
	elapsed := now.Sub(lastUpdate(tanks))
	if elapsed <= 0 {
		return nil
	}

	next, pumped := advance(tanks, elapsed, pumpOn, s.feed)
	for i := range next {
		next[i].UpdatedAt = now
		if err := s.tankRepo.Update(ctx, next[i]); err != nil {
			return fmt.Errorf("update tank %s: %w", next[i].ID, err)
		}
		if tanks[i].Status() != models.TankStatusLow && next[i].Status() == models.TankStatusLow {
			if err := s.eventRepo.Append(ctx, models.ConsoleEvent{
				OccurredAt:  now,
				Type:        models.EventLowLevel,
				Description: fmt.Sprintf("%s (%s) is low: %d%%", next[i].Name, next[i].ID, next[i].Percentage()),
				Metadata: map[string]any{
					"tank":       next[i].ID,
					"percentage": next[i].Percentage(),
				},
			}); err != nil {
				s.log.Warnw("journal low level", "tank", next[i].ID, "error", err)
			}
		}
	}
	var ran time.Duration
	if pumpOn {
		ran = elapsed
	}
	s.metrics.Pumped(pumped)
	return s.publish(ctx, next, func(c *console.Console) {
		c.RecordPumping(now, pumped, ran)
	})
}

// publish hands the readings, plus any extra update, to the console and
// the level gauges in one loop turn.
func (s *SimulatorService) publish(ctx context.Context, tanks []models.TankReading, extra func(*console.Console)) error {
	upper, main := SplitTanks(tanks)
	if err := s.loop.Do(ctx, func(c *console.Console) {
		c.Carousel.SetItems(upper)
		c.SetMainTank(main)
		if extra != nil {
			extra(c)
		}
	}); err != nil {
		return err
	}
	for _, t := range tanks {
		s.metrics.TankLevel(t.ID, t.Percentage())
	}
	return nil
}

// SplitTanks separates carousel tanks from the main tank, keeping order.
func SplitTanks(tanks []models.TankReading) (upper []models.TankReading, main *models.TankReading) {
	upper = make([]models.TankReading, 0, len(tanks))
	for i := range tanks {
		if tanks[i].Role == models.TankRoleMain {
			t := tanks[i]
			main = &t
			continue
		}
		upper = append(upper, tanks[i])
	}
	return upper, main
}

func lastUpdate(tanks []models.TankReading) time.Time {
	var last time.Time
	for _, t := range tanks {
		if t.UpdatedAt.After(last) {
			last = t.UpdatedAt
		}
	}
	return last
}

// advance returns the readings after elapsed time and the liters pumped.
// While the pump runs, water moves from the main tank into the upper tanks
// in equal shares, limited by what the main tank holds and by each tank's
// headroom. Upper tanks are always drawn down by consumption and never go
// below empty.
func advance(tanks []models.TankReading, elapsed time.Duration, pumpOn bool, feed FeedParams) ([]models.TankReading, float64) {
	next := append([]models.TankReading(nil), tanks...)
	minutes := elapsed.Minutes()
	var pumped float64

	mainIdx := -1
	var uppers []int
	for i, t := range next {
		if t.Role == models.TankRoleMain {
			mainIdx = i
		} else {
			uppers = append(uppers, i)
		}
	}

	if pumpOn && mainIdx >= 0 && len(uppers) > 0 {
		share := feed.FlowLPerMin * minutes / float64(len(uppers))
		for _, i := range uppers {
			moved := min(share, next[i].CapacityL-next[i].VolumeL, next[mainIdx].VolumeL)
			if moved <= 0 {
				continue
			}
			next[i].VolumeL += moved
			next[mainIdx].VolumeL -= moved
			pumped += moved
		}
	}

	for _, i := range uppers {
		next[i].VolumeL = max(next[i].VolumeL-feed.ConsumptionLPerMin*minutes, 0)
	}
	return next, pumped
}
