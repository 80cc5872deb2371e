// Package console holds the in-memory state of one operator session:
// control toggles, the schedule list and its add dialog, and the tank
// carousel. Nothing in this package is safe for concurrent use; callers
// serialize access through a Loop.
package console

import "pump_console/internal/models"

// Options configure a new Console.
type Options struct {
	Clock      Clock
	NewID      IDFunc
	Control    models.ControlState
	UpperTanks []models.TankReading
	MainTank   *models.TankReading
	Pump       models.PumpRating
}

// Console aggregates the session's controllers.
type Console struct {
	Control  *Controller
	Store    *ScheduleStore
	Drafts   *DraftBuilder
	Carousel *Carousel

	clock    Clock
	rating   models.PumpRating
	today    pumpTotals
	mainTank *models.TankReading
}

// New builds a session from opts.
func New(opts Options) *Console {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	store := NewScheduleStore(opts.NewID)
	c := &Console{
		Control:  NewController(opts.Control),
		Store:    store,
		Drafts:   NewDraftBuilder(opts.Clock, store),
		Carousel: NewCarousel(opts.UpperTanks),
		clock:    opts.Clock,
		rating:   opts.Pump,
	}
	c.SetMainTank(opts.MainTank)
	return c
}

// SetMainTank replaces the main-tank reading; nil clears it.
func (c *Console) SetMainTank(t *models.TankReading) {
	if t == nil {
		c.mainTank = nil
		return
	}
	cp := *t
	c.mainTank = &cp
}

// MainTank returns the main-tank reading, if known.
func (c *Console) MainTank() (models.TankReading, bool) {
	if c.mainTank == nil {
		return models.TankReading{}, false
	}
	return *c.mainTank, true
}

// Snapshot captures everything the presentation layer renders.
func (c *Console) Snapshot() models.ConsoleState {
	st := models.ConsoleState{
		Control:   c.Control.State(),
		Schedules: c.Store.List(),
		Draft:     c.Drafts.View(),
		Carousel:  c.Carousel.View(),
	}
	if mt, ok := c.MainTank(); ok {
		v := models.NewTankView(mt)
		st.MainTank = &v
	}
	level := c.health()
	st.Health = models.Health{Level: level, Label: models.HealthLabel(level)}
	st.Pump = c.pumpView()
	st.Durations = models.RunDurations()
	return st
}

// health summarizes tank levels and control state.
func (c *Console) health() string {
	tanks := c.Carousel.Items()
	if mt, ok := c.MainTank(); ok {
		tanks = append(tanks, mt)
	}
	worst := models.TankStatusGood
	for _, t := range tanks {
		switch t.Status() {
		case models.TankStatusLow:
			return models.HealthCritical
		case models.TankStatusMedium:
			worst = models.TankStatusMedium
		}
	}
	if worst == models.TankStatusMedium {
		return models.HealthWarning
	}
	ctl := c.Control.State()
	if !ctl.PumpOn && !ctl.AutoMode && c.Store.Len() == 0 {
		return models.HealthGood
	}
	return models.HealthExcellent
}
