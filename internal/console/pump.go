package console

import (
	"time"

	"pump_console/internal/models"
)

// pumpTotals accumulates pump output for one calendar day.
type pumpTotals struct {
	day     string
	pumpedL float64
	runtime time.Duration
}

// RecordPumping adds a feed interval ending at at. Totals restart on the
// first record of a new day in the console clock's zone.
func (c *Console) RecordPumping(at time.Time, liters float64, ran time.Duration) {
	day := at.In(c.clock.Now().Location()).Format(models.DateLayout)
	if c.today.day != day {
		c.today = pumpTotals{day: day}
	}
	c.today.pumpedL += liters
	c.today.runtime += ran
}

// PumpedToday returns today's totals; zero when nothing was recorded today.
func (c *Console) PumpedToday() (float64, time.Duration) {
	if c.today.day != c.clock.Now().Format(models.DateLayout) {
		return 0, 0
	}
	return c.today.pumpedL, c.today.runtime
}

// NextRun returns the earliest entry whose run has not ended at now.
func (c *Console) NextRun(now time.Time) *models.NextRun {
	var next *models.NextRun
	for _, e := range c.Store.entries {
		start, err := e.StartsAt(now.Location())
		if err != nil {
			continue
		}
		end := start.Add(e.Duration.Duration())
		if !end.After(now) {
			continue
		}
		if next == nil || start.Before(next.StartsAt) {
			next = &models.NextRun{Entry: e, StartsAt: start, EndsAt: end, Label: start.Format(models.NextRunLayout)}
		}
	}
	return next
}

func (c *Console) pumpView() models.PumpView {
	pumped, runtime := c.PumpedToday()
	return models.NewPumpView(c.Control.State().PumpOn, c.rating, pumped, runtime, c.NextRun(c.clock.Now()))
}
