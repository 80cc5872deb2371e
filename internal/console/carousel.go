package console

import (
	"math"

	"pump_console/internal/models"
)

// Carousel tracks the active page of the upper-tank list.
// The index is only written when a scroll gesture settles.
type Carousel struct {
	items []models.TankReading
	index int
}

// NewCarousel starts on the first page of items.
func NewCarousel(items []models.TankReading) *Carousel {
	c := &Carousel{}
	c.SetItems(items)
	return c
}

// SetItems replaces the readings supplied by the tank feed and keeps the
// index inside the new bounds.
func (c *Carousel) SetItems(items []models.TankReading) {
	c.items = append(c.items[:0:0], items...)
	if last := len(c.items) - 1; c.index > last {
		c.index = max(last, 0)
	}
}

// Items returns a copy of the current readings.
func (c *Carousel) Items() []models.TankReading {
	return append([]models.TankReading(nil), c.items...)
}

// OnScrollSettle maps a settled scroll offset to a page index.
// The index rounds half away from zero and is clamped to the item range.
// A non-positive page width, an empty item list, or a non-numeric offset
// leaves the index unchanged.
func (c *Carousel) OnScrollSettle(offset, pageWidth float64) {
	if !(pageWidth > 0) || len(c.items) == 0 || math.IsNaN(offset) {
		return
	}
	raw := math.Round(offset / pageWidth)
	last := float64(len(c.items) - 1)
	switch {
	case raw < 0:
		raw = 0
	case raw > last:
		raw = last
	}
	c.index = int(raw)
}

// CurrentIndex reports the active page; false when there are no items.
func (c *Carousel) CurrentIndex() (int, bool) {
	if len(c.items) == 0 {
		return 0, false
	}
	return c.index, true
}

// Indicators returns one flag per page, set for the active page only.
func (c *Carousel) Indicators() []bool {
	out := make([]bool, len(c.items))
	if i, ok := c.CurrentIndex(); ok {
		out[i] = true
	}
	return out
}

// View renders the carousel for the presentation layer.
func (c *Carousel) View() models.CarouselView {
	v := models.CarouselView{
		Items:      make([]models.TankView, 0, len(c.items)),
		Indicators: c.Indicators(),
	}
	for _, it := range c.items {
		v.Items = append(v.Items, models.NewTankView(it))
	}
	if i, ok := c.CurrentIndex(); ok {
		v.CurrentIndex = &i
	}
	return v
}
