package service

import (
	"context"

	"pump_console/internal/console"
	"pump_console/internal/models"
)

type TankService struct {
	loop *console.Loop
}

func NewTankService(loop *console.Loop) *TankService {
	return &TankService{loop: loop}
}

func (s *TankService) Carousel(ctx context.Context) (models.CarouselView, error) {
	var v models.CarouselView
	err := s.loop.Do(ctx, func(c *console.Console) { v = c.Carousel.View() })
	return v, err
}

// Settle reports a finished scroll gesture and returns the resulting page.
func (s *TankService) Settle(ctx context.Context, offset, pageWidth float64) (models.CarouselView, error) {
	var v models.CarouselView
	err := s.loop.Do(ctx, func(c *console.Console) {
		c.Carousel.OnScrollSettle(offset, pageWidth)
		v = c.Carousel.View()
	})
	return v, err
}
