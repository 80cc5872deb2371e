package models

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Tank roles.
const (
	TankRoleMain  = "main"
	TankRoleUpper = "upper"
)

// TankStatus classifies a fill level.
type TankStatus string

const (
	TankStatusLow    TankStatus = "Low"
	TankStatusMedium TankStatus = "Medium"
	TankStatusGood   TankStatus = "Good"
)

// Fill thresholds in percent.
const (
	lowLevelPercent    = 20
	mediumLevelPercent = 40
)

// StatusFor returns the status label for a fill percentage.
func StatusFor(percentage float64) TankStatus {
	switch {
	case percentage < lowLevelPercent:
		return TankStatusLow
	case percentage < mediumLevelPercent:
		return TankStatusMedium
	default:
		return TankStatusGood
	}
}

// TankReading is the latest measurement of one tank.
type TankReading struct {
	ID           string    `json:"id" mapstructure:"id"`
	Name         string    `json:"name" mapstructure:"name"`
	Role         string    `json:"role" mapstructure:"role"` // main | upper
	CapacityL    float64   `json:"capacity_l" mapstructure:"capacity_l"`
	VolumeL      float64   `json:"volume_l" mapstructure:"volume_l"`
	TemperatureC float64   `json:"temperature_c" mapstructure:"temperature_c"`
	UpdatedAt    time.Time `json:"updated_at" mapstructure:"-"`
}

// Percentage is the fill level rounded down to a whole percent.
func (t TankReading) Percentage() int {
	if t.CapacityL <= 0 {
		return 0
	}
	p := int(t.VolumeL / t.CapacityL * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Status classifies the reading's fill level.
func (t TankReading) Status() TankStatus {
	return StatusFor(float64(t.Percentage()))
}

// VolumeLabel renders the volume as "7,000 L".
func (t TankReading) VolumeLabel() string {
	return humanize.Comma(int64(t.VolumeL)) + " L"
}

// CapacityLabel renders the capacity as "10,000 L".
func (t TankReading) CapacityLabel() string {
	return humanize.Comma(int64(t.CapacityL)) + " L"
}
