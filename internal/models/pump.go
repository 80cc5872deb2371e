package models

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// NextRunLayout renders a run's start the way the console shows it.
const NextRunLayout = "3:04 PM"

// PumpRating is the nameplate output of the pump while it runs.
type PumpRating struct {
	FlowLPerMin float64
	PressureBar float64
}

// NextRun is the earliest schedule entry that has not finished yet.
type NextRun struct {
	Entry    ScheduleEntry `json:"entry"`
	StartsAt time.Time     `json:"starts_at"`
	EndsAt   time.Time     `json:"ends_at"`
	Label    string        `json:"label"` // "3:30 PM"
}

// PumpView is the pump card: live output plus today's totals.
type PumpView struct {
	On               bool     `json:"on"`
	FlowLPerMin      float64  `json:"flow_l_per_min"`
	FlowLabel        string   `json:"flow_label"`
	PressureBar      float64  `json:"pressure_bar"`
	PressureLabel    string   `json:"pressure_label"`
	RuntimeTodaySec  float64  `json:"runtime_today_s"`
	RuntimeLabel     string   `json:"runtime_label"`
	PumpedTodayL     float64  `json:"pumped_today_l"`
	PumpedTodayLabel string   `json:"pumped_today_label"`
	NextRun          *NextRun `json:"next_run,omitempty"`
}

// NewPumpView derives the pump card. A stopped pump reports no flow or pressure.
func NewPumpView(on bool, rating PumpRating, pumpedL float64, runtime time.Duration, next *NextRun) PumpView {
	v := PumpView{
		On:              on,
		RuntimeTodaySec: runtime.Seconds(),
		PumpedTodayL:    pumpedL,
		NextRun:         next,
	}
	if on {
		v.FlowLPerMin = rating.FlowLPerMin
		v.PressureBar = rating.PressureBar
	}
	v.FlowLabel = humanize.FtoaWithDigits(v.FlowLPerMin, 1) + " L/min"
	v.PressureLabel = humanize.FtoaWithDigits(v.PressureBar, 1) + " bar"
	v.RuntimeLabel = humanize.FtoaWithDigits(runtime.Hours(), 1) + " hrs"
	v.PumpedTodayLabel = humanize.Comma(int64(math.Round(pumpedL))) + " L"
	return v
}
