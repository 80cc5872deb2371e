package models

// Health levels of the installation summary.
const (
	HealthExcellent = "excellent"
	HealthGood      = "good"
	HealthWarning   = "warning"
	HealthCritical  = "critical"
)

var healthLabels = map[string]string{
	HealthExcellent: "System Optimal",
	HealthGood:      "All Systems Normal",
	HealthWarning:   "Attention Required",
	HealthCritical:  "Critical Alert",
}

// HealthLabel returns the operator-facing label of a health level.
func HealthLabel(level string) string {
	return healthLabels[level]
}

// DraftView exposes the add-dialog to the presentation layer.
type DraftView struct {
	Visible  bool        `json:"visible"`
	Date     string      `json:"date,omitempty"`
	Time     string      `json:"time,omitempty"`
	Duration RunDuration `json:"duration,omitempty"`
}

// TankView is a tank reading enriched with derived display values.
type TankView struct {
	TankReading
	Percentage    int        `json:"percentage"`
	Status        TankStatus `json:"status"`
	VolumeLabel   string     `json:"volume_label"`
	CapacityLabel string     `json:"capacity_label"`
}

// NewTankView derives the display values of r.
func NewTankView(r TankReading) TankView {
	return TankView{
		TankReading:   r,
		Percentage:    r.Percentage(),
		Status:        r.Status(),
		VolumeLabel:   r.VolumeLabel(),
		CapacityLabel: r.CapacityLabel(),
	}
}

// CarouselView is the paged upper-tank list. CurrentIndex is nil when empty.
type CarouselView struct {
	Items        []TankView `json:"items"`
	CurrentIndex *int       `json:"current_index"`
	Indicators   []bool     `json:"indicators"`
}

// Health is the installation summary shown above the tanks.
type Health struct {
	Level string `json:"level"`
	Label string `json:"label"`
}

// ConsoleState is the full snapshot the presentation layer renders from.
type ConsoleState struct {
	Control   ControlState    `json:"control"`
	Schedules []ScheduleEntry `json:"schedules"`
	Draft     DraftView       `json:"draft"`
	Carousel  CarouselView    `json:"carousel"`
	MainTank  *TankView       `json:"main_tank,omitempty"`
	Health    Health          `json:"health"`
	Pump      PumpView        `json:"pump"`
	Durations []RunDuration   `json:"durations"` // choices for the draft dialog
}
