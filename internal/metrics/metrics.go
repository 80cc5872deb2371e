// Package metrics exposes console counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pump_console"

// Recorder tracks console activity. A nil *Recorder records nothing.
type Recorder struct {
	transitions *prometheus.CounterVec
	entries     prometheus.Gauge
	tankLevel   *prometheus.GaugeVec
	pumped      prometheus.Counter
}

// New registers the console collectors with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Operator transitions applied to the console, by operation.",
		}, []string{"op"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "schedule_entries",
			Help:      "Committed schedule entries.",
		}),
		tankLevel: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tank_level_percent",
			Help:      "Latest fill level per tank.",
		}, []string{"tank"}),
		pumped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pumped_liters_total",
			Help:      "Water moved from the main tank to the upper tanks.",
		}),
	}
	reg.MustRegister(r.transitions, r.entries, r.tankLevel, r.pumped)
	return r
}

// Transition counts one applied operation.
func (r *Recorder) Transition(op string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(op).Inc()
}

// ScheduleEntries sets the current number of entries.
func (r *Recorder) ScheduleEntries(n int) {
	if r == nil {
		return
	}
	r.entries.Set(float64(n))
}

// TankLevel records a tank's fill percentage.
func (r *Recorder) TankLevel(tankID string, percent int) {
	if r == nil {
		return
	}
	r.tankLevel.WithLabelValues(tankID).Set(float64(percent))
}

// Pumped adds liters moved by the pump. Non-positive amounts are ignored.
func (r *Recorder) Pumped(liters float64) {
	if r == nil || liters <= 0 {
		return
	}
	r.pumped.Add(liters)
}
