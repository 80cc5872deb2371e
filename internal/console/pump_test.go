package console

import (
	"testing"
	"time"

	"pump_console/internal/models"
)

func TestConsole_RecordPumping_ResetsDaily(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 5, 0, 0, time.UTC)
	c := New(Options{
		Clock:   ClockFunc(func() time.Time { return now }),
		Control: DefaultControlState,
		Pump:    models.PumpRating{FlowLPerMin: 45, PressureBar: 2.5},
	})

	c.RecordPumping(now.Add(-24*time.Hour), 999, time.Hour) // yesterday
	if l, _ := c.PumpedToday(); l != 0 {
		t.Fatalf("yesterday's output counted today: %v", l)
	}

	c.RecordPumping(now.Add(-time.Minute), 600, 10*time.Minute)
	c.RecordPumping(now, 650, 20*time.Minute)
	l, ran := c.PumpedToday()
	if l != 1250 || ran != 30*time.Minute {
		t.Fatalf("today = %v L over %v", l, ran)
	}

	st := c.Snapshot()
	if st.Pump.PumpedTodayLabel != "1,250 L" || st.Pump.RuntimeLabel != "0.5 hrs" {
		t.Fatalf("unexpected pump view: %+v", st.Pump)
	}
	if st.Pump.FlowLPerMin != 45 || st.Pump.PressureBar != 2.5 {
		t.Fatalf("running pump should report its rating: %+v", st.Pump)
	}

	c.Control.TogglePump()
	if st := c.Snapshot(); st.Pump.On || st.Pump.FlowLPerMin != 0 || st.Pump.PumpedTodayL != 1250 {
		t.Fatalf("stopped pump: %+v", st.Pump)
	}
}

func TestConsole_NextRun(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 5, 0, 0, time.UTC)
	add := func(b *DraftBuilder, date, clock string, d models.RunDuration) {
		t.Helper()
		day, _ := time.Parse(models.DateLayout, date)
		at, _ := time.Parse(models.TimeLayout, clock)
		b.Open()
		b.SetDate(day)
		b.SetTime(at)
		b.SetDuration(d)
		if _, ok := b.Confirm(); !ok {
			t.Fatalf("confirm failed")
		}
	}

	c := New(Options{Clock: ClockFunc(func() time.Time { return now })})
	if c.NextRun(now) != nil {
		t.Fatalf("empty store has no next run")
	}

	add(c.Drafts, "2024-03-10", "09:00", models.Run1Hour)     // finished
	add(c.Drafts, "2024-03-11", "06:00", models.Run15Minutes) // tomorrow
	add(c.Drafts, "2024-03-10", "15:30", models.Run30Minutes) // later today
	add(c.Drafts, "2024-03-10", "13:30", models.Run1Hour)     // running now

	next := c.NextRun(now)
	if next == nil || next.Entry.Time != "13:30" {
		t.Fatalf("expected the running entry, got %+v", next)
	}
	if !next.EndsAt.Equal(time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("ends at %v", next.EndsAt)
	}

	next = c.NextRun(now.Add(30 * time.Minute))
	if next == nil || next.Entry.Time != "15:30" || next.Label != "3:30 PM" {
		t.Fatalf("expected 3:30 PM run, got %+v", next)
	}

	if st := c.Snapshot(); st.Pump.NextRun == nil || st.Pump.NextRun.Entry.Time != "13:30" {
		t.Fatalf("snapshot next run = %+v", st.Pump.NextRun)
	}
	if st := c.Snapshot(); len(st.Durations) != len(models.RunDurations()) {
		t.Fatalf("snapshot durations = %v", st.Durations)
	}
}
