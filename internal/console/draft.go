package console

import (
	"time"

	"pump_console/internal/models"
)

// Draft is a schedule entry under construction.
// Only the calendar part of Date and the hour/minute of Time are committed.
type Draft struct {
	Date     time.Time
	Time     time.Time
	Duration models.RunDuration
}

// DraftBuilder drives the add-schedule dialog: Closed -> Editing -> Closed.
type DraftBuilder struct {
	clock   Clock
	store   *ScheduleStore
	draft   Draft
	editing bool
}

// NewDraftBuilder returns a closed builder committing into store.
func NewDraftBuilder(clock Clock, store *ScheduleStore) *DraftBuilder {
	if clock == nil {
		clock = SystemClock
	}
	return &DraftBuilder{clock: clock, store: store}
}

// Open starts a fresh draft, replacing any draft already being edited.
func (b *DraftBuilder) Open() {
	now := b.clock.Now()
	b.draft = Draft{Date: now, Time: now, Duration: models.DefaultRunDuration}
	b.editing = true
}

// SetDate changes the draft's calendar date. Ignored while closed.
func (b *DraftBuilder) SetDate(d time.Time) {
	if b.editing {
		b.draft.Date = d
	}
}

// SetTime changes the draft's time of day. Ignored while closed.
func (b *DraftBuilder) SetTime(t time.Time) {
	if b.editing {
		b.draft.Time = t
	}
}

// SetDuration changes the draft's run length. Ignored while closed.
func (b *DraftBuilder) SetDuration(d models.RunDuration) {
	if b.editing {
		b.draft.Duration = d
	}
}

// Confirm commits the open draft and closes the dialog.
// It reports false, committing nothing, when no draft is open.
func (b *DraftBuilder) Confirm() (models.ScheduleEntry, bool) {
	if !b.editing {
		return models.ScheduleEntry{}, false
	}
	e := b.store.Add(b.draft)
	b.reset()
	return e, true
}

// Cancel discards the open draft, if any, and closes the dialog.
func (b *DraftBuilder) Cancel() {
	b.reset()
}

// Editing reports whether the dialog is open.
func (b *DraftBuilder) Editing() bool { return b.editing }

// Current returns the open draft.
func (b *DraftBuilder) Current() (Draft, bool) {
	return b.draft, b.editing
}

// View renders the dialog with the draft in canonical formats.
func (b *DraftBuilder) View() models.DraftView {
	if !b.editing {
		return models.DraftView{}
	}
	return models.DraftView{
		Visible:  true,
		Date:     b.draft.Date.Format(models.DateLayout),
		Time:     b.draft.Time.Format(models.TimeLayout),
		Duration: b.draft.Duration,
	}
}

func (b *DraftBuilder) reset() {
	b.draft = Draft{}
	b.editing = false
}
