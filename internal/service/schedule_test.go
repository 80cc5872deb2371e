package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"pump_console/internal/console"
	"pump_console/internal/metrics"
	"pump_console/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestScheduleService_AddFlow(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	reg := prometheus.NewRegistry()
	svc := NewScheduleService(startLoop(t, console.DefaultControlState), events, metrics.New(reg))

	v, err := svc.OpenDraft(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := models.DraftView{Visible: true, Date: "2024-03-10", Time: "09:30", Duration: models.Run30Minutes}
	if v != want {
		t.Fatalf("open view = %+v, want %+v", v, want)
	}

	v, err = svc.UpdateDraft(ctx, DraftParams{
		Time:     ptr(time.Date(1, 1, 1, 14, 5, 0, 0, time.UTC)),
		Duration: ptr(models.Run1Hour),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if v.Time != "14:05" || v.Duration != models.Run1Hour || v.Date != "2024-03-10" {
		t.Fatalf("unexpected draft after update: %+v", v)
	}

	e, err := svc.ConfirmDraft(ctx)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if e.ID != "id-1" || e.Date != "2024-03-10" || e.Time != "14:05" || e.Duration != models.Run1Hour {
		t.Fatalf("unexpected entry: %+v", e)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0] != e {
		t.Fatalf("list = %+v, want [%+v]", list, e)
	}
	if got := events.types(); len(got) != 1 || got[0] != models.EventScheduleAdd {
		t.Fatalf("journal = %v", got)
	}
	if n, err := testutil.GatherAndCount(reg, "pump_console_schedule_entries"); err != nil || n != 1 {
		t.Fatalf("schedule_entries gauge missing: n=%d err=%v", n, err)
	}

	// dialog is closed after confirm
	if _, err := svc.ConfirmDraft(ctx); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("second confirm: expected ErrNoDraft, got %v", err)
	}
}

func TestScheduleService_UpdateDraft(t *testing.T) {
	tests := []struct {
		name    string
		open    bool
		params  DraftParams
		wantErr error
	}{
		{name: "closed", open: false, params: DraftParams{Duration: ptr(models.Run2Hours)}, wantErr: ErrNoDraft},
		{name: "invalid duration", open: true, params: DraftParams{Duration: ptr(models.RunDuration("3 hours"))}, wantErr: ErrInvalidDuration},
		{name: "empty params", open: true, params: DraftParams{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := NewScheduleService(startLoop(t, console.DefaultControlState), &fakeEventRepo{}, nil)
			if tt.open {
				if _, err := svc.OpenDraft(ctx); err != nil {
					t.Fatalf("open: %v", err)
				}
			}
			_, err := svc.UpdateDraft(ctx, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestScheduleService_CancelDiscardsDraft(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	svc := NewScheduleService(startLoop(t, console.DefaultControlState), events, nil)

	// cancel while closed is silent
	if err := svc.CancelDraft(ctx); err != nil {
		t.Fatalf("cancel closed: %v", err)
	}
	if len(events.events) != 0 {
		t.Fatalf("expected no journal entry for a closed dialog")
	}

	if _, err := svc.OpenDraft(ctx); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := svc.CancelDraft(ctx); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	list, _ := svc.List(ctx)
	if len(list) != 0 {
		t.Fatalf("cancel must not commit, got %+v", list)
	}
	if got := events.types(); len(got) != 1 || got[0] != models.EventDraftCancel {
		t.Fatalf("journal = %v", got)
	}
}

func TestScheduleService_Remove(t *testing.T) {
	ctx := context.Background()
	events := &fakeEventRepo{}
	svc := NewScheduleService(startLoop(t, console.DefaultControlState), events, nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.OpenDraft(ctx); err != nil {
			t.Fatalf("open: %v", err)
		}
		if _, err := svc.ConfirmDraft(ctx); err != nil {
			t.Fatalf("confirm: %v", err)
		}
	}

	removed, err := svc.Remove(ctx, "unknown")
	if err != nil || removed {
		t.Fatalf("unknown id: removed=%v err=%v", removed, err)
	}
	removed, err = svc.Remove(ctx, "id-1")
	if err != nil || !removed {
		t.Fatalf("known id: removed=%v err=%v", removed, err)
	}
	removed, _ = svc.Remove(ctx, "id-1")
	if removed {
		t.Fatalf("second removal of the same id must report false")
	}

	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].ID != "id-2" {
		t.Fatalf("remaining = %+v", list)
	}
	got := events.types()
	want := []string{models.EventScheduleAdd, models.EventScheduleAdd, models.EventScheduleRemove}
	if len(got) != len(want) {
		t.Fatalf("journal = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("journal = %v, want %v", got, want)
		}
	}
}

func TestScheduleService_ListEmptyIsNotNil(t *testing.T) {
	svc := NewScheduleService(startLoop(t, console.DefaultControlState), &fakeEventRepo{}, nil)
	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil {
		t.Fatalf("expected empty non-nil slice")
	}
}
