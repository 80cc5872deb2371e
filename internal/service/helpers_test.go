package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"pump_console/internal/console"
	"pump_console/internal/models"
)

var errBoom = errors.New("boom")

// fakeEventRepo records appended events and serves List from memory.
type fakeEventRepo struct {
	mu        sync.Mutex
	events    []models.ConsoleEvent
	appendErr error

	// appends made with an already canceled context
	canceledAppends int

	gotFrom time.Time
	gotTo   time.Time
	gotType string
	listErr error
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.ConsoleEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ctx.Err() != nil {
		f.canceledAppends++
	}
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeEventRepo) List(_ context.Context, from, to time.Time, typ string) ([]models.ConsoleEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotFrom, f.gotTo, f.gotType = from, to, typ
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.ConsoleEvent(nil), f.events...), nil
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

// fakeTankRepo keeps readings in slice order.
type fakeTankRepo struct {
	mu        sync.Mutex
	tanks     []models.TankReading
	listErr   error
	updateErr error
}

func (f *fakeTankRepo) Seed(_ context.Context, tanks []models.TankReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tanks = append([]models.TankReading(nil), tanks...)
	return nil
}

func (f *fakeTankRepo) Update(_ context.Context, t models.TankReading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.tanks {
		if f.tanks[i].ID == t.ID {
			f.tanks[i] = t
			return nil
		}
	}
	return fmt.Errorf("tank %s not found", t.ID)
}

func (f *fakeTankRepo) List(context.Context) ([]models.TankReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.TankReading(nil), f.tanks...), nil
}

var testNow = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func sequentialIDs() console.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// startLoop runs a session loop with a fixed clock for the test's lifetime.
func startLoop(t *testing.T, control models.ControlState) *console.Loop {
	t.Helper()
	c := console.New(console.Options{
		Clock:   console.ClockFunc(func() time.Time { return testNow }),
		NewID:   sequentialIDs(),
		Control: control,
	})
	l := console.NewLoop(c, 0)
	ctx, cancel := context.WithCancel(context.Background())
	go l.Run(ctx)
	t.Cleanup(cancel)
	return l
}
