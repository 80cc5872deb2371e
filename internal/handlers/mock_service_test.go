package handlers

import (
	"context"
	"sync"
	"time"

	"pump_console/internal/models"
	"pump_console/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockControl struct {
	state models.ControlState
	err   error
	calls []string
}

func (m *mockControl) record(op string) (models.ControlState, error) {
	m.calls = append(m.calls, op)
	return m.state, m.err
}
func (m *mockControl) TogglePump(ctx context.Context) (models.ControlState, error) {
	return m.record("pump")
}
func (m *mockControl) ToggleAutoMode(ctx context.Context) (models.ControlState, error) {
	return m.record("mode")
}
func (m *mockControl) ToggleManualSchedule(ctx context.Context) (models.ControlState, error) {
	return m.record("manual_schedule")
}
func (m *mockControl) ToggleSchedule(ctx context.Context) (models.ControlState, error) {
	return m.record("schedule")
}

type mockSchedules struct {
	list       []models.ScheduleEntry
	listErr    error
	removed    bool
	removeErr  error
	lastRemove string
	draft      models.DraftView
	draftErr   error
	lastParams service.DraftParams
	entry      models.ScheduleEntry
	confirmErr error
	cancelErr  error
	cancels    int
}

func (m *mockSchedules) List(ctx context.Context) ([]models.ScheduleEntry, error) {
	return m.list, m.listErr
}
func (m *mockSchedules) Remove(ctx context.Context, id string) (bool, error) {
	m.lastRemove = id
	return m.removed, m.removeErr
}
func (m *mockSchedules) OpenDraft(ctx context.Context) (models.DraftView, error) {
	return m.draft, m.draftErr
}
func (m *mockSchedules) UpdateDraft(ctx context.Context, p service.DraftParams) (models.DraftView, error) {
	m.lastParams = p
	return m.draft, m.draftErr
}
func (m *mockSchedules) ConfirmDraft(ctx context.Context) (models.ScheduleEntry, error) {
	return m.entry, m.confirmErr
}
func (m *mockSchedules) CancelDraft(ctx context.Context) error {
	m.cancels++
	return m.cancelErr
}

type mockTanks struct {
	view       models.CarouselView
	err        error
	lastOffset float64
	lastWidth  float64
}

func (m *mockTanks) Carousel(ctx context.Context) (models.CarouselView, error) {
	return m.view, m.err
}
func (m *mockTanks) Settle(ctx context.Context, offset, pageWidth float64) (models.CarouselView, error) {
	m.lastOffset, m.lastWidth = offset, pageWidth
	return m.view, m.err
}

type mockMonitoring struct {
	mu    sync.Mutex
	state models.ConsoleState
	err   error
}

func (m *mockMonitoring) GetState(ctx context.Context) (models.ConsoleState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.err
}

func (m *mockMonitoring) setState(st models.ConsoleState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
}

type mockEventLog struct {
	resp     []models.ConsoleEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.ConsoleEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
