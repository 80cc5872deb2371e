package handlers

import (
	"context"
	"net/http"

	"pump_console/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errToggle          = "failed to apply toggle"
	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get console state
// @Description  Control flags, schedule list, open draft, tank carousel, main tank and health summary.
// @Tags         console
// @Produce      json
// @Success      200  {object}  models.ConsoleState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/console/state [get]
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "console_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

type toggleFunc func(ctx context.Context) (models.ControlState, error)

// toggle runs fn and answers with the resulting control state.
func (h *Handler) toggle(c *gin.Context, op string, fn toggleFunc) {
	st, err := fn(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errToggle, "control_toggle_failed", err, "op", op)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Toggle pump
// @Tags         control
// @Produce      json
// @Success      200  {object}  models.ControlState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/control/pump/toggle [post]
func (h *Handler) togglePump(c *gin.Context) {
	h.toggle(c, "pump", h.services.Control.TogglePump)
}

// @Summary      Toggle auto/manual mode
// @Description  Switching to manual also enables the manual schedule. Switching back to auto leaves it as is.
// @Tags         control
// @Produce      json
// @Success      200  {object}  models.ControlState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/control/mode/toggle [post]
func (h *Handler) toggleMode(c *gin.Context) {
	h.toggle(c, "mode", h.services.Control.ToggleAutoMode)
}

// @Summary      Toggle manual schedule
// @Tags         control
// @Produce      json
// @Success      200  {object}  models.ControlState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/control/manual-schedule/toggle [post]
func (h *Handler) toggleManualSchedule(c *gin.Context) {
	h.toggle(c, "manual_schedule", h.services.Control.ToggleManualSchedule)
}

// @Summary      Toggle schedule
// @Tags         control
// @Produce      json
// @Success      200  {object}  models.ControlState
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/control/schedule/toggle [post]
func (h *Handler) toggleSchedule(c *gin.Context) {
	h.toggle(c, "schedule", h.services.Control.ToggleSchedule)
}
