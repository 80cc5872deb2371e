package handlers

import (
	"errors"
	"net/http"
	"time"

	"pump_console/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errRange       = "'from' must be <= 'to'"
	errEventType   = "unknown 'type'"
	errListLogs    = "failed to load logs"
)

// queryLayouts are tried in order; dateOnly marks layouts without a clock part.
var queryLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{time.RFC3339, false},
	{"2006-01-02 15:04:05", false},
	{"2006-01-02", true},
}

type logsQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
	Type string `form:"type"`
}

// parseBound reads one range bound as UTC. A date-only upper bound covers the whole day.
func parseBound(s string, upper bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, q := range queryLayouts {
		t, err := time.Parse(q.layout, s)
		if err != nil {
			continue
		}
		if q.dateOnly && upper {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}

// @Summary      List operator journal
// @Description  Filter journal events by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). A date-only 'to' covers the whole day.
// @Tags         logs
// @Produce      json
// @Param        from  query   string  false  "Start of range"  example(2024-03-01)
// @Param        to    query   string  false  "End of range; date-only means end of day"  example(2024-03-31)
// @Param        type  query   string  false  "Event type"  Enums(PUMP_TOGGLE,MODE_CHANGE,MANUAL_SCHEDULE_TOGGLE,SCHEDULE_TOGGLE,SCHEDULE_ADD,SCHEDULE_REMOVE,DRAFT_CANCEL,LOW_LEVEL)
// @Success      200   {object}  map[string]interface{}  "count, events"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/logs [get]
func (h *Handler) getLogs(c *gin.Context) {
	var q logsQuery
	_ = c.ShouldBindQuery(&q)

	from, ok := parseBound(q.From, false)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
		return
	}
	to, ok := parseBound(q.To, true)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
		return
	}
	filter, err := service.LogFilter{From: from, To: to, Type: q.Type}.Normalize()
	switch {
	case errors.Is(err, service.ErrInvalidTimeRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": errRange})
		return
	case errors.Is(err, service.ErrUnknownEventType):
		c.JSON(http.StatusBadRequest, gin.H{"error": errEventType})
		return
	}

	events, err := h.services.EventLog.List(c.Request.Context(), filter)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListLogs, "logs_list_failed", err,
			"from", filter.From, "to", filter.To, "type", filter.Type)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(events),
		"events": events,
	})
}
