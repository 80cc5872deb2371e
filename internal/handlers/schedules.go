package handlers

import (
	"errors"
	"net/http"
	"time"

	"pump_console/internal/models"
	"pump_console/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errListSchedules  = "failed to load schedules"
	errRemoveSchedule = "failed to remove schedule"
	errDraft          = "failed to update draft"
	errNoDraft        = "no schedule draft is open"
	errDateInvalid    = "invalid 'date'; use YYYY-MM-DD"
	errTimeInvalid    = "invalid 'time'; use HH:MM"
	errDurationPref   = "invalid 'duration': "
)

// DraftRequest is the partial update of the open draft. Omitted fields keep
// their current value.
type DraftRequest struct {
	Date     *string `json:"date,omitempty" example:"2024-03-10"`
	Time     *string `json:"time,omitempty" example:"14:05"`
	Duration *string `json:"duration,omitempty" example:"1 hour"`
}

// draftParams converts the request into service params or returns a user message.
func (r DraftRequest) draftParams() (service.DraftParams, string) {
	var p service.DraftParams
	if r.Date != nil {
		d, err := time.Parse(models.DateLayout, *r.Date)
		if err != nil {
			return p, errDateInvalid
		}
		p.Date = &d
	}
	if r.Time != nil {
		t, err := time.Parse(models.TimeLayout, *r.Time)
		if err != nil {
			return p, errTimeInvalid
		}
		p.Time = &t
	}
	if r.Duration != nil {
		d, err := models.ParseRunDuration(*r.Duration)
		if err != nil {
			return p, errDurationPref + err.Error()
		}
		p.Duration = &d
	}
	return p, ""
}

// draftError maps draft failures to status codes.
func (h *Handler) draftError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, service.ErrNoDraft):
		c.JSON(http.StatusConflict, gin.H{"error": errNoDraft})
	case errors.Is(err, service.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errDraft, logKey, err)
	}
}

// @Summary      List schedules
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, schedules"
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedules [get]
func (h *Handler) listSchedules(c *gin.Context) {
	list, err := h.services.Schedules.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListSchedules, "schedules_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     len(list),
		"schedules": list,
	})
}

// @Summary      Run durations
// @Description  The fixed run lengths a draft can take, shortest first.
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "durations, default"
// @Router       /api/v1/schedules/durations [get]
func (h *Handler) listDurations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"durations": models.RunDurations(),
		"default":   models.DefaultRunDuration,
	})
}

// @Summary      Remove schedule
// @Description  Unknown ids are not an error; "removed" reports whether anything was deleted.
// @Tags         schedules
// @Produce      json
// @Param        id   path      string  true  "Entry id"
// @Success      200  {object}  map[string]bool
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedules/{id} [delete]
func (h *Handler) removeSchedule(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.services.Schedules.Remove(c.Request.Context(), id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRemoveSchedule, "schedule_remove_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// @Summary      Open schedule draft
// @Description  Starts a draft with today's date, the current time and a 30 minute run. Replaces any open draft.
// @Tags         schedules
// @Produce      json
// @Success      200  {object}  models.DraftView
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedules/draft [post]
func (h *Handler) openDraft(c *gin.Context) {
	v, err := h.services.Schedules.OpenDraft(c.Request.Context())
	if err != nil {
		h.draftError(c, "draft_open_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Edit schedule draft
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body  body      DraftRequest  true  "Draft fields"
// @Success      200   {object}  models.DraftView
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/schedules/draft [patch]
func (h *Handler) updateDraft(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	params, msg := req.draftParams()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	v, err := h.services.Schedules.UpdateDraft(c.Request.Context(), params)
	if err != nil {
		h.draftError(c, "draft_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Confirm schedule draft
// @Tags         schedules
// @Produce      json
// @Success      201  {object}  models.ScheduleEntry
// @Failure      409  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedules/draft/confirm [post]
func (h *Handler) confirmDraft(c *gin.Context) {
	e, err := h.services.Schedules.ConfirmDraft(c.Request.Context())
	if err != nil {
		h.draftError(c, "draft_confirm_failed", err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// @Summary      Discard schedule draft
// @Tags         schedules
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/schedules/draft [delete]
func (h *Handler) cancelDraft(c *gin.Context) {
	if err := h.services.Schedules.CancelDraft(c.Request.Context()); err != nil {
		h.draftError(c, "draft_cancel_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
