package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errCarousel = "failed to load tanks"

// SettleRequest reports where a carousel scroll came to rest.
type SettleRequest struct {
	Offset    *float64 `json:"offset" binding:"required" example:"250"`
	PageWidth *float64 `json:"page_width" binding:"required" example:"100"`
}

// @Summary      Upper tank carousel
// @Tags         tanks
// @Produce      json
// @Success      200  {object}  models.CarouselView
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tanks [get]
func (h *Handler) getCarousel(c *gin.Context) {
	v, err := h.services.Tanks.Carousel(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCarousel, "tanks_carousel_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Settle carousel scroll
// @Description  Maps the resting offset to a page: round(offset / page_width), clamped to the tank range.
// @Tags         tanks
// @Accept       json
// @Produce      json
// @Param        body  body      SettleRequest  true  "Scroll position"
// @Success      200   {object}  models.CarouselView
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/tanks/settle [post]
func (h *Handler) settleCarousel(c *gin.Context) {
	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	v, err := h.services.Tanks.Settle(c.Request.Context(), *req.Offset, *req.PageWidth)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCarousel, "tanks_settle_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}
