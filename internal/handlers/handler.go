package handlers

import (
	"pump_console/internal/logger"
	"pump_console/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	gatherer prometheus.Gatherer
}

// NewHandler constructs a new HTTP handler with dependencies.
// A nil gatherer leaves /metrics unmounted.
func NewHandler(services *service.Service, log *logger.Logger, gatherer prometheus.Gatherer) *Handler {
	return &Handler{services: services, log: log, gatherer: gatherer}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/health", h.health)

	h.registerAPIRoutes(router)

	// state stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/console/state", h.getState)
		h.registerControlRoutes(api)
		h.registerScheduleRoutes(api)
		h.registerTankRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerControlRoutes(api *gin.RouterGroup) {
	control := api.Group("/control")
	{
		control.POST("/pump/toggle", h.togglePump)
		control.POST("/mode/toggle", h.toggleMode)
		control.POST("/manual-schedule/toggle", h.toggleManualSchedule)
		control.POST("/schedule/toggle", h.toggleSchedule)
	}
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	schedules := api.Group("/schedules")
	{
		schedules.GET("", h.listSchedules)
		schedules.GET("/durations", h.listDurations)
		schedules.DELETE("/:id", h.removeSchedule)

		// Body example: {"date":"2024-03-10","time":"14:05","duration":"1 hour"}
		schedules.POST("/draft", h.openDraft)
		schedules.PATCH("/draft", h.updateDraft)
		schedules.DELETE("/draft", h.cancelDraft)
		schedules.POST("/draft/confirm", h.confirmDraft)
	}
}

func (h *Handler) registerTankRoutes(api *gin.RouterGroup) {
	tanks := api.Group("/tanks")
	{
		tanks.GET("", h.getCarousel)
		// Body example: {"offset":250,"page_width":100}
		tanks.POST("/settle", h.settleCarousel)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
	}
}
