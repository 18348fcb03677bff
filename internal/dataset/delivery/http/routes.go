package http

import (
	"github.com/gin-gonic/gin"

	"gantt-chart/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Writes go through the rate limiter; reads do not.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	datasets := rg.Group("/datasets")
	{
		datasets.POST("", mw.RateLimit(), h.Create)
		datasets.GET("", h.List)
		datasets.GET("/:id", h.Detail)
		datasets.POST("/import/calendar", mw.RateLimit(), h.ImportCalendar)
	}
}
