package http

import (
	"github.com/gin-gonic/gin"

	"gantt-chart/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Session creation and rendering go through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	views := rg.Group("/views")
	{
		views.POST("", mw.RateLimit(), h.Create)
		views.GET("/:id", h.Get)
		views.PUT("/:id", h.Update)
		views.DELETE("/:id", h.Delete)
		views.GET("/:id/render", mw.RateLimit(), h.Render)
		views.POST("/:id/groups/:key/toggle", h.ToggleGroup)
		views.POST("/:id/tasks/:task_id/toggle", h.ToggleTask)
		views.POST("/:id/tasks/:task_id/click", h.ClickTask)
		views.POST("/:id/viewport", h.Gesture)
	}
}
