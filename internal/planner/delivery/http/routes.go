package http

import (
	"github.com/gin-gonic/gin"

	"weekly-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The query
// surface is open; command routes go through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/counts", h.Counts)
		tasks.POST("", mw.RateLimit(), h.AddTask)
		tasks.POST("/:id/toggle", mw.RateLimit(), h.ToggleTask)
		tasks.POST("/:id/snooze", mw.RateLimit(), h.SnoozeTask)
		tasks.DELETE("/:id", mw.RateLimit(), h.RemoveTask)
	}

	plannerGroup := rg.Group("/planner")
	{
		plannerGroup.GET("/week", h.Week)
		plannerGroup.GET("/items", h.ListItems)
		plannerGroup.POST("/items", mw.RateLimit(), h.AddItem)
		plannerGroup.POST("/items/:id/toggle", mw.RateLimit(), h.ToggleItem)
	}
}
