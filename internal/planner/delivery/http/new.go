package http

import (
	"github.com/gin-gonic/gin"

	"weekly-planner/internal/planner"
	"weekly-planner/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	Week(c *gin.Context)
	ListTasks(c *gin.Context)
	AddTask(c *gin.Context)
	ToggleTask(c *gin.Context)
	SnoozeTask(c *gin.Context)
	RemoveTask(c *gin.Context)
	Counts(c *gin.Context)
	ListItems(c *gin.Context)
	AddItem(c *gin.Context)
	ToggleItem(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
