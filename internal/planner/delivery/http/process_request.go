package http

import (
	"github.com/gin-gonic/gin"
)

// processAddTaskReq binds and validates the create task request body.
func (h *handler) processAddTaskReq(c *gin.Context) (addTaskReq, error) {
	var req addTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processToggleTaskReq binds the toggle request body. An empty body is
// allowed and means "today's bucket".
func (h *handler) processToggleTaskReq(c *gin.Context) (toggleTaskReq, error) {
	var req toggleTaskReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSnoozeTaskReq binds the snooze request body; empty body means
// "today, one day".
func (h *handler) processSnoozeTaskReq(c *gin.Context) (snoozeTaskReq, error) {
	var req snoozeTaskReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddItemReq binds and validates the create planner item body.
func (h *handler) processAddItemReq(c *gin.Context) (addItemReq, error) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
