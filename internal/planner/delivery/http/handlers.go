package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"weekly-planner/internal/planner"
	"weekly-planner/pkg/dates"
	"weekly-planner/pkg/response"
)

// Week godoc
// @Summary     Week window
// @Description Returns the Monday-anchored 7-day window and display labels for the given week start key.
// @Tags        Planner
// @Produce     json
// @Param       weekStart query string true "Week start date key (YYYY-MM-DD)"
// @Success     200 {object} response.Resp{data=weekResp}
// @Failure     400 {object} response.Resp "Missing or invalid weekStart"
// @Router      /api/v1/planner/week [GET]
func (h *handler) Week(c *gin.Context) {
	raw := c.Query("weekStart")
	if raw == "" {
		response.Error(c, errMissingWeekStart)
		return
	}

	resolved := dates.ResolveWeekStart(raw)
	w := dates.WindowFromKey(resolved)
	if len(w.Labels) == 0 {
		response.Error(c, errInvalidWeekStart)
		return
	}

	response.OK(c, weekResp{
		WeekStartKey: resolved,
		WeekLabels:   w.Labels,
		Days:         w.Days,
	})
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns the day bucket's tasks in insertion order. Empty or unknown days yield an empty list.
// @Tags        Tasks
// @Produce     json
// @Param       date query string false "Date key (YYYY-MM-DD); defaults to today"
// @Success     200 {object} response.Resp{data=listTasksResp}
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()
	dateKey := c.Query("date")

	tasks := h.uc.ListTasks(ctx, dateKey)

	resp := listTasksResp{DateKey: dateKey, Tasks: make([]taskResp, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}

	response.OK(c, resp)
}

// AddTask godoc
// @Summary     Add a task
// @Description Files a new active task under the given day bucket (default today).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body addTaskReq true "Task data"
// @Success     200 {object} response.Resp{data=addTaskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) AddTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddTask(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddTask: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, addTaskResp{
		OK:      output.OK,
		Task:    newTaskResp(output.Task),
		DateKey: output.DateKey,
	})
}

// ToggleTask godoc
// @Summary     Toggle a task
// @Description Flips a task between active and done. Unknown ids report ok=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true  "Task ID"
// @Param       body body toggleTaskReq false "Bucket date (default today)"
// @Success     200 {object} response.Resp{data=toggleTaskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) ToggleTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	req, err := h.processToggleTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output := h.uc.ToggleDone(ctx, planner.ToggleTaskInput{TaskID: id, DateKey: req.Date})
	response.OK(c, toggleTaskResp{
		OK:      output.OK,
		Status:  string(output.Status),
		DateKey: output.DateKey,
	})
}

// SnoozeTask godoc
// @Summary     Snooze a task
// @Description Defers a task by the given number of days (minimum one).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true  "Task ID"
// @Param       body body snoozeTaskReq false "Bucket date and day count"
// @Success     200 {object} response.Resp{data=snoozeTaskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id}/snooze [POST]
func (h *handler) SnoozeTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	req, err := h.processSnoozeTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output := h.uc.SnoozeTask(ctx, planner.SnoozeTaskInput{TaskID: id, DateKey: req.Date, Days: req.Days})
	response.OK(c, snoozeTaskResp{
		OK:          output.OK,
		SnoozeUntil: output.SnoozeUntil,
		DateKey:     output.DateKey,
	})
}

// RemoveTask godoc
// @Summary     Remove a task
// @Description Deletes a task from its bucket; removing an absent id is a no-op success.
// @Tags        Tasks
// @Produce     json
// @Param       id   path  string true  "Task ID"
// @Param       date query string false "Bucket date (default today)"
// @Success     200 {object} response.Resp{data=removeTaskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) RemoveTask(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output := h.uc.RemoveTask(ctx, planner.RemoveTaskInput{TaskID: id, DateKey: c.Query("date")})
	response.OK(c, removeTaskResp{OK: output.OK, DateKey: output.DateKey})
}

// Counts godoc
// @Summary     Today's counts
// @Description Returns the saved/deferred summary for today's bucket. Degrades to zeros on any failure.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp{data=model.DailyCounts}
// @Router      /api/v1/tasks/counts [GET]
func (h *handler) Counts(c *gin.Context) {
	response.OK(c, h.uc.CountsForToday(c.Request.Context()))
}

// ListItems godoc
// @Summary     List planner items
// @Description Returns planner items dated within the last N days up to today.
// @Tags        Planner
// @Produce     json
// @Param       days query int false "Window size in days (default 7)"
// @Success     200 {object} response.Resp{data=listItemsResp}
// @Router      /api/v1/planner/items [GET]
func (h *handler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	items := h.uc.ItemsWithinDays(ctx, days)

	resp := listItemsResp{Items: make([]itemResp, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, newItemResp(it))
	}
	response.OK(c, resp)
}

// AddItem godoc
// @Summary     Add a planner item
// @Description Appends a date-stamped planner entry (default date today).
// @Tags        Planner
// @Accept      json
// @Produce     json
// @Param       body body addItemReq true "Planner item data"
// @Success     200 {object} response.Resp{data=addItemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/items [POST]
func (h *handler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddItemReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddItem(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddItem: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, addItemResp{OK: output.OK, Item: newItemResp(output.Item)})
}

// ToggleItem godoc
// @Summary     Toggle a planner item
// @Description Flips a planner item's done flag. Unknown ids report ok=false.
// @Tags        Planner
// @Produce     json
// @Param       id path string true "Planner item ID"
// @Success     200 {object} response.Resp{data=toggleItemResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/planner/items/{id}/toggle [POST]
func (h *handler) ToggleItem(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID)
		return
	}

	output := h.uc.ToggleItemDone(ctx, id)
	response.OK(c, toggleItemResp{OK: output.OK, Done: output.Done})
}
