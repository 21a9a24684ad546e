package http

import (
	"time"

	"weekly-planner/internal/model"
	"weekly-planner/internal/planner"
)

// --- Request DTOs ---

type addTaskReq struct {
	Date  string `json:"date"  binding:"omitempty,datetime=2006-01-02"`
	Title string `json:"title" binding:"required,min=1,max=255"`
	Kind  string `json:"kind"  binding:"omitempty,oneof=custom top3 selfcare family"`
}

func (r addTaskReq) toInput() planner.AddTaskInput {
	return planner.AddTaskInput{
		DateKey: r.Date,
		Title:   r.Title,
		Kind:    model.TaskKind(r.Kind),
	}
}

type toggleTaskReq struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type snoozeTaskReq struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Days int    `json:"days"`
}

type addItemReq struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
	Date  string `json:"date"  binding:"omitempty,datetime=2006-01-02"`
	Note  string `json:"note"  binding:"omitempty,max=1000"`
}

func (r addItemReq) toInput() planner.AddItemInput {
	return planner.AddItemInput{
		Title: r.Title,
		Date:  r.Date,
		Note:  r.Note,
	}
}

// --- Response DTOs ---

type weekResp struct {
	WeekStartKey string   `json:"week_start_key"`
	WeekLabels   []string `json:"week_labels"`
	Days         []string `json:"days"`
}

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"`
	Status      string    `json:"status"`
	SnoozeUntil string    `json:"snooze_until,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTaskResp(t model.TaskItem) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Kind:        string(t.Kind),
		Status:      string(t.Status),
		SnoozeUntil: t.SnoozeUntil,
		CreatedAt:   t.CreatedAt,
	}
}

type listTasksResp struct {
	DateKey string     `json:"date_key"`
	Tasks   []taskResp `json:"tasks"`
}

type addTaskResp struct {
	OK      bool     `json:"ok"`
	Task    taskResp `json:"task"`
	DateKey string   `json:"date_key"`
}

type toggleTaskResp struct {
	OK      bool   `json:"ok"`
	Status  string `json:"status,omitempty"`
	DateKey string `json:"date_key"`
}

type snoozeTaskResp struct {
	OK          bool   `json:"ok"`
	SnoozeUntil string `json:"snooze_until,omitempty"`
	DateKey     string `json:"date_key"`
}

type removeTaskResp struct {
	OK      bool   `json:"ok"`
	DateKey string `json:"date_key"`
}

type itemResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Done  bool   `json:"done"`
	Note  string `json:"note,omitempty"`
}

func newItemResp(it model.PlannerItem) itemResp {
	return itemResp{
		ID:    it.ID,
		Title: it.Title,
		Date:  it.Date,
		Done:  it.Done,
		Note:  it.Note,
	}
}

type listItemsResp struct {
	Items []itemResp `json:"items"`
}

type addItemResp struct {
	OK   bool     `json:"ok"`
	Item itemResp `json:"item"`
}

type toggleItemResp struct {
	OK   bool `json:"ok"`
	Done bool `json:"done"`
}
