package model

import "time"

// TaskStatus is the lifecycle state of a TaskItem.
type TaskStatus string

const (
	TaskStatusActive  TaskStatus = "active"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusSnoozed TaskStatus = "snoozed"
)

// TaskKind classifies where a task came from in the planner UI.
type TaskKind string

const (
	TaskKindCustom   TaskKind = "custom"
	TaskKindTop3     TaskKind = "top3"
	TaskKindSelfcare TaskKind = "selfcare"
	TaskKindFamily   TaskKind = "family"
)

// TaskItem is one entry of a day bucket. A task stays filed under its
// creation day forever; snoozing only sets SnoozeUntil, it never moves the
// item to another bucket.
type TaskItem struct {
	ID          string     `json:"id"` // unique within its bucket
	Title       string     `json:"title"`
	Kind        TaskKind   `json:"kind"`
	Status      TaskStatus `json:"status"`
	SnoozeUntil string     `json:"snoozeUntil,omitempty"` // date key, set only while snoozed
	CreatedAt   time.Time  `json:"createdAt"`
}

// DayBucket is the ordered task list of one civil day, persisted whole under
// its date key.
type DayBucket []TaskItem

// DailyCounts is the same-day summary shown in badges and headers.
type DailyCounts struct {
	SavedToday int `json:"saved_today"`
	LaterToday int `json:"later_today"`
}
