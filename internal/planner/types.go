package planner

import "weekly-planner/internal/model"

// AddTaskInput is the input for filing a new task under a day bucket.
// An empty DateKey means "today" (resolved against the injected clock).
type AddTaskInput struct {
	DateKey string
	Title   string
	Kind    model.TaskKind
}

// AddTaskOutput is the result of AddTask. OK is false when the bucket could
// not be persisted; the task then did not apply.
type AddTaskOutput struct {
	OK      bool
	Task    model.TaskItem
	DateKey string
}

// ToggleTaskInput identifies the task to toggle within its bucket.
type ToggleTaskInput struct {
	TaskID  string
	DateKey string
}

// ToggleTaskOutput reports the status after toggling. OK is false when the
// task id was not found; no other field is meaningful then.
type ToggleTaskOutput struct {
	OK      bool
	Status  model.TaskStatus
	DateKey string
}

// SnoozeTaskInput defers a task by Days calendar days. Days below 1 are
// clamped to 1.
type SnoozeTaskInput struct {
	TaskID  string
	DateKey string
	Days    int
}

// SnoozeTaskOutput reports the computed snooze target day.
type SnoozeTaskOutput struct {
	OK          bool
	SnoozeUntil string
	DateKey     string
}

// RemoveTaskInput identifies the task to delete from its bucket.
type RemoveTaskInput struct {
	TaskID  string
	DateKey string
}

// RemoveTaskOutput is the result of RemoveTask. Removing an absent id is a
// no-op success, so OK is true whenever the bucket could be persisted.
type RemoveTaskOutput struct {
	OK      bool
	DateKey string
}

// AddItemInput is the input for appending a planner entry to the flat list.
type AddItemInput struct {
	Title string
	Date  string
	Note  string
}

// AddItemOutput is the result of AddItem. OK is false when the list could
// not be persisted.
type AddItemOutput struct {
	OK   bool
	Item model.PlannerItem
}

// ToggleItemOutput reports a planner item's done flag after toggling.
type ToggleItemOutput struct {
	OK   bool
	Done bool
}
