package planner

import (
	"context"

	"weekly-planner/internal/model"
)

// UseCase is the business logic interface for the planner domain.
//
// The query methods (ListTasks, CountsForToday, ItemsWithinDays) degrade
// gracefully: storage failures and malformed records read as empty data,
// never as errors. The command methods report "not found" through OK=false
// on their outputs rather than an error.
type UseCase interface {
	// ListTasks returns the bucket's tasks in insertion order; empty when
	// the bucket does not exist. dateKey "" means today.
	ListTasks(ctx context.Context, dateKey string) []model.TaskItem

	// AddTask appends a new active task to its day bucket and persists it.
	AddTask(ctx context.Context, input AddTaskInput) (AddTaskOutput, error)

	// ToggleDone flips active ⇄ done. A snoozed task toggles straight to
	// done, dropping its snooze pointer.
	ToggleDone(ctx context.Context, input ToggleTaskInput) ToggleTaskOutput

	// SnoozeTask marks the task snoozed until dateKey + max(1, Days) days.
	SnoozeTask(ctx context.Context, input SnoozeTaskInput) SnoozeTaskOutput

	// RemoveTask deletes the task from its bucket; absent ids are a no-op.
	RemoveTask(ctx context.Context, input RemoveTaskInput) RemoveTaskOutput

	// CountsForToday summarizes today's bucket: total tasks saved, and
	// tasks deferred (snoozed, or carrying a future snooze pointer).
	CountsForToday(ctx context.Context) model.DailyCounts

	// ItemsWithinDays returns planner items dated within the last n days
	// up to today. Malformed dates are excluded silently.
	ItemsWithinDays(ctx context.Context, days int) []model.PlannerItem

	// AddItem appends a planner entry to the flat list.
	AddItem(ctx context.Context, input AddItemInput) (AddItemOutput, error)

	// ToggleItemDone flips a planner item's done flag.
	ToggleItemDone(ctx context.Context, id string) ToggleItemOutput
}
