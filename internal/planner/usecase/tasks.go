package usecase

import (
	"context"
	"strings"

	"weekly-planner/internal/model"
	"weekly-planner/internal/planner"
	"weekly-planner/pkg/dates"
)

// ListTasks returns the bucket's tasks in insertion order.
func (uc *implUseCase) ListTasks(ctx context.Context, dateKey string) []model.TaskItem {
	return uc.repo.GetBucket(ctx, uc.resolveDateKey(dateKey))
}

// AddTask appends a new active task to its day bucket and persists the
// whole bucket.
func (uc *implUseCase) AddTask(ctx context.Context, input planner.AddTaskInput) (planner.AddTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return planner.AddTaskOutput{}, planner.ErrEmptyTitle
	}

	kind := input.Kind
	if kind == "" {
		kind = model.TaskKindCustom
	}

	dateKey := uc.resolveDateKey(input.DateKey)
	item := model.TaskItem{
		ID:        uc.newID("t"),
		Title:     title,
		Kind:      kind,
		Status:    model.TaskStatusActive,
		CreatedAt: uc.clock.Now(),
	}

	err := uc.repo.UpdateBucket(ctx, dateKey, func(b model.DayBucket) model.DayBucket {
		return append(b, item)
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddTask: persist bucket %s: %v", dateKey, err)
		return planner.AddTaskOutput{DateKey: dateKey}, nil
	}

	uc.l.Infof(ctx, "uc.AddTask: added %s to %s", item.ID, dateKey)
	return planner.AddTaskOutput{OK: true, Task: item, DateKey: dateKey}, nil
}

// ToggleDone flips active ⇄ done. A snoozed task has no explicit un-snooze,
// so toggling it lands on done and drops the snooze pointer.
func (uc *implUseCase) ToggleDone(ctx context.Context, input planner.ToggleTaskInput) planner.ToggleTaskOutput {
	dateKey := uc.resolveDateKey(input.DateKey)
	out := planner.ToggleTaskOutput{DateKey: dateKey}

	err := uc.repo.UpdateBucket(ctx, dateKey, func(b model.DayBucket) model.DayBucket {
		for i := range b {
			if b[i].ID != input.TaskID {
				continue
			}
			if b[i].Status == model.TaskStatusDone {
				b[i].Status = model.TaskStatusActive
			} else {
				b[i].Status = model.TaskStatusDone
			}
			b[i].SnoozeUntil = ""
			out.OK = true
			out.Status = b[i].Status
			break
		}
		return b
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleDone: persist bucket %s: %v", dateKey, err)
		return planner.ToggleTaskOutput{DateKey: dateKey}
	}

	return out
}

// SnoozeTask defers the task to dateKey + max(1, Days) calendar days.
func (uc *implUseCase) SnoozeTask(ctx context.Context, input planner.SnoozeTaskInput) planner.SnoozeTaskOutput {
	dateKey := uc.resolveDateKey(input.DateKey)
	out := planner.SnoozeTaskOutput{DateKey: dateKey}

	days := input.Days
	if days < 1 {
		days = 1
	}

	until := dates.AddDays(dateKey, days)
	if until == "" {
		uc.l.Warnf(ctx, "uc.SnoozeTask: invalid date key %q", dateKey)
		return out
	}

	err := uc.repo.UpdateBucket(ctx, dateKey, func(b model.DayBucket) model.DayBucket {
		for i := range b {
			if b[i].ID != input.TaskID {
				continue
			}
			b[i].Status = model.TaskStatusSnoozed
			b[i].SnoozeUntil = until
			out.OK = true
			out.SnoozeUntil = until
			break
		}
		return b
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SnoozeTask: persist bucket %s: %v", dateKey, err)
		return planner.SnoozeTaskOutput{DateKey: dateKey}
	}

	return out
}

// RemoveTask deletes the task from its bucket. An absent id is a no-op
// success: the bucket is re-persisted unchanged.
func (uc *implUseCase) RemoveTask(ctx context.Context, input planner.RemoveTaskInput) planner.RemoveTaskOutput {
	dateKey := uc.resolveDateKey(input.DateKey)

	err := uc.repo.UpdateBucket(ctx, dateKey, func(b model.DayBucket) model.DayBucket {
		out := b[:0]
		for _, item := range b {
			if item.ID != input.TaskID {
				out = append(out, item)
			}
		}
		return out
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveTask: persist bucket %s: %v", dateKey, err)
		return planner.RemoveTaskOutput{DateKey: dateKey}
	}

	return planner.RemoveTaskOutput{OK: true, DateKey: dateKey}
}
