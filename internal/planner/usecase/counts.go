package usecase

import (
	"context"

	"weekly-planner/internal/model"
)

// CountsForToday summarizes today's bucket. SavedToday counts every task in
// the bucket regardless of status. LaterToday counts a task as deferred when
// its status says snoozed OR its snooze pointer names a day after today:
// the two fields can drift apart under concurrent edits, and a future
// pointer is sufficient evidence of deferral on its own.
func (uc *implUseCase) CountsForToday(ctx context.Context) model.DailyCounts {
	today := uc.todayKey()
	bucket := uc.repo.GetBucket(ctx, today)

	counts := model.DailyCounts{SavedToday: len(bucket)}
	for _, item := range bucket {
		if item.Status == model.TaskStatusSnoozed || (item.SnoozeUntil != "" && item.SnoozeUntil > today) {
			counts.LaterToday++
		}
	}
	return counts
}
