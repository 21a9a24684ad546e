package usecase_test

import (
	"context"
	"testing"

	"weekly-planner/internal/model"
	"weekly-planner/internal/planner/usecase"
)

func TestCountsForTodayEmpty(t *testing.T) {
	uc := usecase.New(&mockLogger{}, newTestRepo(), fixedClock())

	counts := uc.CountsForToday(context.Background())
	if counts.SavedToday != 0 || counts.LaterToday != 0 {
		t.Errorf("counts = %+v, want {0 0}", counts)
	}
}

func TestCountsForToday(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	uc := usecase.New(&mockLogger{}, repo, fixedClock())

	// Seed today's bucket with every status combination, including the
	// drift case where status and snooze pointer disagree.
	err := repo.UpdateBucket(ctx, today, func(b model.DayBucket) model.DayBucket {
		return model.DayBucket{
			{ID: "t1", Status: model.TaskStatusActive},
			{ID: "t2", Status: model.TaskStatusDone},
			{ID: "t3", Status: model.TaskStatusSnoozed, SnoozeUntil: "2024-05-16"},
			// Drift: status says active but the pointer names tomorrow.
			// The future pointer alone marks it deferred.
			{ID: "t4", Status: model.TaskStatusActive, SnoozeUntil: "2024-05-16"},
			// Pointer at today is not strictly greater: not deferred.
			{ID: "t5", Status: model.TaskStatusActive, SnoozeUntil: "2024-05-15"},
		}
	})
	if err != nil {
		t.Fatalf("seed bucket: %v", err)
	}

	counts := uc.CountsForToday(ctx)
	if counts.SavedToday != 5 {
		t.Errorf("SavedToday = %d, want 5", counts.SavedToday)
	}
	if counts.LaterToday != 2 {
		t.Errorf("LaterToday = %d, want 2 (snoozed + drifted future pointer)", counts.LaterToday)
	}
}

func TestCountsForTodayIgnoresOtherBuckets(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()
	uc := usecase.New(&mockLogger{}, repo, fixedClock())

	err := repo.UpdateBucket(ctx, "2024-05-14", func(b model.DayBucket) model.DayBucket {
		return model.DayBucket{{ID: "y1", Status: model.TaskStatusSnoozed, SnoozeUntil: "2024-05-16"}}
	})
	if err != nil {
		t.Fatalf("seed bucket: %v", err)
	}

	counts := uc.CountsForToday(ctx)
	if counts.SavedToday != 0 || counts.LaterToday != 0 {
		t.Errorf("counts = %+v, want {0 0}: yesterday's bucket is out of scope", counts)
	}
}
