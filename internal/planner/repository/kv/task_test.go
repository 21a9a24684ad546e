package kv_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"weekly-planner/internal/model"
	"weekly-planner/internal/planner/repository/kv"
	"weekly-planner/pkg/kvstore"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestGetBucketMissingKey(t *testing.T) {
	repo := kv.New(kvstore.NewMemory(), &mockLogger{})

	bucket := repo.GetBucket(context.Background(), "2024-05-15")
	if len(bucket) != 0 {
		t.Errorf("expected empty bucket, got %d items", len(bucket))
	}
}

func TestGetBucketMalformedRecord(t *testing.T) {
	store := kvstore.NewMemory()
	if err := store.Set("myday:2024-05-15", []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	repo := kv.New(store, &mockLogger{})
	bucket := repo.GetBucket(context.Background(), "2024-05-15")
	if len(bucket) != 0 {
		t.Errorf("malformed record should read as empty, got %d items", len(bucket))
	}
}

func TestUpdateBucketRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := kv.New(kvstore.NewMemory(), &mockLogger{})

	err := repo.UpdateBucket(ctx, "2024-05-15", func(b model.DayBucket) model.DayBucket {
		return append(b, model.TaskItem{ID: "t1", Title: "buy milk", Status: model.TaskStatusActive})
	})
	if err != nil {
		t.Fatalf("UpdateBucket: %v", err)
	}

	bucket := repo.GetBucket(ctx, "2024-05-15")
	if len(bucket) != 1 || bucket[0].ID != "t1" {
		t.Errorf("unexpected bucket after update: %+v", bucket)
	}

	// Other buckets stay untouched.
	if other := repo.GetBucket(ctx, "2024-05-16"); len(other) != 0 {
		t.Errorf("expected neighbor bucket empty, got %+v", other)
	}
}

func TestUpdateBucketSerializedPerKey(t *testing.T) {
	ctx := context.Background()
	repo := kv.New(kvstore.NewMemory(), &mockLogger{})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.UpdateBucket(ctx, "2024-05-15", func(b model.DayBucket) model.DayBucket {
				return append(b, model.TaskItem{ID: fmt.Sprintf("t%d", i)})
			})
		}(i)
	}
	wg.Wait()

	bucket := repo.GetBucket(ctx, "2024-05-15")
	if len(bucket) != n {
		t.Errorf("lost updates: got %d items, want %d", len(bucket), n)
	}
}

func TestGetBucketReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := kv.New(kvstore.NewMemory(), &mockLogger{})

	_ = repo.UpdateBucket(ctx, "2024-05-15", func(b model.DayBucket) model.DayBucket {
		return append(b, model.TaskItem{ID: "t1", Title: "original"})
	})

	first := repo.GetBucket(ctx, "2024-05-15")
	first[0].Title = "mutated"

	second := repo.GetBucket(ctx, "2024-05-15")
	if second[0].Title != "original" {
		t.Errorf("caller mutation leaked into cache: %+v", second[0])
	}
}

func TestPlannerItemsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := kv.New(kvstore.NewMemory(), &mockLogger{})

	if items := repo.ListItems(ctx); len(items) != 0 {
		t.Fatalf("expected empty list, got %+v", items)
	}

	err := repo.UpdateItems(ctx, func(items []model.PlannerItem) []model.PlannerItem {
		return append(items, model.PlannerItem{ID: "p1", Title: "dentist", Date: "2024-05-15"})
	})
	if err != nil {
		t.Fatalf("UpdateItems: %v", err)
	}

	items := repo.ListItems(ctx)
	if len(items) != 1 || items[0].ID != "p1" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestPlannerItemsMalformedRecord(t *testing.T) {
	store := kvstore.NewMemory()
	if err := store.Set("planner:items", []byte("[{broken")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	repo := kv.New(store, &mockLogger{})
	if items := repo.ListItems(context.Background()); len(items) != 0 {
		t.Errorf("malformed list should read as empty, got %+v", items)
	}
}
