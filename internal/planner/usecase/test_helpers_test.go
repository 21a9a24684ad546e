package usecase_test

import (
	"context"
	"errors"
	"time"

	"weekly-planner/internal/planner/repository/kv"
	"weekly-planner/pkg/clock"
	"weekly-planner/pkg/kvstore"
)

// mock dependencies

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

// failStore reads like a normal store but refuses every write.
type failStore struct {
	inner kvstore.Store
}

func (f *failStore) Get(key string) ([]byte, bool) { return f.inner.Get(key) }
func (f *failStore) Set(key string, value []byte) error {
	return errors.New("disk full")
}

// fixedNow is Wednesday 2024-05-15 under UTC-3.
var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestRepo() *kv.Repository {
	return kv.New(kvstore.NewMemory(), &mockLogger{})
}

func fixedClock() clock.Clock {
	return clock.Fixed(fixedNow)
}
