package repository

import (
	"context"

	"weekly-planner/internal/model"
)

// Repository is the composed interface for the planner domain data store.
type Repository interface {
	TaskRepository
	PlannerRepository
}

// TaskRepository is day-bucket storage. GetBucket is tolerant: a missing
// key or malformed record reads as an empty bucket. UpdateBucket runs a
// read-modify-write cycle serialized per date key, so concurrent updates on
// the same bucket cannot lose writes; distinct keys proceed independently.
type TaskRepository interface {
	GetBucket(ctx context.Context, dateKey string) model.DayBucket
	UpdateBucket(ctx context.Context, dateKey string, mutate func(model.DayBucket) model.DayBucket) error
}

// PlannerRepository is flat-list storage for planner items, with the same
// tolerant-read and serialized-update contract.
type PlannerRepository interface {
	ListItems(ctx context.Context) []model.PlannerItem
	UpdateItems(ctx context.Context, mutate func([]model.PlannerItem) []model.PlannerItem) error
}
