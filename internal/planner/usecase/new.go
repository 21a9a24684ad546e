package usecase

import (
	"sync/atomic"

	"weekly-planner/internal/planner"
	"weekly-planner/internal/planner/repository"
	"weekly-planner/pkg/clock"
	pkgLog "weekly-planner/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock clock.Clock
	seq   atomic.Uint64 // monotonic part of generated ids
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates a new planner UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, clk clock.Clock) *implUseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		clock: clk,
	}
}
