package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyTitle  = errors.New("title is empty")
	ErrInvalidDate = errors.New("invalid date key")
)
