package http

import "errors"

var (
	errMissingWeekStart = errors.New("weekStart is required")
	errInvalidWeekStart = errors.New("weekStart is not a valid date key")
	errMissingID        = errors.New("id is required")
)
