package dataset

import "errors"

var (
	ErrDatasetNotFound     = errors.New("dataset not found")
	ErrEmptyDataset        = errors.New("dataset has no tasks")
	ErrMissingTaskID       = errors.New("task id is required")
	ErrDuplicateTaskID     = errors.New("duplicate task id")
	ErrReservedTaskID      = errors.New("task id must not start with \"group-\"")
	ErrCalendarUnavailable = errors.New("calendar import is not configured")
	ErrInvalidRange        = errors.New("invalid time range")
)
