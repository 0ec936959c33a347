package event

import "errors"

var (
	ErrEmptyTitle        = errors.New("event title is empty")
	ErrInvalidRange      = errors.New("event end must be after start")
	ErrDurationTooLong   = errors.New("event is longer than 24 hours")
	ErrNotFound          = errors.New("event not found")
	ErrForbidden         = errors.New("event belongs to another workspace")
	ErrMissingWorkspace  = errors.New("workspace is required")
	ErrEmptyBatch        = errors.New("batch has no proposals")
	ErrMissingRecurrence = errors.New("recurrence id is required")
	ErrInvalidWindow     = errors.New("list window end must be after start")
)
