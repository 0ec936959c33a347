package recurrence

import "errors"

var (
	ErrNoWeekdays  = errors.New("recurrence: no weekdays selected")
	ErrNoWeeks     = errors.New("recurrence: week count must be positive")
	ErrBadDuration = errors.New("recurrence: duration must be positive")
)
