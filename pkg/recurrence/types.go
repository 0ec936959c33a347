package recurrence

import (
	"time"

	"household-calendar/pkg/datemath"
)

// Spec describes a weekly batch: the same start clock and duration on each
// selected weekday, for WeekCount consecutive weeks beginning at Anchor.
type Spec struct {
	// Anchor is the reference day. Only its date and location are used.
	Anchor    time.Time
	Weekdays  []time.Weekday
	WeekCount int
	Start     datemath.Clock
	Duration  time.Duration
}

// Occurrence is one concrete instance produced by Expand.
type Occurrence struct {
	Start time.Time
	End   time.Time
}
