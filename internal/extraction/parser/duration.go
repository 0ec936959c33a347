package parser

import (
	"fmt"
	"math"

	"household-calendar/pkg/datemath"
)

// InferDuration returns the event length in minutes. An explicit clock range
// wins over every keyword.
func InferDuration(text string, clock datemath.ClockResult) int {
	if d, ok := clock.RangeMinutes(); ok {
		return d
	}
	for _, rule := range durationRules {
		if rule.re.MatchString(text) {
			return rule.minutes
		}
	}
	return DefaultDurationMinutes
}

// DefaultStart is the start clock used when the utterance names no time.
func DefaultStart(text string) datemath.Clock {
	for _, rule := range defaultStartRules {
		if rule.re.MatchString(text) {
			return rule.clock
		}
	}
	return datemath.ClockNoon
}

// FormatDuration renders minutes as "N min" below an hour and "Xhr" above,
// with one decimal only for fractional hours.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := float64(minutes) / 60
	if hours == math.Trunc(hours) {
		return fmt.Sprintf("%dhr", int(hours))
	}
	return fmt.Sprintf("%.1fhr", hours)
}
