package recurrence

import (
	"sort"
	"time"

	"household-calendar/pkg/datemath"
)

// Expand materialises every occurrence of spec. For week w and weekday d the
// occurrence falls (d - anchor weekday + 7) mod 7 + 7w days after the anchor.
// The result is ordered by start time and holds WeekCount*len(Weekdays)
// entries once duplicate weekdays are dropped.
func Expand(spec Spec) ([]Occurrence, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	days := datemath.SortWeekdays(spec.Weekdays)
	anchor := datemath.DateOf(spec.Anchor)
	loc := spec.Anchor.Location()
	anchorWd := int(anchor.Weekday())

	out := make([]Occurrence, 0, spec.WeekCount*len(days))
	for w := 0; w < spec.WeekCount; w++ {
		for _, d := range days {
			offset := (int(d)-anchorWd+7)%7 + 7*w
			start := anchor.AddDays(offset).At(spec.Start, loc)
			out = append(out, Occurrence{Start: start, End: start.Add(spec.Duration)})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// AnchorDate returns the first day on or after ref whose weekday is selected.
// With no weekdays it returns ref.
func AnchorDate(ref datemath.Date, weekdays []time.Weekday) datemath.Date {
	if len(weekdays) == 0 {
		return ref
	}
	selected := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		selected[d] = true
	}
	for i := 0; i < 7; i++ {
		d := ref.AddDays(i)
		if selected[d.Weekday()] {
			return d
		}
	}
	return ref
}

// ClampWeeks bounds a requested week count to [1, max].
func ClampWeeks(n, max int) int {
	if n < 1 {
		return 1
	}
	if max > 0 && n > max {
		return max
	}
	return n
}

func (s Spec) validate() error {
	if len(s.Weekdays) == 0 {
		return ErrNoWeekdays
	}
	if s.WeekCount < 1 {
		return ErrNoWeeks
	}
	if s.Duration <= 0 {
		return ErrBadDuration
	}
	return nil
}
