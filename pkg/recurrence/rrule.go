package recurrence

import (
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"household-calendar/pkg/datemath"
)

var rruleWeekday = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// Rule builds the RFC 5545 rule equivalent to spec. DTSTART is the first
// occurrence so that calendar clients render the same set Expand produces.
func Rule(spec Spec) (*rrule.RRule, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	days := datemath.SortWeekdays(spec.Weekdays)
	byDay := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		byDay = append(byDay, rruleWeekday[d])
	}

	first := AnchorDate(datemath.DateOf(spec.Anchor), days).At(spec.Start, spec.Anchor.Location())
	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Count:     spec.WeekCount * len(days),
		Byweekday: byDay,
		Dtstart:   first,
	})
}

// RuleString renders spec as a bare "FREQ=WEEKLY;..." line without DTSTART,
// the form stored on batch events and sent to Google Calendar.
func RuleString(spec Spec) (string, error) {
	r, err := Rule(spec)
	if err != nil {
		return "", err
	}
	opt := r.OrigOptions
	opt.Dtstart = time.Time{}
	return strings.TrimPrefix(opt.RRuleString(), "RRULE:"), nil
}
