package usecase

import (
	"fmt"
	"strings"
	"time"

	"household-calendar/internal/extraction/parser"
	"household-calendar/internal/model"
	"household-calendar/pkg/datemath"
)

// singleMessage renders "Coffee · Tue 1/2 · 3:00 PM–3:30 PM (30 min) · 📍 Cafe".
func singleMessage(p model.EventProposal, loc *time.Location) string {
	start, end := p.Start.In(loc), p.End.In(loc)
	parts := []string{
		p.Title,
		start.Format(dayLayout),
		fmt.Sprintf("%s (%s)", timeSpan(start, end), parser.FormatDuration(int(p.Duration().Minutes()))),
	}
	if p.Location != "" {
		parts = append(parts, "📍 "+p.Location)
	}
	return strings.Join(parts, " · ")
}

// batchMessage renders "Preschool · Mon–Fri · 9:00 AM–4:00 PM · for 8 weeks (40 events)".
func batchMessage(first model.EventProposal, days []time.Weekday, weeks, total int, loc *time.Location) string {
	start, end := first.Start.In(loc), first.End.In(loc)
	unit, noun := "weeks", "events"
	if weeks == 1 {
		unit = "week"
	}
	if total == 1 {
		noun = "event"
	}
	parts := []string{
		first.Title,
		weekdayLabel(days),
		timeSpan(start, end),
		fmt.Sprintf("for %d %s (%d %s)", weeks, unit, total, noun),
	}
	if first.Location != "" {
		parts = append(parts, "📍 "+first.Location)
	}
	return strings.Join(parts, " · ")
}

func timeSpan(start, end time.Time) string {
	from := datemath.Clock{Hour: start.Hour(), Minute: start.Minute()}
	to := datemath.Clock{Hour: end.Hour(), Minute: end.Minute()}
	return from.Format12() + "–" + to.Format12()
}

// weekdayLabel names a sorted weekday set: "Every day", "Mon–Fri",
// "Every Tue" or "Mon, Wed, Fri".
func weekdayLabel(days []time.Weekday) string {
	switch {
	case len(days) == 7:
		return "Every day"
	case len(days) == 1:
		return "Every " + shortDay(days[0])
	case len(days) > 2 && contiguous(days):
		return shortDay(days[0]) + "–" + shortDay(days[len(days)-1])
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = shortDay(d)
	}
	return strings.Join(names, ", ")
}

func contiguous(days []time.Weekday) bool {
	for i := 1; i < len(days); i++ {
		if days[i] != days[i-1]+1 {
			return false
		}
	}
	return true
}

func shortDay(d time.Weekday) string {
	return d.String()[:3]
}
