package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"household-calendar/internal/extraction"
	"household-calendar/pkg/datemath"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// document is the wire shape the model must return. Pointer fields are
// required and distinguish "missing" from zero.
type document struct {
	Title           *string  `json:"title"`
	Date            *string  `json:"date"`
	StartHour       *int     `json:"start_hour"`
	StartMinute     *int     `json:"start_minute"`
	DurationMinutes *int     `json:"duration_minutes"`
	Location        string   `json:"location"`
	Attendees       []string `json:"attendees"`
	Description     string   `json:"description"`
	RecurringDays   []int    `json:"recurring_days"`
	RecurringWeeks  int      `json:"recurring_weeks"`
	AssignedMembers []string `json:"assigned_members"`
	Everyone        bool     `json:"everyone"`
}

// decodeDraft converts raw model text into a validated Draft. The date field
// is read in the caller's zone. Every failure wraps ErrUnusableShape.
func decodeDraft(text string, res *datemath.Resolver) (extraction.Draft, error) {
	var doc document
	dec := json.NewDecoder(bytes.NewReader([]byte(sanitizeJSONResponse(text))))
	if err := dec.Decode(&doc); err != nil {
		return extraction.Draft{}, fmt.Errorf("%w: %v", ErrUnusableShape, err)
	}
	return doc.toDraft(res)
}

func (doc document) toDraft(res *datemath.Resolver) (extraction.Draft, error) {
	switch {
	case doc.Title == nil || strings.TrimSpace(*doc.Title) == "":
		return extraction.Draft{}, fmt.Errorf("%w: title missing", ErrUnusableShape)
	case doc.Date == nil:
		return extraction.Draft{}, fmt.Errorf("%w: date missing", ErrUnusableShape)
	case doc.StartHour == nil || *doc.StartHour < 0 || *doc.StartHour > 23:
		return extraction.Draft{}, fmt.Errorf("%w: start_hour invalid", ErrUnusableShape)
	case doc.StartMinute != nil && (*doc.StartMinute < 0 || *doc.StartMinute > 59):
		return extraction.Draft{}, fmt.Errorf("%w: start_minute invalid", ErrUnusableShape)
	case doc.DurationMinutes == nil || *doc.DurationMinutes < 1 || *doc.DurationMinutes > maxDurationMinutes:
		return extraction.Draft{}, fmt.Errorf("%w: duration_minutes invalid", ErrUnusableShape)
	case doc.RecurringWeeks < 0:
		return extraction.Draft{}, fmt.Errorf("%w: recurring_weeks negative", ErrUnusableShape)
	}

	day, err := res.ParseDate(*doc.Date)
	if err != nil {
		return extraction.Draft{}, fmt.Errorf("%w: date: %v", ErrUnusableShape, err)
	}

	weekdays := make([]time.Weekday, 0, len(doc.RecurringDays))
	for _, d := range doc.RecurringDays {
		if d < 0 || d > 6 {
			return extraction.Draft{}, fmt.Errorf("%w: recurring day %d out of range", ErrUnusableShape, d)
		}
		weekdays = append(weekdays, time.Weekday(d))
	}

	minute := 0
	if doc.StartMinute != nil {
		minute = *doc.StartMinute
	}

	draft := extraction.Draft{
		Title:           strings.TrimSpace(*doc.Title),
		Date:            day,
		Start:           datemath.Clock{Hour: *doc.StartHour, Minute: minute},
		DurationMinutes: *doc.DurationMinutes,
		Location:        strings.TrimSpace(doc.Location),
		Description:     strings.TrimSpace(doc.Description),
		Attendees:       compact(doc.Attendees),
		WeekCount:       doc.RecurringWeeks,
		WeekCountSet:    doc.RecurringWeeks > 0,
		AssignedMembers: compact(doc.AssignedMembers),
		Everyone:        doc.Everyone,
	}
	if len(weekdays) > 0 {
		draft.Weekdays = datemath.SortWeekdays(weekdays)
	}
	return draft, nil
}

// sanitizeJSONResponse strips markdown fences and prose that models wrap
// around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
