package datemath_test

import (
	"reflect"
	"testing"
	"time"

	"household-calendar/pkg/datemath"
)

// Monday 2024-01-01 10:00 at UTC+8.
func newTestResolver() *datemath.Resolver {
	return datemath.NewResolver(time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC), 480)
}

func TestResolveClock(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart datemath.Clock
		wantEnd   *datemath.Clock
		source    datemath.ClockSource
	}{
		{name: "explicit range", text: "preschool m-f 9am-4pm", wantStart: datemath.Clock{Hour: 9}, wantEnd: &datemath.Clock{Hour: 16}, source: datemath.ClockRange},
		{name: "range borrows pm", text: "party 2-4pm", wantStart: datemath.Clock{Hour: 14}, wantEnd: &datemath.Clock{Hour: 16}, source: datemath.ClockRange},
		{name: "range borrows am when pm would invert", text: "class 9-4pm", wantStart: datemath.Clock{Hour: 9}, wantEnd: &datemath.Clock{Hour: 16}, source: datemath.ClockRange},
		{name: "range with minutes", text: "practice 9:30-4", wantStart: datemath.Clock{Hour: 9, Minute: 30}, wantEnd: &datemath.Clock{Hour: 16}, source: datemath.ClockRange},
		{name: "range with from", text: "meeting from 2 to 3", wantStart: datemath.Clock{Hour: 14}, wantEnd: &datemath.Clock{Hour: 15}, source: datemath.ClockRange},
		{name: "bare range is not a time", text: "soccer 2-3", wantStart: datemath.Clock{}, source: datemath.ClockNone},
		{name: "meridiem", text: "dentist 2pm", wantStart: datemath.Clock{Hour: 14}, source: datemath.ClockSingle},
		{name: "twelve am", text: "feed baby 12am", wantStart: datemath.Clock{Hour: 0}, source: datemath.ClockSingle},
		{name: "colon", text: "sync 10:15", wantStart: datemath.Clock{Hour: 10, Minute: 15}, source: datemath.ClockSingle},
		{name: "at bare small number is pm", text: "lunch at 1", wantStart: datemath.Clock{Hour: 13}, source: datemath.ClockSingle},
		{name: "at bare large number stays", text: "gym at 8", wantStart: datemath.Clock{Hour: 8}, source: datemath.ClockSingle},
		{name: "day word number", text: "coffee with george tomorrow 3", wantStart: datemath.Clock{Hour: 15}, source: datemath.ClockSingle},
		{name: "tonight number", text: "movie tonight 8", wantStart: datemath.Clock{Hour: 20}, source: datemath.ClockSingle},
		{name: "tonight at number", text: "dinner tonight at 8", wantStart: datemath.Clock{Hour: 20}, source: datemath.ClockSingle},
		{name: "tonight at colon", text: "movie tonight at 8:30", wantStart: datemath.Clock{Hour: 20, Minute: 30}, source: datemath.ClockSingle},
		{name: "evening at number", text: "recital friday evening at 7", wantStart: datemath.Clock{Hour: 19}, source: datemath.ClockSingle},
		{name: "tonight keeps meridiem", text: "flight tonight at 11am", wantStart: datemath.Clock{Hour: 11}, source: datemath.ClockSingle},
		{name: "week count is not a time", text: "swim for 8 weeks", wantStart: datemath.Clock{}, source: datemath.ClockNone},
		{name: "part of day", text: "walk in the morning", wantStart: datemath.Clock{Hour: 9}, source: datemath.ClockPartOfDay},
		{name: "noon", text: "lunch at noon", wantStart: datemath.Clock{Hour: 12}, source: datemath.ClockPartOfDay},
		{name: "tonight", text: "dinner tonight", wantStart: datemath.Clock{Hour: 19}, source: datemath.ClockPartOfDay},
		{name: "explicit time beats part of day", text: "tomorrow morning at 7:30", wantStart: datemath.Clock{Hour: 7, Minute: 30}, source: datemath.ClockSingle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ResolveClock(tt.text)
			if got.Source != tt.source {
				t.Fatalf("ResolveClock(%q) source = %v, want %v", tt.text, got.Source, tt.source)
			}
			if got.Start != tt.wantStart {
				t.Errorf("ResolveClock(%q) start = %+v, want %+v", tt.text, got.Start, tt.wantStart)
			}
			if !reflect.DeepEqual(got.End, tt.wantEnd) {
				t.Errorf("ResolveClock(%q) end = %+v, want %+v", tt.text, got.End, tt.wantEnd)
			}
		})
	}
}

func TestClockResult_RangeMinutes(t *testing.T) {
	r := datemath.ResolveClock("9am-4pm")
	if got, ok := r.RangeMinutes(); !ok || got != 420 {
		t.Errorf("RangeMinutes() = %d, %v; want 420, true", got, ok)
	}

	overnight := datemath.ClockResult{Start: datemath.Clock{Hour: 22}, End: &datemath.Clock{Hour: 1}, Source: datemath.ClockRange}
	if got, _ := overnight.RangeMinutes(); got != 180 {
		t.Errorf("overnight RangeMinutes() = %d, want 180", got)
	}

	if _, ok := datemath.ResolveClock("at 3").RangeMinutes(); ok {
		t.Error("single time must not report a range")
	}
}

func TestResolver_ResolveDate(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name      string
		text      string
		start     datemath.Clock
		want      string
		wantFound bool
	}{
		{name: "tomorrow", text: "coffee with george tomorrow 3", start: datemath.Clock{Hour: 15}, want: "2024-01-02", wantFound: true},
		{name: "day after tomorrow", text: "dinner day after tomorrow", start: datemath.Clock{Hour: 18}, want: "2024-01-03", wantFound: true},
		{name: "today", text: "gym today at 5", start: datemath.Clock{Hour: 17}, want: "2024-01-01", wantFound: true},
		{name: "weekday later this week", text: "dentist thursday 2pm", start: datemath.Clock{Hour: 14}, want: "2024-01-04", wantFound: true},
		{name: "abbreviated weekday", text: "lunch fri", start: datemath.Clock{Hour: 12}, want: "2024-01-05", wantFound: true},
		{name: "same weekday still ahead", text: "sync monday 3pm", start: datemath.Clock{Hour: 15}, want: "2024-01-01", wantFound: true},
		{name: "same weekday already passed", text: "sync monday 9am", start: datemath.Clock{Hour: 9}, want: "2024-01-08", wantFound: true},
		{name: "next weekday is strictly after today", text: "next monday", start: datemath.Clock{Hour: 15}, want: "2024-01-08", wantFound: true},
		{name: "in n days", text: "haircut in 3 days", start: datemath.Clock{Hour: 12}, want: "2024-01-04", wantFound: true},
		{name: "recurring range does not move the date", text: "preschool monday to friday 9am-4pm", start: datemath.Clock{Hour: 9}, want: "2024-01-01", wantFound: false},
		{name: "nothing", text: "call mom", start: datemath.Clock{Hour: 12}, want: "2024-01-01", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := r.ResolveDate(tt.text, tt.start)
			if got.String() != tt.want || found != tt.wantFound {
				t.Errorf("ResolveDate(%q) = %s, %v; want %s, %v", tt.text, got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestResolveWeekdays(t *testing.T) {
	weekdays := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

	tests := []struct {
		name string
		text string
		want []time.Weekday
	}{
		{name: "abbreviated range", text: "ellie preschool laurel hill m-f 9am-4pm for 8 weeks", want: weekdays},
		{name: "full range", text: "preschool monday to friday", want: weekdays},
		{name: "mixed abbreviations", text: "class mon-fri", want: weekdays},
		{name: "weekdays", text: "standup weekdays at 9", want: weekdays},
		{name: "every day", text: "walk the dog every day", want: []time.Weekday{0, 1, 2, 3, 4, 5, 6}},
		{name: "weekends", text: "brunch weekends", want: []time.Weekday{time.Sunday, time.Saturday}},
		{name: "wrapping range", text: "camp fri-mon", want: []time.Weekday{time.Sunday, time.Monday, time.Friday, time.Saturday}},
		{name: "every list", text: "swim every tuesday and thursday", want: []time.Weekday{time.Tuesday, time.Thursday}},
		{name: "plural", text: "piano lessons on wednesdays", want: []time.Weekday{time.Wednesday}},
		{name: "single day is not recurring", text: "dentist thursday", want: nil},
		{name: "hyphen chain", text: "swim m-w-f 4pm", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{name: "slash chain", text: "tutoring mon/wed/fri", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{name: "slash pair", text: "piano tu/th 5pm", want: []time.Weekday{time.Tuesday, time.Thursday}},
		{name: "w slash is with", text: "coffee w/ mom tomorrow", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ResolveWeekdays(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveWeekdays(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveWeekCount(t *testing.T) {
	tests := []struct {
		text      string
		want      int
		wantFound bool
	}{
		{text: "for 8 weeks", want: 8, wantFound: true},
		{text: "for three weeks", want: 3, wantFound: true},
		{text: "for a week", want: 1, wantFound: true},
		{text: "for 0 weeks", want: 0, wantFound: true},
		{text: "every monday", want: 0, wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, found := datemath.ResolveWeekCount(tt.text)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("ResolveWeekCount(%q) = %d, %v; want %d, %v", tt.text, got, found, tt.want, tt.wantFound)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "coffee with george tomorrow 3", want: "coffee with george"},
		{text: "ellie preschool laurel hill m-f 9am-4pm for 8 weeks", want: "ellie preschool laurel hill"},
		{text: "dentist 2pm", want: "dentist"},
		{text: "lunch at noon on friday", want: "lunch"},
		{text: "soccer practice every tuesday and thursday at 4pm", want: "soccer practice"},
		{text: "yoga this morning", want: "yoga"},
		{text: "dinner at olive garden tomorrow at 7pm", want: "dinner at olive garden"},
		{text: "swim m-w-f 4pm", want: "swim"},
		{text: "piano on tu/th at 5pm", want: "piano"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := datemath.Strip(tt.text); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWeekdayByName(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Weekday
		wantOK bool
	}{
		{"Monday", time.Monday, true},
		{"thurs", time.Thursday, true},
		{" sa ", time.Saturday, true},
		{"someday", 0, false},
	}
	for _, tt := range tests {
		got, ok := datemath.WeekdayByName(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("WeekdayByName(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
