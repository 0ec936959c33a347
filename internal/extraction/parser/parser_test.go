package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"household-calendar/internal/extraction/parser"
	"household-calendar/pkg/datemath"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want parser.Intent
	}{
		{text: "coffee with george tomorrow 3", want: parser.IntentCreate},
		{text: "ellie preschool laurel hill m-f 9am-4pm for 8 weeks", want: parser.IntentCreate},
		{text: "schedule haircut", want: parser.IntentCreate},
		{text: "pick up sam tomorrow at 3", want: parser.IntentCreate},
		{text: "cancel dentist tomorrow", want: parser.IntentDelete},
		{text: "delete all preschool events", want: parser.IntentDelete},
		{text: "what's on friday", want: parser.IntentQuery},
		{text: "do i have anything tomorrow", want: parser.IntentQuery},
		{text: "is the gym open?", want: parser.IntentQuery},
		{text: "hello there", want: parser.IntentUnknown},
		{text: "tomorrow", want: parser.IntentUnknown},
		{text: "   ", want: parser.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Classify(tt.text))
		})
	}
}

func TestInferDuration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "coffee with george tomorrow 3", want: 30},
		{text: "team sync at 10", want: 30},
		{text: "1:1 with manager", want: 30},
		{text: "dinner with the kids", want: 90},
		{text: "gym at 6", want: 60},
		{text: "dentist 2pm", want: 60},
		{text: "quick call with mom", want: 15},
		{text: "react workshop", want: 120},
		{text: "ellie preschool", want: 420},
		{text: "pick up dry cleaning", want: 60},
		{text: "standup 9am to 4pm", want: 420},
		{text: "coffee 2:30-3pm", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := parser.InferDuration(tt.text, datemath.ResolveClock(tt.text))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultStart(t *testing.T) {
	assert.Equal(t, datemath.Clock{Hour: 12}, parser.DefaultStart("lunch with sam"))
	assert.Equal(t, datemath.Clock{Hour: 18}, parser.DefaultStart("dinner at nonna's"))
	assert.Equal(t, datemath.Clock{Hour: 8}, parser.DefaultStart("breakfast meeting"))
	assert.Equal(t, datemath.ClockNoon, parser.DefaultStart("dentist"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "15 min", parser.FormatDuration(15))
	assert.Equal(t, "30 min", parser.FormatDuration(30))
	assert.Equal(t, "1hr", parser.FormatDuration(60))
	assert.Equal(t, "1.5hr", parser.FormatDuration(90))
	assert.Equal(t, "7hr", parser.FormatDuration(420))
	assert.Equal(t, "2.3hr", parser.FormatDuration(140))
}

func TestExtractAttributes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want parser.Attributes
	}{
		{
			name: "attendee kept in title",
			text: "coffee with george tomorrow 3",
			want: parser.Attributes{Title: "Coffee With George", Attendees: []string{"george"}},
		},
		{
			name: "location after event keyword",
			text: "ellie preschool laurel hill m-f 9am-4pm for 8 weeks",
			want: parser.Attributes{Title: "Ellie Preschool", Location: "Laurel Hill"},
		},
		{
			name: "explicit at location",
			text: "dinner at olive garden tomorrow at 7pm",
			want: parser.Attributes{Title: "Dinner", Location: "Olive Garden"},
		},
		{
			name: "at location followed by attendees",
			text: "add lunch at cafe rio with Sam and Priya friday",
			want: parser.Attributes{Title: "Lunch With Sam And Priya", Location: "Cafe Rio", Attendees: []string{"Sam", "Priya"}},
		},
		{
			name: "leading verb and article",
			text: "schedule a dentist appointment downtown thursday 2pm",
			want: parser.Attributes{Title: "Dentist Appointment", Location: "Downtown"},
		},
		{
			name: "recurrence tokens removed",
			text: "soccer practice every tuesday and thursday at 4pm",
			want: parser.Attributes{Title: "Soccer Practice"},
		},
		{
			name: "whole family flag",
			text: "pizza night for the whole family friday 6pm",
			want: parser.Attributes{Title: "Pizza Night", Everyone: true},
		},
		{
			name: "placeholder title",
			text: "add tomorrow at 3",
			want: parser.Attributes{Title: parser.PlaceholderTitle},
		},
		{
			name: "day chain is not a location",
			text: "swim m-w-f 4pm",
			want: parser.Attributes{Title: "Swim"},
		},
		{
			name: "call takes an object",
			text: "call mom tomorrow 5pm",
			want: parser.Attributes{Title: "Call Mom"},
		},
		{
			name: "run takes an object",
			text: "run errands saturday morning",
			want: parser.Attributes{Title: "Run Errands"},
		},
		{
			name: "long tail is not a location",
			text: "meeting about the budget for next quarter review",
			want: parser.Attributes{Title: "Meeting About The Budget For Next Quarter Review"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.ExtractAttributes(tt.text))
		})
	}
}

func TestExtractAttributes_LeftoverDayIsNotLocation(t *testing.T) {
	for _, text := range []string{"swim -f", "swim at fri", "gym ,"} {
		t.Run(text, func(t *testing.T) {
			assert.Empty(t, parser.ExtractAttributes(text).Location)
		})
	}
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Coffee With George", parser.TitleCase("coffee with george"))
	assert.Equal(t, "Ellie's NASA Camp", parser.TitleCase("ellie's NASA camp"))
	assert.Equal(t, "Éclair Tasting", parser.TitleCase("éclair tasting"))
}

func TestSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "cancel dentist tomorrow", want: "Dentist"},
		{in: "delete all preschool events", want: "Preschool"},
		{in: "what's on friday?", want: ""},
		{in: "when is soccer practice", want: "Soccer Practice"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.Subject(tt.in))
		})
	}
}
