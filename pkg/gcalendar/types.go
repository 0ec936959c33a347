package gcalendar

import "time"

// Config locates credentials. TokenPath is only read for OAuth desktop
// credentials; service accounts need no token.
type Config struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	// Timezone is an IANA name; empty keeps the offset embedded in StartTime.
	Timezone string
	// Recurrence holds RFC 5545 lines, e.g. "RRULE:FREQ=WEEKLY;COUNT=8;BYDAY=TU".
	Recurrence []string
	// Private is stored as private extended properties on the event.
	Private map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
}
