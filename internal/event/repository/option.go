package repository

import "time"

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	WorkspaceID  string
	CreatedBy    string
	Title        string
	Start        time.Time
	End          time.Time
	Location     string
	Description  string
	Attendees    []string
	MemberIDs    []string
	RecurrenceID string
	RRule        string
}

// GetOneEventOptions filters a single Event. Non-empty fields are ANDed.
type GetOneEventOptions struct {
	ID          string
	WorkspaceID string
}

// ListEventsOptions selects events of a workspace overlapping [From, To).
// A zero bound is open.
type ListEventsOptions struct {
	WorkspaceID  string
	From         time.Time
	To           time.Time
	RecurrenceID string
}

// DeleteByRecurrenceOptions removes a batch's events starting at or after From.
type DeleteByRecurrenceOptions struct {
	WorkspaceID  string
	RecurrenceID string
	From         time.Time
}
