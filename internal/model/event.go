package model

import "time"

// EventProposal is an unsaved, fully specified candidate event. Start and
// End are UTC and End is always after Start.
type EventProposal struct {
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	// Attendees are free-text names that did not match a household member.
	Attendees []string
	MemberIDs []string
}

// Duration returns End - Start.
func (p EventProposal) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Event is a persisted calendar entry owned by a workspace.
type Event struct {
	ID          string
	WorkspaceID string
	CreatedBy   string
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	Attendees   []string
	MemberIDs   []string
	// RecurrenceID groups the events created from one recurring request.
	RecurrenceID string
	RRule        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Proposal returns the draft view of a stored event.
func (e Event) Proposal() EventProposal {
	return EventProposal{
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Location:    e.Location,
		Description: e.Description,
		Attendees:   e.Attendees,
		MemberIDs:   e.MemberIDs,
	}
}
