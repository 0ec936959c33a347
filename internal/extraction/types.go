package extraction

import (
	"time"

	"household-calendar/internal/model"
	"household-calendar/pkg/datemath"
)

// Role of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one prior message of the conversation.
type Turn struct {
	Role    Role
	Content string
}

// Input is a single chat request.
type Input struct {
	Message string
	History []Turn
	// TZOffsetMinutes is added to UTC now to get the caller's local now.
	TZOffsetMinutes int
	Members         []model.Member
	CurrentUserName string
	// Now overrides the wall clock. Zero means time.Now().
	Now time.Time
}

// OutputType tags the Output union.
type OutputType string

const (
	TypeMessage      OutputType = "message"
	TypeCreateEvent  OutputType = "create_event"
	TypeCreateEvents OutputType = "create_events"
)

// Source records which path produced the proposals.
type Source string

const (
	SourceNone          Source = ""
	SourceRemote        Source = "remote"
	SourceDeterministic Source = "deterministic"
)

// Output is the result of Extract. Proposal is set for both create types;
// for a batch it is the first element of Proposals.
type Output struct {
	Type         OutputType
	Message      string
	Proposal     *model.EventProposal
	Proposals    []model.EventProposal
	RecurrenceID string
	// RRule is the weekly rule of a batch, without DTSTART.
	RRule  string
	Source Source
}

// Draft is the path-independent description of what the user asked for,
// before it is stamped onto absolute instants. Both extractors produce it.
type Draft struct {
	Title           string
	Date            datemath.Date
	Start           datemath.Clock
	DurationMinutes int
	Location        string
	Description     string
	Attendees       []string
	// Weekdays is non-empty for a recurring request.
	Weekdays []time.Weekday
	// WeekCount is meaningful only when WeekCountSet is true.
	WeekCount    int
	WeekCountSet bool
	// AssignedMembers are roster names the extractor picked explicitly.
	AssignedMembers []string
	Everyone        bool
}

// Recurring reports whether the draft describes a weekly batch.
func (d Draft) Recurring() bool {
	return len(d.Weekdays) > 0
}
