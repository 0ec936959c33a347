package event

import (
	"time"

	"household-calendar/internal/model"
)

// MaxDuration is the longest event the store accepts.
const MaxDuration = 24 * time.Hour

type CreateInput struct {
	Proposal     model.EventProposal
	RecurrenceID string
	RRule        string
}

type BatchCreateInput struct {
	Proposals    []model.EventProposal
	RecurrenceID string
	RRule        string
}

// BatchFailure reports one rejected element of a batch.
type BatchFailure struct {
	Index int
	Err   error
}

type BatchCreateOutput struct {
	Created []model.Event
	Failed  []BatchFailure
}

// ListInput selects events overlapping [From, To).
type ListInput struct {
	From time.Time
	To   time.Time
}

type DeleteByRecurrenceInput struct {
	RecurrenceID string
	From         time.Time
}
