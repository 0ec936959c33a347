package http

import (
	"time"

	"household-calendar/internal/event"
	"household-calendar/internal/model"
)

const exportFileName = "household.ics"

// --- Request DTOs ---

type proposalReq struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	Location    string    `json:"location" binding:"max=255"`
	Description string    `json:"description" binding:"max=2000"`
	Attendees   []string  `json:"attendees"`
	MemberIDs   []string  `json:"memberIds"`
}

func (r proposalReq) toProposal() model.EventProposal {
	return model.EventProposal{
		Title:       r.Title,
		Start:       r.Start.UTC(),
		End:         r.End.UTC(),
		Location:    r.Location,
		Description: r.Description,
		Attendees:   r.Attendees,
		MemberIDs:   r.MemberIDs,
	}
}

type createReq struct {
	Proposal     proposalReq `json:"proposal" binding:"required"`
	RecurrenceID string      `json:"recurrenceId"`
	RRule        string      `json:"rrule"`
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{
		Proposal:     r.Proposal.toProposal(),
		RecurrenceID: r.RecurrenceID,
		RRule:        r.RRule,
	}
}

// ---

type batchCreateReq struct {
	Proposals    []proposalReq `json:"proposals" binding:"required,min=1,max=400,dive"`
	RecurrenceID string        `json:"recurrenceId"`
	RRule        string        `json:"rrule"`
}

func (r batchCreateReq) toInput() event.BatchCreateInput {
	ps := make([]model.EventProposal, len(r.Proposals))
	for i, p := range r.Proposals {
		ps[i] = p.toProposal()
	}
	return event.BatchCreateInput{
		Proposals:    ps,
		RecurrenceID: r.RecurrenceID,
		RRule:        r.RRule,
	}
}

// ---

type listReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (r listReq) toInput() (event.ListInput, error) {
	var in event.ListInput
	var err error
	if r.From != "" {
		if in.From, err = time.Parse(time.RFC3339, r.From); err != nil {
			return in, errInvalidTime
		}
	}
	if r.To != "" {
		if in.To, err = time.Parse(time.RFC3339, r.To); err != nil {
			return in, errInvalidTime
		}
	}
	return in, nil
}

// ---

type deleteByRecurrenceReq struct {
	RecurrenceID string `uri:"recurrenceId" binding:"required"`
	From         string `form:"from"`
}

func (r deleteByRecurrenceReq) toInput() (event.DeleteByRecurrenceInput, error) {
	in := event.DeleteByRecurrenceInput{RecurrenceID: r.RecurrenceID}
	if r.From != "" {
		from, err := time.Parse(time.RFC3339, r.From)
		if err != nil {
			return in, errInvalidTime
		}
		in.From = from
	}
	return in, nil
}

// --- Response DTOs ---

type eventResp struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	Attendees    []string  `json:"attendees,omitempty"`
	MemberIDs    []string  `json:"memberIds,omitempty"`
	RecurrenceID string    `json:"recurrenceId,omitempty"`
	RRule        string    `json:"rrule,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:           ev.ID,
		Title:        ev.Title,
		Start:        ev.Start.UTC(),
		End:          ev.End.UTC(),
		Location:     ev.Location,
		Description:  ev.Description,
		Attendees:    ev.Attendees,
		MemberIDs:    ev.MemberIDs,
		RecurrenceID: ev.RecurrenceID,
		RRule:        ev.RRule,
		CreatedBy:    ev.CreatedBy,
		CreatedAt:    ev.CreatedAt,
	}
}

type createResp struct {
	Event eventResp `json:"event"`
}

type failureResp struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type batchCreateResp struct {
	Created []eventResp   `json:"created"`
	Failed  []failureResp `json:"failed"`
}

func (h *handler) newBatchCreateResp(out event.BatchCreateOutput) batchCreateResp {
	resp := batchCreateResp{
		Created: make([]eventResp, len(out.Created)),
		Failed:  make([]failureResp, len(out.Failed)),
	}
	for i, ev := range out.Created {
		resp.Created[i] = newEventResp(ev)
	}
	for i, f := range out.Failed {
		resp.Failed[i] = failureResp{Index: f.Index, Error: f.Err.Error()}
	}
	return resp
}

type listResp struct {
	Events []eventResp `json:"events"`
}

func (h *handler) newListResp(events []model.Event) listResp {
	resp := listResp{Events: make([]eventResp, len(events))}
	for i, ev := range events {
		resp.Events[i] = newEventResp(ev)
	}
	return resp
}

type deleteResp struct {
	Deleted int64 `json:"deleted"`
}
