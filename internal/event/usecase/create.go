package usecase

import (
	"context"
	"strings"

	"household-calendar/internal/event"
	"household-calendar/internal/event/repository"
	"household-calendar/internal/model"
)

// Create validates and stores one confirmed proposal.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (model.Event, error) {
	if err := validateScope(sc); err != nil {
		return model.Event{}, err
	}
	if err := validateProposal(input.Proposal); err != nil {
		return model.Event{}, err
	}

	ev, err := uc.repo.CreateEvent(ctx, createOptions(sc, input.Proposal, input.RecurrenceID, input.RRule))
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Create: workspace=%s: %v", sc.WorkspaceID, err)
		return model.Event{}, err
	}

	// A lone occurrence is mirrored as itself even when it came from a batch.
	single := ev
	single.RRule = ""
	uc.mirrorAll(ctx, []model.Event{single})

	uc.l.Infof(ctx, "event.usecase.Create: workspace=%s id=%s", sc.WorkspaceID, ev.ID)
	return ev, nil
}

// BatchCreate stores each proposal independently. An invalid or failed
// element is reported in Failed and does not stop the others.
func (uc *implUseCase) BatchCreate(ctx context.Context, sc model.Scope, input event.BatchCreateInput) (event.BatchCreateOutput, error) {
	if err := validateScope(sc); err != nil {
		return event.BatchCreateOutput{}, err
	}
	if len(input.Proposals) == 0 {
		return event.BatchCreateOutput{}, event.ErrEmptyBatch
	}
	if len(input.Proposals) > 1 && strings.TrimSpace(input.RecurrenceID) == "" {
		return event.BatchCreateOutput{}, event.ErrMissingRecurrence
	}

	var out event.BatchCreateOutput
	for i, p := range input.Proposals {
		if err := validateProposal(p); err != nil {
			out.Failed = append(out.Failed, event.BatchFailure{Index: i, Err: err})
			continue
		}
		ev, err := uc.repo.CreateEvent(ctx, createOptions(sc, p, input.RecurrenceID, input.RRule))
		if err != nil {
			out.Failed = append(out.Failed, event.BatchFailure{Index: i, Err: err})
			continue
		}
		out.Created = append(out.Created, ev)
	}

	uc.mirrorBatch(ctx, out.Created, len(input.Proposals), input.RRule)

	if len(out.Failed) > 0 {
		uc.l.Warnf(ctx, "event.usecase.BatchCreate: workspace=%s recurrence=%s created=%d failed=%d",
			sc.WorkspaceID, input.RecurrenceID, len(out.Created), len(out.Failed))
	} else {
		uc.l.Infof(ctx, "event.usecase.BatchCreate: workspace=%s recurrence=%s created=%d",
			sc.WorkspaceID, input.RecurrenceID, len(out.Created))
	}
	return out, nil
}

func createOptions(sc model.Scope, p model.EventProposal, recurrenceID, rrule string) repository.CreateEventOptions {
	return repository.CreateEventOptions{
		WorkspaceID:  sc.WorkspaceID,
		CreatedBy:    sc.UserID,
		Title:        strings.TrimSpace(p.Title),
		Start:        p.Start.UTC(),
		End:          p.End.UTC(),
		Location:     p.Location,
		Description:  p.Description,
		Attendees:    p.Attendees,
		MemberIDs:    p.MemberIDs,
		RecurrenceID: recurrenceID,
		RRule:        rrule,
	}
}
