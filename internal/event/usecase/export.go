package usecase

import (
	"context"
	"strings"

	ics "github.com/arran4/golang-ical"

	"household-calendar/internal/event"
	"household-calendar/internal/model"
)

const (
	icsProductID        = "-//household-calendar//EN"
	icsPropRecurrenceID = ics.ComponentProperty("X-HOUSEHOLD-RECURRENCE-ID")
	icsPropMembers      = ics.ComponentProperty("X-HOUSEHOLD-MEMBERS")
)

// ExportICS renders the window as an iCalendar document. Stored batches are
// already expanded, so each occurrence is its own VEVENT.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope, input event.ListInput) ([]byte, error) {
	events, err := uc.List(ctx, sc, input)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	stamp := uc.now().UTC()
	for _, ev := range events {
		ve := cal.AddEvent(ev.ID)
		ve.SetDtStampTime(stamp)
		ve.SetCreatedTime(ev.CreatedAt)
		ve.SetModifiedAt(ev.UpdatedAt)
		ve.SetStartAt(ev.Start)
		ve.SetEndAt(ev.End)
		ve.SetSummary(ev.Title)
		if ev.Location != "" {
			ve.SetLocation(ev.Location)
		}
		if desc := describe(ev); desc != "" {
			ve.SetDescription(desc)
		}
		if ev.RecurrenceID != "" {
			ve.SetProperty(icsPropRecurrenceID, ev.RecurrenceID)
		}
		if len(ev.MemberIDs) > 0 {
			ve.SetProperty(icsPropMembers, strings.Join(ev.MemberIDs, ","))
		}
	}

	uc.l.Debugf(ctx, "event.usecase.ExportICS: workspace=%s events=%d", sc.WorkspaceID, len(events))
	return []byte(cal.Serialize()), nil
}

func describe(ev model.Event) string {
	if len(ev.Attendees) == 0 {
		return ev.Description
	}
	with := "With: " + strings.Join(ev.Attendees, ", ")
	if ev.Description == "" {
		return with
	}
	return ev.Description + "\n" + with
}
