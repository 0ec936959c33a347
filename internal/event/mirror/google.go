package mirror

import (
	"context"
	"fmt"

	"household-calendar/internal/event"
	"household-calendar/internal/model"
	"household-calendar/pkg/gcalendar"
	pkgLog "household-calendar/pkg/log"
)

// Private extended property keys written on mirrored entries.
const (
	PropEventID      = "household_event_id"
	PropWorkspaceID  = "household_workspace_id"
	PropRecurrenceID = "household_recurrence_id"
)

type googleMirror struct {
	l      pkgLog.Logger
	client *gcalendar.Client
}

// NewGoogle mirrors stored events into a Google Calendar.
func NewGoogle(l pkgLog.Logger, client *gcalendar.Client) event.CalendarMirror {
	return &googleMirror{l: l, client: client}
}

// Mirror creates the calendar entry for ev. An event carrying an RRule is
// created as a recurring series starting at ev.Start.
func (m *googleMirror) Mirror(ctx context.Context, ev model.Event) error {
	req := gcalendar.CreateEventRequest{
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		Private: map[string]string{
			PropEventID:     ev.ID,
			PropWorkspaceID: ev.WorkspaceID,
		},
	}
	if ev.RecurrenceID != "" {
		req.Private[PropRecurrenceID] = ev.RecurrenceID
	}
	if ev.RRule != "" {
		req.Recurrence = []string{"RRULE:" + ev.RRule}
	}

	created, err := m.client.CreateEvent(ctx, req)
	if err != nil {
		return fmt.Errorf("mirror event %s: %w", ev.ID, err)
	}
	m.l.Debugf(ctx, "event.mirror.Google: event=%s calendar_event=%s", ev.ID, created.ID)
	return nil
}
