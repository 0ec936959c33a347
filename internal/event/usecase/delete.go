package usecase

import (
	"context"
	"strings"

	"household-calendar/internal/event"
	"household-calendar/internal/event/repository"
	"household-calendar/internal/model"
)

// Delete removes one event owned by the caller's workspace.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := validateScope(sc); err != nil {
		return err
	}

	ev, err := uc.repo.GetOneEvent(ctx, repository.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete.GetOneEvent: id=%s: %v", id, err)
		return err
	}
	if ev.ID == "" {
		return event.ErrNotFound
	}
	if ev.WorkspaceID != sc.WorkspaceID {
		uc.l.Warnf(ctx, "event.usecase.Delete: workspace=%s tried to delete event of workspace=%s", sc.WorkspaceID, ev.WorkspaceID)
		return event.ErrForbidden
	}

	if err := uc.repo.DeleteEvent(ctx, id); err != nil {
		uc.l.Errorf(ctx, "event.usecase.Delete: id=%s: %v", id, err)
		return err
	}
	return nil
}

// DeleteByRecurrence removes the batch's events starting at or after From.
// A zero From removes the whole batch.
func (uc *implUseCase) DeleteByRecurrence(ctx context.Context, sc model.Scope, input event.DeleteByRecurrenceInput) (int64, error) {
	if err := validateScope(sc); err != nil {
		return 0, err
	}
	if strings.TrimSpace(input.RecurrenceID) == "" {
		return 0, event.ErrMissingRecurrence
	}

	n, err := uc.repo.DeleteEventsByRecurrence(ctx, repository.DeleteByRecurrenceOptions{
		WorkspaceID:  sc.WorkspaceID,
		RecurrenceID: input.RecurrenceID,
		From:         input.From,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.DeleteByRecurrence: recurrence=%s: %v", input.RecurrenceID, err)
		return 0, err
	}

	uc.l.Infof(ctx, "event.usecase.DeleteByRecurrence: workspace=%s recurrence=%s deleted=%d", sc.WorkspaceID, input.RecurrenceID, n)
	return n, nil
}
