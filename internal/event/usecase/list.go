package usecase

import (
	"context"

	"household-calendar/internal/event"
	"household-calendar/internal/event/repository"
	"household-calendar/internal/model"
)

// List returns the workspace's events overlapping the window.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) ([]model.Event, error) {
	if err := validateScope(sc); err != nil {
		return nil, err
	}
	if !input.From.IsZero() && !input.To.IsZero() && !input.To.After(input.From) {
		return nil, event.ErrInvalidWindow
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		WorkspaceID: sc.WorkspaceID,
		From:        input.From,
		To:          input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "event.usecase.List: workspace=%s: %v", sc.WorkspaceID, err)
		return nil, err
	}
	return events, nil
}
