package usecase

import (
	"strings"

	"household-calendar/internal/event"
	"household-calendar/internal/model"
)

func validateScope(sc model.Scope) error {
	if strings.TrimSpace(sc.WorkspaceID) == "" {
		return event.ErrMissingWorkspace
	}
	return nil
}

func validateProposal(p model.EventProposal) error {
	if strings.TrimSpace(p.Title) == "" {
		return event.ErrEmptyTitle
	}
	if !p.End.After(p.Start) {
		return event.ErrInvalidRange
	}
	if p.Duration() > event.MaxDuration {
		return event.ErrDurationTooLong
	}
	return nil
}
