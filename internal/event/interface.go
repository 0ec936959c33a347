package event

import (
	"context"

	"household-calendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create validates and stores one proposal.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Event, error)
	// BatchCreate stores every valid proposal of a batch. Each insert is
	// independent, so a failure does not roll back the others.
	BatchCreate(ctx context.Context, sc model.Scope, input BatchCreateInput) (BatchCreateOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Event, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	// DeleteByRecurrence removes the events of a batch starting at or after From.
	DeleteByRecurrence(ctx context.Context, sc model.Scope, input DeleteByRecurrenceInput) (int64, error)
	ExportICS(ctx context.Context, sc model.Scope, input ListInput) ([]byte, error)
}

// CalendarMirror copies stored events to an external calendar.
type CalendarMirror interface {
	Mirror(ctx context.Context, ev model.Event) error
}
