package repository

import (
	"context"

	"household-calendar/internal/model"
)

// Repository is the event store. Implementations exist for sqlite and
// postgres and must behave identically.
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	// GetOneEvent returns a zero Event (ID == "") when nothing matches.
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	DeleteEventsByRecurrence(ctx context.Context, opt DeleteByRecurrenceOptions) (int64, error)
	Close() error
}
