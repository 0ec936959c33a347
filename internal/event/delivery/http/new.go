package http

import (
	"household-calendar/internal/event"
	"household-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc event.UseCase
}

// New creates the event store HTTP handler.
func New(l log.Logger, uc event.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
