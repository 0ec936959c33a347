package http

import (
	"household-calendar/internal/extraction"
	"household-calendar/pkg/log"
)

type handler struct {
	l  log.Logger
	uc extraction.UseCase
}

// New creates the chat HTTP handler.
func New(l log.Logger, uc extraction.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
