package usecase

import (
	"time"

	"household-calendar/internal/event"
	"household-calendar/internal/event/repository"
	pkgLog "household-calendar/pkg/log"
)

const defaultMirrorConcurrency = 4

type implUseCase struct {
	l                 pkgLog.Logger
	repo              repository.Repository
	mirror            event.CalendarMirror
	mirrorConcurrency int
	now               func() time.Time
}

// New creates a new event UseCase. mirror may be nil.
func New(l pkgLog.Logger, repo repository.Repository, mirror event.CalendarMirror) event.UseCase {
	return &implUseCase{
		l:                 l,
		repo:              repo,
		mirror:            mirror,
		mirrorConcurrency: defaultMirrorConcurrency,
		now:               time.Now,
	}
}
