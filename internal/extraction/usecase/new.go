package usecase

import (
	"time"

	"household-calendar/internal/extraction"
	"household-calendar/pkg/log"
)

// Config tunes the orchestrator.
type Config struct {
	// RemoteEnabled turns on the remote extractor when one is wired.
	RemoteEnabled    bool
	RemoteTimeout    time.Duration
	DefaultWeekCount int
	MaxWeekCount     int
}

type implUseCase struct {
	l      log.Logger
	remote extraction.RemoteExtractor
	cfg    Config
	now    func() time.Time
}

// New creates the extraction use case. remote may be nil.
func New(l log.Logger, remote extraction.RemoteExtractor, cfg Config) extraction.UseCase {
	if cfg.RemoteTimeout <= 0 {
		cfg.RemoteTimeout = defaultRemoteTimeout
	}
	if cfg.DefaultWeekCount <= 0 {
		cfg.DefaultWeekCount = defaultWeekCount
	}
	if cfg.MaxWeekCount <= 0 {
		cfg.MaxWeekCount = defaultMaxWeekCount
	}
	return &implUseCase{
		l:      l,
		remote: remote,
		cfg:    cfg,
		now:    time.Now,
	}
}
