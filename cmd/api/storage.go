package main

import (
	"context"
	"fmt"

	"household-calendar/config"
	"household-calendar/internal/event/repository"
	"household-calendar/internal/event/repository/postgres"
	"household-calendar/internal/event/repository/sqlite"
	"household-calendar/pkg/log"
)

// openRepository selects the event store backend named in cfg.
func openRepository(ctx context.Context, cfg config.DatabaseConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.New(ctx, cfg.DSN, l)
	case "sqlite":
		return sqlite.New(ctx, cfg.DSN, l)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
