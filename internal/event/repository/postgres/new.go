package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"household-calendar/internal/event/repository"
	"household-calendar/pkg/log"
)

const migration = `
CREATE TABLE IF NOT EXISTS events (
	id            UUID PRIMARY KEY,
	workspace_id  TEXT NOT NULL,
	created_by    TEXT NOT NULL DEFAULT '',
	title         TEXT NOT NULL,
	start_at      TIMESTAMPTZ NOT NULL,
	end_at        TIMESTAMPTZ NOT NULL,
	location      TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	attendees     TEXT[] NOT NULL DEFAULT '{}',
	member_ids    TEXT[] NOT NULL DEFAULT '{}',
	recurrence_id TEXT NOT NULL DEFAULT '',
	rrule         TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	CHECK (end_at > start_at)
);
CREATE INDEX IF NOT EXISTS idx_events_workspace_start ON events (workspace_id, start_at);
CREATE INDEX IF NOT EXISTS idx_events_recurrence ON events (workspace_id, recurrence_id, start_at);
`

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
	now  func() time.Time
}

// New connects to PostgreSQL, checks the connection and applies the schema.
func New(ctx context.Context, dsn string, l log.Logger) (repository.Repository, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: parse dsn: %v", repository.ErrFailedToOpen, err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: pgxpool: %v", repository.ErrFailedToOpen, err)
	}

	r := &implRepository{pool: pool, l: l, now: time.Now}
	if err := r.ready(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping: %v", repository.ErrFailedToOpen, err)
	}
	if _, err := pool.Exec(ctx, migration); err != nil {
		l.Errorf(ctx, "%s: %v", r.dsn("New"), err)
		pool.Close()
		return nil, fmt.Errorf("%w: migrate: %v", repository.ErrFailedToOpen, err)
	}
	return r, nil
}

func (r *implRepository) ready(ctx context.Context) error {
	var one int
	return r.pool.QueryRow(ctx, "select 1").Scan(&one)
}

// Close releases the pool.
func (r *implRepository) Close() error {
	r.pool.Close()
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/postgres.%s", method)
}
