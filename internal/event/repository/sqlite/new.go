package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"household-calendar/internal/event/repository"
	"household-calendar/pkg/log"
)

const driverName = "sqlite"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id            TEXT PRIMARY KEY,
		workspace_id  TEXT NOT NULL,
		created_by    TEXT NOT NULL DEFAULT '',
		title         TEXT NOT NULL,
		start_ts      INTEGER NOT NULL,
		end_ts        INTEGER NOT NULL,
		location      TEXT NOT NULL DEFAULT '',
		description   TEXT NOT NULL DEFAULT '',
		attendees     TEXT NOT NULL DEFAULT '[]',
		member_ids    TEXT NOT NULL DEFAULT '[]',
		recurrence_id TEXT NOT NULL DEFAULT '',
		rrule         TEXT NOT NULL DEFAULT '',
		created_ts    INTEGER NOT NULL,
		updated_ts    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_workspace_start ON events (workspace_id, start_ts)`,
	`CREATE INDEX IF NOT EXISTS idx_events_recurrence ON events (workspace_id, recurrence_id, start_ts)`,
}

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New opens the sqlite database at dsn and creates the schema. A single
// connection is kept so that ":memory:" databases survive between calls.
func New(ctx context.Context, dsn string, l log.Logger) (repository.Repository, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToOpen, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	r := &implRepository{db: db, l: l, now: time.Now}
	if err := r.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *implRepository) migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("migrate"), err)
			return fmt.Errorf("%w: migrate: %v", repository.ErrFailedToOpen, err)
		}
	}
	return nil
}

// Close releases the database handle.
func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
