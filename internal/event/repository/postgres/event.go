package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	repo "household-calendar/internal/event/repository"
	"household-calendar/internal/model"
)

const selectColumns = `id::text, workspace_id, created_by, title, start_at, end_at, location, description,
	attendees, member_ids, recurrence_id, rrule, created_at, updated_at`

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, workspace_id, created_by, title, start_at, end_at, location, description,
			attendees, member_ids, recurrence_id, rrule, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`

	now := r.now().UTC().Truncate(time.Microsecond)
	ev := model.Event{
		ID:           uuid.NewString(),
		WorkspaceID:  opt.WorkspaceID,
		CreatedBy:    opt.CreatedBy,
		Title:        opt.Title,
		Start:        opt.Start.UTC(),
		End:          opt.End.UTC(),
		Location:     opt.Location,
		Description:  opt.Description,
		Attendees:    opt.Attendees,
		MemberIDs:    opt.MemberIDs,
		RecurrenceID: opt.RecurrenceID,
		RRule:        opt.RRule,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.pool.Exec(ctx, query,
		ev.ID, ev.WorkspaceID, ev.CreatedBy, ev.Title, ev.Start, ev.End, ev.Location, ev.Description,
		nonNil(ev.Attendees), nonNil(ev.MemberIDs), ev.RecurrenceID, ev.RRule, now,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repo.ErrFailedToInsert
	}
	return ev, nil
}

// GetOneEvent returns a zero Event when nothing matches.
func (r *implRepository) GetOneEvent(ctx context.Context, opt repo.GetOneEventOptions) (model.Event, error) {
	where, args := buildGetOneQuery(opt)
	query := `SELECT ` + selectColumns + ` FROM events WHERE ` + where + ` LIMIT 1`

	ev, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Event{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEvent"), err)
		return model.Event{}, repo.ErrFailedToGet
	}
	return ev, nil
}

// ListEvents returns events overlapping the window ordered by start.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	where, args := buildListQuery(opt)
	query := `SELECT ` + selectColumns + ` FROM events WHERE ` + where + ` ORDER BY start_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		r.l.Errorf(ctx, "%s collect: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// DeleteEvent removes an Event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if _, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteEventsByRecurrence removes a batch's events starting at or after From.
func (r *implRepository) DeleteEventsByRecurrence(ctx context.Context, opt repo.DeleteByRecurrenceOptions) (int64, error) {
	const query = `DELETE FROM events WHERE workspace_id = $1 AND recurrence_id = $2 AND start_at >= $3`

	tag, err := r.pool.Exec(ctx, query, opt.WorkspaceID, opt.RecurrenceID, opt.From.UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventsByRecurrence"), err)
		return 0, repo.ErrFailedToDelete
	}
	return tag.RowsAffected(), nil
}

func scanEvent(row pgx.Row) (model.Event, error) {
	var ev model.Event
	err := row.Scan(
		&ev.ID, &ev.WorkspaceID, &ev.CreatedBy, &ev.Title, &ev.Start, &ev.End, &ev.Location, &ev.Description,
		&ev.Attendees, &ev.MemberIDs, &ev.RecurrenceID, &ev.RRule, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return model.Event{}, err
	}
	ev.Start = ev.Start.UTC()
	ev.End = ev.End.UTC()
	ev.CreatedAt = ev.CreatedAt.UTC()
	ev.UpdatedAt = ev.UpdatedAt.UTC()
	if len(ev.Attendees) == 0 {
		ev.Attendees = nil
	}
	if len(ev.MemberIDs) == 0 {
		ev.MemberIDs = nil
	}
	return ev, nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
