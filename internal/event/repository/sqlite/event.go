package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "household-calendar/internal/event/repository"
	"household-calendar/internal/model"
)

const selectColumns = `id, workspace_id, created_by, title, start_ts, end_ts, location, description,
	attendees, member_ids, recurrence_id, rrule, created_ts, updated_ts`

// CreateEvent inserts a new Event row and returns the created entity.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, workspace_id, created_by, title, start_ts, end_ts, location, description,
			attendees, member_ids, recurrence_id, rrule, created_ts, updated_ts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := r.now().UTC().Truncate(time.Millisecond)
	ev := model.Event{
		ID:           uuid.NewString(),
		WorkspaceID:  opt.WorkspaceID,
		CreatedBy:    opt.CreatedBy,
		Title:        opt.Title,
		Start:        opt.Start.UTC().Truncate(time.Millisecond),
		End:          opt.End.UTC().Truncate(time.Millisecond),
		Location:     opt.Location,
		Description:  opt.Description,
		Attendees:    opt.Attendees,
		MemberIDs:    opt.MemberIDs,
		RecurrenceID: opt.RecurrenceID,
		RRule:        opt.RRule,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, query,
		ev.ID, ev.WorkspaceID, ev.CreatedBy, ev.Title, ev.Start.UnixMilli(), ev.End.UnixMilli(),
		ev.Location, ev.Description, encodeList(ev.Attendees), encodeList(ev.MemberIDs),
		ev.RecurrenceID, ev.RRule, now.UnixMilli(), now.UnixMilli(),
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

	ev, err := scanEvent(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
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
	query := `SELECT ` + selectColumns + ` FROM events WHERE ` + where + ` ORDER BY start_ts ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repo.ErrFailedToList
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repo.ErrFailedToList
	}
	return events, nil
}

// DeleteEvent removes an Event by ID.
func (r *implRepository) DeleteEvent(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEvent"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteEventsByRecurrence removes a batch's events starting at or after From.
func (r *implRepository) DeleteEventsByRecurrence(ctx context.Context, opt repo.DeleteByRecurrenceOptions) (int64, error) {
	const query = `DELETE FROM events WHERE workspace_id = ? AND recurrence_id = ? AND start_ts >= ?`

	res, err := r.db.ExecContext(ctx, query, opt.WorkspaceID, opt.RecurrenceID, opt.From.UnixMilli())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventsByRecurrence"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, repo.ErrFailedToDelete
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (model.Event, error) {
	var (
		ev                   model.Event
		startTs, endTs       int64
		createdTs, updatedTs int64
		attendees, members   string
	)
	err := s.Scan(
		&ev.ID, &ev.WorkspaceID, &ev.CreatedBy, &ev.Title, &startTs, &endTs, &ev.Location, &ev.Description,
		&attendees, &members, &ev.RecurrenceID, &ev.RRule, &createdTs, &updatedTs,
	)
	if err != nil {
		return model.Event{}, err
	}
	ev.Start = time.UnixMilli(startTs).UTC()
	ev.End = time.UnixMilli(endTs).UTC()
	ev.CreatedAt = time.UnixMilli(createdTs).UTC()
	ev.UpdatedAt = time.UnixMilli(updatedTs).UTC()
	ev.Attendees = decodeList(attendees)
	ev.MemberIDs = decodeList(members)
	return ev, nil
}

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeList(raw string) []string {
	var items []string
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) == 0 {
		return nil
	}
	return items
}
