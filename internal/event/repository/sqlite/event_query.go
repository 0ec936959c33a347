package sqlite

import (
	"strings"

	repo "household-calendar/internal/event/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneEvent.
func buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.WorkspaceID != "" {
		conditions = append(conditions, "workspace_id = ?")
		args = append(args, opt.WorkspaceID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE clause + args for ListEvents. An event
// overlaps the window when it starts before To and ends after From.
func buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	conditions := []string{"workspace_id = ?"}
	args := []any{opt.WorkspaceID}

	if !opt.To.IsZero() {
		conditions = append(conditions, "start_ts < ?")
		args = append(args, opt.To.UnixMilli())
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, "end_ts > ?")
		args = append(args, opt.From.UnixMilli())
	}
	if opt.RecurrenceID != "" {
		conditions = append(conditions, "recurrence_id = ?")
		args = append(args, opt.RecurrenceID)
	}
	return strings.Join(conditions, " AND "), args
}
