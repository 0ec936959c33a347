package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "household-calendar/internal/event/repository"
)

// buildGetOneQuery builds the WHERE clause + args for GetOneEvent. An ID
// that is not a UUID cannot match any row.
func buildGetOneQuery(opt repo.GetOneEventOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		if _, err := uuid.Parse(opt.ID); err != nil {
			return "FALSE", nil
		}
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.WorkspaceID != "" {
		args = append(args, opt.WorkspaceID)
		conditions = append(conditions, fmt.Sprintf("workspace_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "TRUE", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE clause + args for ListEvents.
func buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	args := []any{opt.WorkspaceID}
	conditions := []string{"workspace_id = $1"}

	if !opt.To.IsZero() {
		args = append(args, opt.To.UTC())
		conditions = append(conditions, fmt.Sprintf("start_at < $%d", len(args)))
	}
	if !opt.From.IsZero() {
		args = append(args, opt.From.UTC())
		conditions = append(conditions, fmt.Sprintf("end_at > $%d", len(args)))
	}
	if opt.RecurrenceID != "" {
		args = append(args, opt.RecurrenceID)
		conditions = append(conditions, fmt.Sprintf("recurrence_id = $%d", len(args)))
	}
	return strings.Join(conditions, " AND "), args
}
