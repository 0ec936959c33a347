package remote

import (
	"fmt"
	"strings"
	"time"

	"household-calendar/internal/extraction"
	"household-calendar/pkg/datemath"
	"household-calendar/pkg/llmprovider"
)

// buildTimeContext describes the caller's local calendar around now.
func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		timeContextTemplate,
		now.Format("2006-01-02 15:04"),
		now.Weekday().String(),
		now.Format("-07:00"),
		now.Format(datemath.DateFormatISO),
		tomorrow.Format(datemath.DateFormatISO),
		weekStart.Format(datemath.DateFormatISO),
		weekEnd.Format(datemath.DateFormatISO),
	)
}

func buildSystemInstruction(input extraction.Input, now time.Time) string {
	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\n")
	sb.WriteString(buildTimeContext(now))

	if len(input.Members) > 0 {
		names := make([]string, 0, len(input.Members))
		for _, m := range input.Members {
			names = append(names, m.Name)
		}
		me := input.CurrentUserName
		if me == "" {
			me = "unknown"
		}
		sb.WriteString(fmt.Sprintf(householdTemplate, strings.Join(names, ", "), me))
	}
	return sb.String()
}

// buildMessages forwards the last maxHistory turns followed by the message.
func (e *implExtractor) buildMessages(input extraction.Input) []llmprovider.Message {
	history := input.History
	if len(history) > e.maxHistory {
		history = history[len(history)-e.maxHistory:]
	}

	msgs := make([]llmprovider.Message, 0, len(history)+1)
	for _, turn := range history {
		text := strings.TrimSpace(turn.Content)
		if text == "" {
			continue
		}
		role := llmprovider.RoleUser
		if turn.Role == extraction.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Text: text})
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: strings.TrimSpace(input.Message)})
	return msgs
}
