package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"household-calendar/internal/extraction"
	"household-calendar/pkg/datemath"
	"household-calendar/pkg/llmprovider"
)

// Extract asks the configured providers for a structured draft.
func (e *implExtractor) Extract(ctx context.Context, input extraction.Input, now time.Time) (extraction.Draft, error) {
	if !e.llm.Enabled() {
		return extraction.Draft{}, extraction.ErrRemoteDisabled
	}
	if strings.TrimSpace(input.Message) == "" {
		return extraction.Draft{}, ErrEmptyMessage
	}

	req := &llmprovider.Request{
		SystemInstruction: buildSystemInstruction(input, now),
		Messages:          e.buildMessages(input),
		Temperature:       temperature,
		MaxTokens:         maxTokens,
		JSON:              true,
	}

	resp, err := e.llm.GenerateContent(ctx, req)
	if err != nil {
		return extraction.Draft{}, fmt.Errorf("llm.GenerateContent: %w", err)
	}
	e.l.Debugf(ctx, "remote.Extract provider=%s model=%s", resp.ProviderName, resp.ModelName)

	draft, err := decodeDraft(resp.Text, datemath.NewResolver(now.UTC(), input.TZOffsetMinutes))
	if err != nil {
		e.l.Debugf(ctx, "remote.Extract raw=%q", resp.Text)
		return extraction.Draft{}, err
	}
	return draft, nil
}
