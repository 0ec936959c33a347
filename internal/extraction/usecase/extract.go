package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"household-calendar/internal/extraction"
	"household-calendar/internal/extraction/parser"
	"household-calendar/internal/model"
	"household-calendar/pkg/datemath"
)

// Extract classifies the message, resolves a draft through the remote or the
// deterministic path, and stamps it into proposals.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.Input) (out extraction.Output) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "uc.Extract panic: %v", r)
			out = messageOutput(hintMessage)
		}
	}()

	msg := strings.TrimSpace(input.Message)
	input.Message = msg

	now := input.Now
	if now.IsZero() {
		now = uc.now()
	}
	res := datemath.NewResolver(now.UTC(), input.TZOffsetMinutes)

	intent := parser.Classify(msg)
	switch intent {
	case parser.IntentCreate:
	case parser.IntentDelete:
		return messageOutput(describeDelete(msg))
	case parser.IntentQuery:
		return messageOutput(describeQuery(msg, res))
	default:
		return messageOutput(hintMessage)
	}

	draft, source := uc.draft(ctx, input, res)
	out = uc.build(ctx, input, res, draft)
	out.Source = source

	uc.l.Infof(ctx, "uc.Extract workspace=%s type=%s source=%s proposals=%d",
		sc.WorkspaceID, out.Type, out.Source, len(out.Proposals))
	return out
}

func (uc *implUseCase) draft(ctx context.Context, input extraction.Input, res *datemath.Resolver) (extraction.Draft, extraction.Source) {
	if uc.cfg.RemoteEnabled && uc.remote != nil {
		d, err := uc.extractRemote(ctx, input, res.Now())
		if err == nil {
			return d, extraction.SourceRemote
		}
		uc.l.Warnf(ctx, "uc.Extract remote path abandoned: %v", err)
	}
	return deterministicDraft(input.Message, res), extraction.SourceDeterministic
}

// extractRemote bounds the remote call by RemoteTimeout even when the
// extractor ignores its context, and turns a panic into an error.
func (uc *implUseCase) extractRemote(ctx context.Context, input extraction.Input, now time.Time) (extraction.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.RemoteTimeout)
	defer cancel()

	type result struct {
		draft extraction.Draft
		err   error
	}
	ch := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- result{err: fmt.Errorf("%w: %v", extraction.ErrRemotePanic, r)}
			}
		}()
		d, err := uc.remote.Extract(ctx, input, now)
		ch <- result{draft: d, err: err}
	}()

	select {
	case r := <-ch:
		return r.draft, r.err
	case <-ctx.Done():
		return extraction.Draft{}, fmt.Errorf("%w: %v", extraction.ErrRemoteTimeout, ctx.Err())
	}
}

// deterministicDraft runs the rule tables. It performs no I/O.
func deterministicDraft(msg string, res *datemath.Resolver) extraction.Draft {
	clock := datemath.ResolveClock(msg)
	start := clock.Start
	if !clock.Found() {
		start = parser.DefaultStart(msg)
	}
	date, _ := res.ResolveDate(msg, start)
	weeks, weeksSet := datemath.ResolveWeekCount(msg)
	attrs := parser.ExtractAttributes(msg)

	return extraction.Draft{
		Title:           attrs.Title,
		Date:            date,
		Start:           start,
		DurationMinutes: parser.InferDuration(msg, clock),
		Location:        attrs.Location,
		Attendees:       attrs.Attendees,
		Weekdays:        datemath.ResolveWeekdays(msg),
		WeekCount:       weeks,
		WeekCountSet:    weeksSet,
		Everyone:        attrs.Everyone,
	}
}

func messageOutput(msg string) extraction.Output {
	return extraction.Output{Type: extraction.TypeMessage, Message: msg}
}

func describeDelete(msg string) string {
	if subject := parser.Subject(msg); subject != "" {
		return fmt.Sprintf(deleteSubjectMessage, subject)
	}
	return deleteMessage
}

func describeQuery(msg string, res *datemath.Resolver) string {
	endOfDay := datemath.Clock{Hour: 23, Minute: 59}
	date, found := res.ResolveDate(msg, endOfDay)
	if !found {
		return queryMessage
	}
	return fmt.Sprintf(queryDayMessage, date.At(datemath.Clock{}, res.Location()).Format(dayLayout))
}
