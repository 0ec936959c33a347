package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"

	"household-calendar/internal/extraction"
	"household-calendar/internal/extraction/parser"
	"household-calendar/internal/household"
	"household-calendar/internal/model"
	"household-calendar/pkg/datemath"
	"household-calendar/pkg/recurrence"
)

// build turns a draft into a single proposal or a weekly batch. Every
// proposal it returns has a title and ends after it starts.
func (uc *implUseCase) build(ctx context.Context, input extraction.Input, res *datemath.Resolver, d extraction.Draft) extraction.Output {
	d = normalize(d, res.Today())

	mentions := make([]string, 0, len(d.Attendees)+len(d.AssignedMembers))
	mentions = append(mentions, d.Attendees...)
	mentions = append(mentions, d.AssignedMembers...)
	assign := household.Resolve(household.Input{
		Mentions:        mentions,
		Text:            input.Message,
		Roster:          input.Members,
		CurrentUserName: input.CurrentUserName,
		Everyone:        d.Everyone,
	})

	base := model.EventProposal{
		Title:       d.Title,
		Location:    d.Location,
		Description: d.Description,
		Attendees:   assign.External,
		MemberIDs:   assign.MemberIDs,
	}
	loc := res.Location()
	dur := time.Duration(d.DurationMinutes) * time.Minute

	if d.Recurring() {
		out, err := uc.buildBatch(base, d, loc, dur, res.Now())
		if err == nil {
			return out
		}
		uc.l.Warnf(ctx, "uc.build recurrence dropped: %v", err)
	}

	start := d.Date.At(d.Start, loc)
	p := base
	p.Start = start.UTC()
	p.End = start.Add(dur).UTC()
	return extraction.Output{
		Type:     extraction.TypeCreateEvent,
		Message:  singleMessage(p, loc),
		Proposal: &p,
	}
}

func (uc *implUseCase) buildBatch(base model.EventProposal, d extraction.Draft, loc *time.Location, dur time.Duration, now time.Time) (extraction.Output, error) {
	weeks := uc.cfg.DefaultWeekCount
	if d.WeekCountSet {
		weeks = d.WeekCount
	}
	weeks = recurrence.ClampWeeks(weeks, uc.cfg.MaxWeekCount)

	days := datemath.SortWeekdays(d.Weekdays)
	anchor := recurrence.AnchorDate(d.Date, days)
	spec := recurrence.Spec{
		Anchor:    anchor.At(d.Start, loc),
		Weekdays:  days,
		WeekCount: weeks,
		Start:     d.Start,
		Duration:  dur,
	}

	occurrences, err := recurrence.Expand(spec)
	if err != nil {
		return extraction.Output{}, fmt.Errorf("recurrence.Expand: %w", err)
	}
	rule, err := recurrence.RuleString(spec)
	if err != nil {
		return extraction.Output{}, fmt.Errorf("recurrence.RuleString: %w", err)
	}

	proposals := make([]model.EventProposal, 0, len(occurrences))
	for _, o := range occurrences {
		p := base
		p.Start = o.Start.UTC()
		p.End = o.End.UTC()
		p.Attendees = slices.Clone(base.Attendees)
		p.MemberIDs = slices.Clone(base.MemberIDs)
		proposals = append(proposals, p)
	}

	first := proposals[0]
	return extraction.Output{
		Type:         extraction.TypeCreateEvents,
		Message:      batchMessage(first, days, weeks, len(proposals), loc),
		Proposal:     &first,
		Proposals:    proposals,
		RecurrenceID: newRecurrenceID(now),
		RRule:        rule,
	}, nil
}

// normalize repairs what either path may leave out so that stamping always
// yields a titled, positive-length event.
func normalize(d extraction.Draft, today datemath.Date) extraction.Draft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		d.Title = parser.PlaceholderTitle
	}
	if d.DurationMinutes < 1 {
		d.DurationMinutes = parser.DefaultDurationMinutes
	}
	if d.DurationMinutes > maxDurationMinutes {
		d.DurationMinutes = maxDurationMinutes
	}
	if d.Start.Hour < 0 || d.Start.Hour > 23 || d.Start.Minute < 0 || d.Start.Minute > 59 {
		d.Start = datemath.ClockNoon
	}
	if d.Date == (datemath.Date{}) {
		d.Date = today
	}
	return d
}

// newRecurrenceID correlates one batch. It is unique, not meaningful.
func newRecurrenceID(now time.Time) string {
	return fmt.Sprintf("%s%d_%s", recurrenceIDPrefix, now.UnixMilli(), shortuuid.New())
}
