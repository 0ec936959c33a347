package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"household-calendar/internal/extraction"
	"household-calendar/internal/extraction/usecase"
	"household-calendar/internal/model"
	"household-calendar/pkg/datemath"
	"household-calendar/pkg/log"
)

const nowLayout = "2006-01-02T15:04"

type extractOptions struct {
	tzOffset int
	now      string
	members  []string
	me       string
	weeks    int
	maxWeeks int
}

func newExtractCmd() *cobra.Command {
	opts := extractOptions{}
	cmd := &cobra.Command{
		Use:   "extract <utterance>",
		Short: "Turn an utterance into an event proposal using the deterministic extractor",
		Example: `  calctl extract "preschool mon-fri 9-4" --tz-offset 480 --now 2024-01-01T10:00
  calctl extract "dentist tomorrow 2pm" --member u1:Jordan --member u2:Sam --me Jordan`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := opts.input(strings.Join(args, " "))
			if err != nil {
				return err
			}
			uc := usecase.New(log.NewNop(), nil, usecase.Config{
				DefaultWeekCount: opts.weeks,
				MaxWeekCount:     opts.maxWeeks,
			})
			out := uc.Extract(context.Background(), model.Scope{WorkspaceID: "local"}, input)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(newOutputDoc(out))
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.tzOffset, "tz-offset", 0, "minutes added to UTC to get local time")
	f.StringVar(&opts.now, "now", "", "local reference time as YYYY-MM-DDTHH:MM (default: current time)")
	f.StringArrayVar(&opts.members, "member", nil, "household member as id:name (repeatable)")
	f.StringVar(&opts.me, "me", "", "name of the current user")
	f.IntVar(&opts.weeks, "weeks", 8, "default week count of a recurring batch")
	f.IntVar(&opts.maxWeeks, "max-weeks", 52, "upper bound on a batch's week count")
	return cmd
}

func (o extractOptions) input(message string) (extraction.Input, error) {
	if o.tzOffset < -14*60 || o.tzOffset > 14*60 {
		return extraction.Input{}, fmt.Errorf("--tz-offset must be within ±840")
	}
	input := extraction.Input{
		Message:         message,
		TZOffsetMinutes: o.tzOffset,
		CurrentUserName: o.me,
	}
	if o.now != "" {
		now, err := time.ParseInLocation(nowLayout, o.now, datemath.LocationForOffset(o.tzOffset))
		if err != nil {
			return extraction.Input{}, fmt.Errorf("--now: %w", err)
		}
		input.Now = now.UTC()
	}
	for _, m := range o.members {
		id, name, ok := strings.Cut(m, ":")
		if !ok || strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
			return extraction.Input{}, fmt.Errorf("--member %q: want id:name", m)
		}
		input.Members = append(input.Members, model.Member{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name)})
	}
	return input, nil
}

type proposalDoc struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	Attendees   []string  `json:"attendees,omitempty"`
	Description string    `json:"description,omitempty"`
	MemberIDs   []string  `json:"memberIds,omitempty"`
}

type outputDoc struct {
	Type         string        `json:"type"`
	Message      string        `json:"message"`
	Proposal     *proposalDoc  `json:"proposal,omitempty"`
	Proposals    []proposalDoc `json:"proposals,omitempty"`
	RecurrenceID string        `json:"recurrenceId,omitempty"`
	RRule        string        `json:"rrule,omitempty"`
}

func newProposalDoc(p model.EventProposal) proposalDoc {
	return proposalDoc{
		Title:       p.Title,
		Start:       p.Start.UTC(),
		End:         p.End.UTC(),
		Location:    p.Location,
		Attendees:   p.Attendees,
		Description: p.Description,
		MemberIDs:   p.MemberIDs,
	}
}

func newOutputDoc(out extraction.Output) outputDoc {
	doc := outputDoc{
		Type:         string(out.Type),
		Message:      out.Message,
		RecurrenceID: out.RecurrenceID,
		RRule:        out.RRule,
	}
	if out.Proposal != nil {
		p := newProposalDoc(*out.Proposal)
		doc.Proposal = &p
	}
	for _, p := range out.Proposals {
		doc.Proposals = append(doc.Proposals, newProposalDoc(p))
	}
	return doc
}
