package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"household-calendar/pkg/datemath"
	"household-calendar/pkg/recurrence"
)

type expandOptions struct {
	anchor   string
	days     []string
	weeks    int
	start    string
	duration int
	tzOffset int
}

func newExpandCmd() *cobra.Command {
	opts := expandOptions{}
	cmd := &cobra.Command{
		Use:     "expand",
		Short:   "Print every occurrence of a weekly batch",
		Example: `  calctl expand --anchor 2024-01-01 --days 1,3,5 --weeks 4 --start 09:00 --duration 60`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := opts.spec()
			if err != nil {
				return err
			}
			occurrences, err := recurrence.Expand(spec)
			if err != nil {
				return err
			}
			rule, err := recurrence.RuleString(spec)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, o := range occurrences {
				fmt.Fprintf(w, "%s  %s–%s\n", o.Start.Format("Mon 2006-01-02"), o.Start.Format("15:04"), o.End.Format("15:04"))
			}
			fmt.Fprintf(w, "%d occurrences\nRRULE:%s\n", len(occurrences), rule)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.anchor, "anchor", "", "first day of the batch as YYYY-MM-DD (required)")
	f.StringSliceVar(&opts.days, "days", nil, "weekdays as numbers (0=Sun) or names, e.g. 1,3,5 or mon,wed,fri (required)")
	f.IntVar(&opts.weeks, "weeks", 8, "number of weeks")
	f.StringVar(&opts.start, "start", "09:00", "start time as HH:MM")
	f.IntVar(&opts.duration, "duration", 60, "duration in minutes")
	f.IntVar(&opts.tzOffset, "tz-offset", 0, "minutes added to UTC to get local time")
	_ = cmd.MarkFlagRequired("anchor")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}

func (o expandOptions) spec() (recurrence.Spec, error) {
	loc := datemath.LocationForOffset(o.tzOffset)
	anchor, err := time.ParseInLocation(datemath.DateFormatISO, o.anchor, loc)
	if err != nil {
		return recurrence.Spec{}, fmt.Errorf("--anchor: %w", err)
	}

	start, err := time.Parse("15:04", o.start)
	if err != nil {
		return recurrence.Spec{}, fmt.Errorf("--start: %w", err)
	}

	days := make([]time.Weekday, 0, len(o.days))
	for _, raw := range o.days {
		d, err := parseWeekday(raw)
		if err != nil {
			return recurrence.Spec{}, err
		}
		days = append(days, d)
	}

	return recurrence.Spec{
		Anchor:    anchor,
		Weekdays:  days,
		WeekCount: o.weeks,
		Start:     datemath.Clock{Hour: start.Hour(), Minute: start.Minute()},
		Duration:  time.Duration(o.duration) * time.Minute,
	}, nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(raw); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("--days: %d is not in 0..6", n)
		}
		return time.Weekday(n), nil
	}
	if d, ok := datemath.WeekdayByName(raw); ok {
		return d, nil
	}
	return 0, fmt.Errorf("--days: unknown weekday %q", raw)
}
