package household_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"household-calendar/internal/household"
	"household-calendar/internal/model"
)

var roster = []model.Member{
	{ID: "u1", Name: "Jordan"},
	{ID: "u2", Name: "Ellie"},
	{ID: "u3", Name: "Sam"},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		in   household.Input
		want household.Assignment
	}{
		{
			name: "no mention falls back to current user",
			in: household.Input{
				Text:            "dentist 2pm",
				Roster:          []model.Member{{ID: "u1", Name: "Jordan"}},
				CurrentUserName: "Jordan",
			},
			want: household.Assignment{MemberIDs: []string{"u1"}},
		},
		{
			name: "case-insensitive roster match",
			in: household.Input{
				Mentions:        []string{"SAM"},
				Text:            "lunch with SAM",
				Roster:          roster,
				CurrentUserName: "Jordan",
			},
			want: household.Assignment{MemberIDs: []string{"u3"}},
		},
		{
			name: "unknown mention is external and current user is assigned",
			in: household.Input{
				Mentions:        []string{"george"},
				Text:            "coffee with george tomorrow 3",
				Roster:          roster,
				CurrentUserName: "Jordan",
			},
			want: household.Assignment{MemberIDs: []string{"u1"}, External: []string{"george"}},
		},
		{
			name: "roster name used outside with",
			in: household.Input{
				Text:            "ellie preschool laurel hill m-f 9am-4pm",
				Roster:          roster,
				CurrentUserName: "Jordan",
			},
			want: household.Assignment{MemberIDs: []string{"u2"}},
		},
		{
			name: "everyone flag assigns the whole roster",
			in: household.Input{
				Mentions: []string{"grandma"},
				Text:     "pizza night for the whole family with grandma",
				Roster:   roster,
				Everyone: true,
			},
			want: household.Assignment{MemberIDs: []string{"u1", "u2", "u3"}, External: []string{"grandma"}},
		},
		{
			name: "unknown current user falls back to first member",
			in: household.Input{
				Text:            "gym",
				Roster:          roster,
				CurrentUserName: "Alex",
			},
			want: household.Assignment{MemberIDs: []string{"u1"}},
		},
		{
			name: "no roster keeps mentions external",
			in: household.Input{
				Mentions: []string{"george"},
				Text:     "coffee with george",
			},
			want: household.Assignment{External: []string{"george"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, household.Resolve(tt.in))
		})
	}
}
