// Package household maps people mentioned in an utterance onto the roster of
// a household workspace.
package household

import (
	"regexp"
	"strings"

	"household-calendar/internal/model"
)

// Input is a read-only snapshot for one resolution.
type Input struct {
	// Mentions are free-text names captured by the extractor ("with george").
	Mentions []string
	// Text is the raw utterance, scanned for roster names used outside "with".
	Text            string
	Roster          []model.Member
	CurrentUserName string
	// Everyone is set only when the extractor explicitly flagged the whole household.
	Everyone bool
}

// Assignment is the outcome. External keeps mentions that matched nobody.
type Assignment struct {
	MemberIDs []string
	External  []string
}

// Resolve assigns an event to household members. Exact case-insensitive name
// matches win. Family-wide scope assigns everyone. With nothing matched the
// current user is assigned, falling back to the first roster member, so a
// non-empty roster never yields an unassigned event.
func Resolve(in Input) Assignment {
	var out Assignment
	byName := make(map[string]string, len(in.Roster))
	for _, m := range in.Roster {
		byName[normalize(m.Name)] = m.ID
	}

	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out.MemberIDs = append(out.MemberIDs, id)
		}
	}

	for _, mention := range in.Mentions {
		if id, ok := byName[normalize(mention)]; ok {
			add(id)
			continue
		}
		out.External = append(out.External, strings.TrimSpace(mention))
	}

	if len(in.Roster) == 0 {
		return out
	}

	if in.Everyone {
		out.MemberIDs = nil
		seen = make(map[string]bool)
		for _, m := range in.Roster {
			add(m.ID)
		}
		return out
	}

	for _, m := range in.Roster {
		if mentionsName(in.Text, m.Name) {
			add(m.ID)
		}
	}

	if len(out.MemberIDs) == 0 {
		if id, ok := byName[normalize(in.CurrentUserName)]; ok && in.CurrentUserName != "" {
			add(id)
		} else {
			add(in.Roster[0].ID)
		}
	}
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func mentionsName(text, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || text == "" {
		return false
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
