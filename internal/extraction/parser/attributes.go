package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"household-calendar/pkg/datemath"
)

// Attributes are the descriptive parts of an utterance once every time, date
// and recurrence phrase is gone.
type Attributes struct {
	Title     string
	Location  string
	Attendees []string
	// Everyone is set only by explicit whole-household phrasing.
	Everyone bool
}

// ExtractAttributes never fails. The worst case is the placeholder title with
// no location and no attendees.
func ExtractAttributes(text string) Attributes {
	var a Attributes

	rest := leadingVerbRe.ReplaceAllString(strings.TrimSpace(text), "")
	if everyoneRe.MatchString(rest) {
		a.Everyone = true
		rest = everyoneRe.ReplaceAllString(rest, " ")
	}
	rest = datemath.Strip(rest)

	rest, a.Location = exciseLocation(rest)
	a.Attendees = extractAttendees(rest)
	a.Title = cleanTitle(rest)
	return a
}

// exciseLocation removes the location from rest and returns both. An explicit
// "at X" wins over the phrase trailing the last event keyword.
func exciseLocation(rest string) (string, string) {
	if m := atLocationRe.FindStringSubmatchIndex(rest); m != nil {
		loc := strings.TrimSpace(rest[m[2]:m[3]])
		if plausibleLocation(loc) {
			return rest[:m[0]] + rest[m[3]:], TitleCase(loc)
		}
	}

	kw := placeKeywordRe.FindAllStringIndex(rest, -1)
	if len(kw) == 0 {
		return rest, ""
	}
	end := kw[len(kw)-1][1]
	tail, with := rest[end:], ""
	if m := withTailRe.FindStringIndex(tail); m != nil {
		tail, with = tail[:m[0]], tail[m[0]:]
	}

	loc := strings.TrimSpace(tail)
	if !plausibleLocation(loc) {
		return rest, ""
	}
	words := strings.Fields(loc)
	if len(words) > maxLocationWords || locationStopWords[strings.ToLower(words[0])] {
		return rest, ""
	}
	return rest[:end] + with, TitleCase(loc)
}

// plausibleLocation rejects leftovers that are only punctuation or a lone
// weekday abbreviation.
func plausibleLocation(loc string) bool {
	if !strings.ContainsFunc(loc, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) {
		return false
	}
	_, isDay := datemath.WeekdayByName(strings.Trim(loc, "-–/,. "))
	return !isDay
}

func extractAttendees(rest string) []string {
	m := withRe.FindStringSubmatch(rest)
	if m == nil {
		return nil
	}
	names := m[1]
	if loc := attendeeStopRe.FindStringIndex(names); loc != nil {
		names = names[:loc[0]]
	}

	var out []string
	for _, name := range attendeeSepRe.Split(names, -1) {
		name = determinerRe.ReplaceAllString(strings.TrimSpace(name), "")
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

func cleanTitle(rest string) string {
	rest = datemath.TrimConnectors(rest)
	if utf8.RuneCountInString(rest) < minTitleLength {
		return PlaceholderTitle
	}
	return TitleCase(rest)
}

// TitleCase upper-cases the first letter of every word and leaves the rest
// untouched; acronyms are not special-cased.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
