package datemath

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Date rules in precedence order; the first rule that matches decides the day.
var dateRules = []dateRule{
	{re: regexp.MustCompile(`(?i)\b(?:the\s+)?day\s+after\s+tomorrow\b`), kind: dateOffset, days: 2},
	{re: regexp.MustCompile(`(?i)\btomorrow\b`), kind: dateOffset, days: 1},
	{re: regexp.MustCompile(`(?i)\b(?:today|tonight)\b`), kind: dateOffset, days: 0},
	{re: regexp.MustCompile(`(?i)\bnext\s+(` + weekdayNamePattern + `)\b`), kind: dateNextWeekday},
	{re: regexp.MustCompile(`(?i)\b(` + weekdayNamePattern + `|mon|tues|tue|wed|thurs|thur|thu|fri)\b`), kind: dateWeekday},
	{re: regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:days?|weeks?|months?)\b`), kind: dateRelative},
}

// Weekday-set rules in precedence order; the first rule that matches decides
// the set of recurring days.
var weekdaySetRules = []weekdaySetRule{
	{re: regexp.MustCompile(`(?i)\bweekdays\b`), fixed: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
	{re: regexp.MustCompile(`(?i)\b(?:every\s*day|daily)\b`), fixed: []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}},
	{re: regexp.MustCompile(`(?i)\b(?:every\s+weekend|weekends)\b`), fixed: []time.Weekday{time.Sunday, time.Saturday}},
	{re: regexp.MustCompile(`(?i)` + weekdayListPattern), kind: setChain},
	{re: regexp.MustCompile(`(?i)\b(` + weekdayNamePattern + `)\s*(?:-|–|to|through|thru|until)\s*(` + weekdayNamePattern + `)\b`), kind: setFullRange},
	{re: regexp.MustCompile(`(?i)\b(` + weekdayAbbrPattern + `)\s*(?:-|–|to|through|thru)\s*(` + weekdayAbbrPattern + `)\b`), kind: setAbbrRange},
	{re: regexp.MustCompile(`(?i)\bevery\s+((?:` + weekdayNamePattern + `)(?:\s*(?:,|and|&)\s*(?:` + weekdayNamePattern + `))*)\b`), kind: setList},
	{re: regexp.MustCompile(`(?i)\b(` + weekdayNamePattern + `)s\b`), kind: setPlural},
}

var (
	weekCountRe   = regexp.MustCompile(`(?i)\bfor\s+(\d{1,2}|a|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+weeks?\b`)
	weekdayNameRe = regexp.MustCompile(`(?i)` + weekdayNamePattern)
	wordRe        = regexp.MustCompile(`[A-Za-z]+`)
)

type dateKind int

const (
	dateOffset dateKind = iota
	dateNextWeekday
	dateWeekday
	dateRelative
)

type dateRule struct {
	re   *regexp.Regexp
	kind dateKind
	days int
}

type setKind int

const (
	setFixed setKind = iota
	setChain
	setFullRange
	setAbbrRange
	setList
	setPlural
)

type weekdaySetRule struct {
	re    *regexp.Regexp
	kind  setKind
	fixed []time.Weekday
}

// Resolver resolves date and clock phrases against a caller's local "now".
// It performs no I/O and holds no state beyond the reference time.
type Resolver struct {
	now    time.Time
	parser *Parser
}

// NewResolver anchors a resolver at nowUTC shifted by offsetMinutes, the
// number of minutes to add to UTC to get the caller's local time.
func NewResolver(nowUTC time.Time, offsetMinutes int) *Resolver {
	p := NewFixedParser(offsetMinutes)
	return &Resolver{now: nowUTC.In(p.Location()), parser: p}
}

// Now returns the reference time in the caller's location.
func (r *Resolver) Now() time.Time {
	return r.now
}

// Location returns the caller's fixed zone.
func (r *Resolver) Location() *time.Location {
	return r.parser.Location()
}

// Today returns the reference day.
func (r *Resolver) Today() Date {
	return DateOf(r.now)
}

// ParseDate reads a date the remote extractor returned, either ISO
// "2006-01-02" or a relative phrase such as "tomorrow" or "in 3 days",
// against the caller's local now.
func (r *Resolver) ParseDate(value string) (Date, error) {
	t, err := r.parser.Parse(value, r.now)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// ResolveDate finds the single day an utterance refers to. Tokens that
// describe a recurring set ("m-f", "every tuesday") are ignored here. A bare
// weekday naming today means today unless start has already passed, in
// which case it means a week from today. found is false when no phrase matched
// and the reference day is returned.
func (r *Resolver) ResolveDate(text string, start Clock) (d Date, found bool) {
	text = stripRecurrence(text)
	today := r.Today()

	for _, rule := range dateRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch rule.kind {
		case dateOffset:
			return today.AddDays(rule.days), true
		case dateNextWeekday:
			wd := weekdayByName[strings.ToLower(m[1])]
			days := (int(wd) - int(today.Weekday()) + 7) % 7
			if days == 0 {
				days = 7
			}
			return today.AddDays(days), true
		case dateWeekday:
			wd, ok := lookupWeekday(m[1])
			if !ok {
				continue
			}
			days := (int(wd) - int(today.Weekday()) + 7) % 7
			if days == 0 && start.Minutes() <= r.now.Hour()*60+r.now.Minute() {
				days = 7
			}
			return today.AddDays(days), true
		case dateRelative:
			t, err := r.parser.Parse(strings.ToLower(m[0]), r.now)
			if err != nil {
				continue
			}
			return DateOf(t), true
		}
	}

	return today, false
}

// ResolveWeekdays returns the sorted set of recurring weekdays named in text,
// or nil when the utterance does not describe a recurring set.
func ResolveWeekdays(text string) []time.Weekday {
	for _, rule := range weekdaySetRules {
		switch rule.kind {
		case setFixed:
			if rule.re.MatchString(text) {
				return SortWeekdays(rule.fixed)
			}
		case setChain:
			m := rule.re.FindString(text)
			if m == "" {
				continue
			}
			var days []time.Weekday
			for _, tok := range wordRe.FindAllString(m, -1) {
				if wd, ok := lookupWeekday(tok); ok {
					days = append(days, wd)
				}
			}
			return SortWeekdays(days)
		case setFullRange, setAbbrRange:
			m := rule.re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			from, ok1 := lookupWeekday(m[1])
			to, ok2 := lookupWeekday(m[2])
			if !ok1 || !ok2 {
				continue
			}
			return SortWeekdays(WalkWeekdays(from, to))
		case setList:
			m := rule.re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			var days []time.Weekday
			for _, name := range weekdayNameRe.FindAllString(m[1], -1) {
				days = append(days, weekdayByName[strings.ToLower(name)])
			}
			return SortWeekdays(days)
		case setPlural:
			all := rule.re.FindAllStringSubmatch(text, -1)
			if len(all) == 0 {
				continue
			}
			days := make([]time.Weekday, 0, len(all))
			for _, m := range all {
				days = append(days, weekdayByName[strings.ToLower(m[1])])
			}
			return SortWeekdays(days)
		}
	}
	return nil
}

// ResolveWeekCount reads "for N weeks". found is false when absent.
func ResolveWeekCount(text string) (n int, found bool) {
	m := weekCountRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	word := strings.ToLower(m[1])
	if v, ok := numberWords[word]; ok {
		return v, true
	}
	v, err := strconv.Atoi(word)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WalkWeekdays returns the inclusive run of days from one weekday to another,
// walking forward and wrapping past Saturday when needed.
func WalkWeekdays(from, to time.Weekday) []time.Weekday {
	days := []time.Weekday{from}
	for d := from; d != to; {
		d = (d + 1) % 7
		days = append(days, d)
	}
	return days
}

// SortWeekdays returns a sorted copy of days with duplicates removed.
func SortWeekdays(days []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]bool, len(days))
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func lookupWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(s)
	if wd, ok := weekdayByName[s]; ok {
		return wd, true
	}
	wd, ok := weekdayByAbbr[s]
	return wd, ok
}

// HasDatePhrase reports whether text names a day or a recurring set of days.
func HasDatePhrase(text string) bool {
	for _, rule := range dateRules {
		if rule.re.MatchString(text) {
			return true
		}
	}
	return ResolveWeekdays(text) != nil
}

// WeekdayByName looks up a full or abbreviated weekday name.
func WeekdayByName(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if d, ok := weekdayByName[name]; ok {
		return d, true
	}
	d, ok := weekdayByAbbr[name]
	return d, ok
}
