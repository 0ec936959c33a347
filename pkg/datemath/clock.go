package datemath

import (
	"regexp"
	"strconv"
	"strings"
)

// Clock rules in precedence order: an explicit range beats a single explicit
// time, which beats a part-of-day word. Within each group the first rule in
// the table that yields a valid clock wins.
var (
	rangeRe = regexp.MustCompile(`(?i)\b(from\s+)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s*(?:-|–|to|until|till)\s*(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\b`)

	singleRules = []singleRule{
		{name: "meridiem", re: regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`), hour: 1, minute: 2, meridiem: 3},
		{name: "colon", re: regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`), hour: 1, minute: 2},
		{name: "at", re: regexp.MustCompile(`(?i)\bat\s+(\d{1,2})(?::(\d{2}))?\b`), hour: 1, minute: 2},
		{name: "day-number", re: regexp.MustCompile(`(?i)\b(?:today|tonight|tomorrow|` + weekdayNamePattern + `)\s+(?:at\s+)?(\d{1,2})(?::(\d{2}))?\b`), hour: 1, minute: 2},
	}

	partOfDayRules = []partOfDayRule{
		{re: regexp.MustCompile(`(?i)\bnoon\b`), clock: ClockNoon},
		{re: regexp.MustCompile(`(?i)\bmorning\b`), clock: ClockMorning},
		{re: regexp.MustCompile(`(?i)\bafternoon\b`), clock: ClockAfternoon},
		{re: regexp.MustCompile(`(?i)\bevening\b`), clock: ClockEvening},
		{re: regexp.MustCompile(`(?i)\btonight\b`), clock: ClockTonight},
	}

	// A bare morning hour next to one of these words is read as PM.
	eveningCueRe = regexp.MustCompile(`(?i)\b(?:tonight|evening)\b`)

	unitAfterRe = regexp.MustCompile(`(?i)^\s*(?:weeks?|days?|hours?|hrs?|mins?|minutes?|times|people|kids|months?)\b`)
)

type singleRule struct {
	name     string
	re       *regexp.Regexp
	hour     int
	minute   int
	meridiem int
}

type partOfDayRule struct {
	re    *regexp.Regexp
	clock Clock
}

// ResolveClock scans text for a start time and, when present, an explicit end.
func ResolveClock(text string) ClockResult {
	if start, end, ok := resolveRange(text); ok {
		return ClockResult{Start: start, End: &end, Source: ClockRange}
	}

	for _, rule := range singleRules {
		for _, m := range rule.re.FindAllStringSubmatchIndex(text, -1) {
			if unitAfterRe.MatchString(text[m[1]:]) {
				continue
			}
			h, _ := strconv.Atoi(group(text, m, rule.hour))
			mins := 0
			if s := group(text, m, rule.minute); s != "" {
				mins, _ = strconv.Atoi(s)
			}
			meridiem := ""
			if rule.meridiem > 0 {
				meridiem = strings.ToLower(group(text, m, rule.meridiem))
			}
			if c, ok := makeClock(h, mins, meridiem); ok {
				if meridiem == "" && c.Hour >= 1 && c.Hour < 12 && eveningCueRe.MatchString(text) {
					c.Hour += 12
				}
				return ClockResult{Start: c, Source: ClockSingle}
			}
		}
	}

	for _, rule := range partOfDayRules {
		if rule.re.MatchString(text) {
			return ClockResult{Start: rule.clock, Source: ClockPartOfDay}
		}
	}

	return ClockResult{}
}

// resolveRange parses "9am to 4pm", "9:30-4", "from 2 to 3". A bare "2-3"
// with no meridiem, no minutes and no leading "from" is not a time range.
func resolveRange(text string) (Clock, Clock, bool) {
	for _, m := range rangeRe.FindAllStringSubmatchIndex(text, -1) {
		from := group(text, m, 1)
		sh, _ := strconv.Atoi(group(text, m, 2))
		smStr := group(text, m, 3)
		sMer := strings.ToLower(group(text, m, 4))
		eh, _ := strconv.Atoi(group(text, m, 5))
		emStr := group(text, m, 6)
		eMer := strings.ToLower(group(text, m, 7))

		if from == "" && sMer == "" && eMer == "" && smStr == "" && emStr == "" {
			continue
		}
		if unitAfterRe.MatchString(text[m[1]:]) {
			continue
		}

		sm, em := 0, 0
		if smStr != "" {
			sm, _ = strconv.Atoi(smStr)
		}
		if emStr != "" {
			em, _ = strconv.Atoi(emStr)
		}

		start, end, ok := rangeClocks(sh, sm, sMer, eh, em, eMer)
		if ok {
			return start, end, true
		}
	}
	return Clock{}, Clock{}, false
}

// rangeClocks resolves meridiem markers across the two ends of a range.
// Markers on both ends are applied independently; a marker on one end is
// borrowed by the other unless that would put the start after the end.
func rangeClocks(sh, sm int, sMer string, eh, em int, eMer string) (Clock, Clock, bool) {
	var start, end Clock
	var ok bool

	switch {
	case sMer != "" && eMer != "":
		if start, ok = makeClock(sh, sm, sMer); !ok {
			return start, end, false
		}
		end, ok = makeClock(eh, em, eMer)
		return start, end, ok

	case eMer != "":
		if end, ok = makeClock(eh, em, eMer); !ok {
			return start, end, false
		}
		if start, ok = makeClock(sh, sm, eMer); !ok {
			return start, end, false
		}
		if start.Minutes() >= end.Minutes() && eMer == "pm" {
			start, ok = makeClock(sh, sm, "am")
		}
		return start, end, ok

	case sMer != "":
		if start, ok = makeClock(sh, sm, sMer); !ok {
			return start, end, false
		}
		if end, ok = makeClock(eh, em, sMer); !ok {
			return start, end, false
		}
		if end.Minutes() <= start.Minutes() && end.Hour < 12 {
			end.Hour += 12
		}
		return start, end, true

	default:
		if start, ok = makeClock(sh, sm, ""); !ok {
			return start, end, false
		}
		if end, ok = makeClock(eh, em, ""); !ok {
			return start, end, false
		}
		if end.Minutes() <= start.Minutes() && end.Hour < 12 {
			end.Hour += 12
		}
		return start, end, true
	}
}

// makeClock validates h:m and applies the meridiem. With no meridiem, hours
// 1..6 are read as PM (see BarePMCutoff).
func makeClock(h, m int, meridiem string) (Clock, bool) {
	if m < 0 || m > 59 {
		return Clock{}, false
	}
	switch meridiem {
	case "am":
		if h < 1 || h > 12 {
			return Clock{}, false
		}
		if h == 12 {
			h = 0
		}
	case "pm":
		if h < 1 || h > 12 {
			return Clock{}, false
		}
		if h != 12 {
			h += 12
		}
	default:
		if h < 0 || h > 23 {
			return Clock{}, false
		}
		if h >= 1 && h < BarePMCutoff {
			h += 12
		}
	}
	return Clock{Hour: h, Minute: m}, true
}

func group(text string, m []int, i int) string {
	if i <= 0 || 2*i+1 >= len(m) || m[2*i] < 0 {
		return ""
	}
	return text[m[2*i]:m[2*i+1]]
}
