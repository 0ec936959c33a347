package datemath

import (
	"regexp"
	"strings"
)

var (
	clockLeadIn = `(?:(?:at|@|by|from|around|starting)\s+)?`

	stripClockRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + clockLeadIn + `\b\d{1,2}(?::\d{2})?\s*(?:am|pm)?\s*(?:-|–|to|until|till)\s*\d{1,2}(?::\d{2})?\s*(?:am|pm)?\b`),
		regexp.MustCompile(`(?i)` + clockLeadIn + `\b\d{1,2}(?::\d{2})?\s*(?:am|pm)\b`),
		regexp.MustCompile(`(?i)` + clockLeadIn + `\b\d{1,2}:\d{2}\b`),
		regexp.MustCompile(`(?i)(?:\bat|@)\s*\d{1,2}\b`),
		regexp.MustCompile(`(?i)(?:in\s+the|this|at)\s+(?:morning|afternoon|evening|night)\b`),
		regexp.MustCompile(`(?i)\b(?:at\s+)?(?:noon|midday)\b`),
		regexp.MustCompile(`(?i)\b(?:morning|afternoon|evening)\b`),
	}

	// Bare day numbers ("tomorrow 3") only go when attached to a day word.
	stripDayNumberRe = regexp.MustCompile(`(?i)\b(today|tonight|tomorrow|` + weekdayNamePattern + `)\s+(?:at\s+)?\d{1,2}(?::\d{2})?\b`)

	stripDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:the\s+)?day\s+after\s+tomorrow\b`),
		regexp.MustCompile(`(?i)\b(?:today|tonight|tomorrow)\b`),
		regexp.MustCompile(`(?i)\b(?:on\s+)?(?:this\s+|next\s+)?(?:` + weekdayNamePattern + `)\b`),
		regexp.MustCompile(`(?i)\b(?:on\s+)?(?:mon|tues|tue|wed|thurs|thur|thu|fri)\b`),
		regexp.MustCompile(`(?i)\bin\s+\d+\s+(?:days?|weeks?|months?)\b`),
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	}

	stripRecurrenceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:starting\s+)?for\s+(?:\d{1,2}|a|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve)\s+weeks?\b`),
		regexp.MustCompile(`(?i)\b(?:every\s+)?(?:on\s+)?weekdays\b`),
		regexp.MustCompile(`(?i)\b(?:every\s*day|daily)\b`),
		regexp.MustCompile(`(?i)\b(?:every\s+weekend|weekends)\b`),
		regexp.MustCompile(`(?i)(?:\bevery\s+)?(?:\bon\s+)?(?:` + weekdayListPattern + `)`),
		regexp.MustCompile(`(?i)\b(?:every\s+)?(?:` + weekdayNamePattern + `)\s*(?:-|–|to|through|thru|until)\s*(?:` + weekdayNamePattern + `)\b`),
		regexp.MustCompile(`(?i)\b(?:` + weekdayAbbrPattern + `)\s*(?:-|–|to|through|thru)\s*(?:` + weekdayAbbrPattern + `)\b`),
		regexp.MustCompile(`(?i)\bevery\s+(?:` + weekdayNamePattern + `)(?:\s*(?:,|and|&)\s*(?:` + weekdayNamePattern + `))*\b`),
		regexp.MustCompile(`(?i)\b(?:on\s+)?(?:` + weekdayNamePattern + `)s\b`),
	}

	danglingLeadRe  = regexp.MustCompile(`(?i)^(?:on|at|from|for|this|next|the|in|by|every|starting|and|,|-)\s+`)
	danglingTrailRe = regexp.MustCompile(`(?i)\s+(?:on|at|from|for|this|next|the|in|by|every|starting|and|,|-)$`)
	danglingPunctRe = regexp.MustCompile(`^[\s,;:.\-–]+|[\s,;:.\-–]+$`)
	spaceRe         = regexp.MustCompile(`\s+`)
)

// Strip removes every time, date and recurrence phrase from text and trims
// the connectors those phrases leave behind, leaving the descriptive rest.
func Strip(text string) string {
	text = stripRecurrence(text)
	text = stripDayNumberRe.ReplaceAllString(text, "$1")
	for _, re := range stripClockRes {
		text = re.ReplaceAllString(text, " ")
	}
	for _, re := range stripDateRes {
		text = re.ReplaceAllString(text, " ")
	}
	return TrimConnectors(text)
}

// TrimConnectors collapses whitespace and repeatedly drops connector words
// left dangling at either edge.
func TrimConnectors(text string) string {
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	for {
		prev := text
		text = danglingPunctRe.ReplaceAllString(text, "")
		text = danglingLeadRe.ReplaceAllString(text, "")
		text = danglingTrailRe.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if text == prev {
			return text
		}
	}
}

func stripRecurrence(text string) string {
	for _, re := range stripRecurrenceRes {
		text = re.ReplaceAllString(text, " ")
	}
	return spaceRe.ReplaceAllString(text, " ")
}
