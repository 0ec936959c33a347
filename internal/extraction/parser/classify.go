package parser

import (
	"regexp"
	"strings"

	"household-calendar/pkg/datemath"
)

// Intent is what an utterance asks for.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentCreate
	IntentDelete
	IntentQuery
)

func (i Intent) String() string {
	switch i {
	case IntentCreate:
		return "create"
	case IntentDelete:
		return "delete"
	case IntentQuery:
		return "query"
	default:
		return "unknown"
	}
}

// Classify decides the intent of text. Delete and query phrasing are checked
// before create. An utterance is a create request when it starts with an
// action verb, names an event keyword, or carries both a day and a time.
func Classify(text string) Intent {
	if strings.TrimSpace(text) == "" {
		return IntentUnknown
	}
	switch {
	case deleteRe.MatchString(text):
		return IntentDelete
	case queryRe.MatchString(text):
		return IntentQuery
	case leadingVerbRe.MatchString(text),
		eventKeywordRe.MatchString(text),
		datemath.HasDatePhrase(text) && datemath.ResolveClock(text).Found():
		return IntentCreate
	}
	return IntentUnknown
}

var subjectLeadRe = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:cancel|delete|remove|clear|what(?:'s|s)?|when(?:'s)?|show|list|do\s+(?:i|we)\s+have|am\s+i|is\s+there|are\s+there)\b\s*(?:(?:my|the|our|all|a|an|is|on|for|anything|any|me)\s+)*`)

// Subject returns the title a delete or query utterance refers to, or ""
// when only date and time words remain.
func Subject(text string) string {
	rest := subjectLeadRe.ReplaceAllString(text, "")
	rest = strings.TrimRight(rest, "?!. ")
	title := ExtractAttributes(rest).Title
	if title == PlaceholderTitle {
		return ""
	}
	return title
}
