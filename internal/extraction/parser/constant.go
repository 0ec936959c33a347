package parser

import (
	"regexp"

	"household-calendar/pkg/datemath"
)

const (
	// PlaceholderTitle replaces a title that cleans down to fewer than
	// minTitleLength characters.
	PlaceholderTitle = "New Event"

	// DefaultDurationMinutes applies when no keyword and no explicit range match.
	DefaultDurationMinutes = 60

	minTitleLength   = 3
	maxLocationWords = 4
)

// Duration keyword classes, first match wins. Order is part of the contract.
var durationRules = []durationRule{
	{re: regexp.MustCompile(`(?i)\b(?:coffee|lunch|drinks)\b`), minutes: 30},
	{re: regexp.MustCompile(`(?i)\b(?:meeting|sync|standup|1:1|one-on-one)\b`), minutes: 30},
	{re: regexp.MustCompile(`(?i)\b(?:dinner|movie)\b`), minutes: 90},
	{re: regexp.MustCompile(`(?i)\b(?:workout|gym|run)\b`), minutes: 60},
	{re: regexp.MustCompile(`(?i)\b(?:dentist|doctor|appointment)\b`), minutes: 60},
	{re: regexp.MustCompile(`(?i)\bquick\s+(?:chat|call)\b`), minutes: 15},
	{re: regexp.MustCompile(`(?i)\b(?:workshop|training)\b`), minutes: 120},
	{re: regexp.MustCompile(`(?i)\b(?:preschool|school|daycare|camp)\b`), minutes: 420},
}

// Default start clocks when the utterance names no time, first match wins.
var defaultStartRules = []defaultStartRule{
	{re: regexp.MustCompile(`(?i)\bbreakfast\b`), clock: datemath.Clock{Hour: 8}},
	{re: regexp.MustCompile(`(?i)\bbrunch\b`), clock: datemath.Clock{Hour: 11}},
	{re: regexp.MustCompile(`(?i)\blunch\b`), clock: datemath.Clock{Hour: 12}},
	{re: regexp.MustCompile(`(?i)\bdinner\b`), clock: datemath.Clock{Hour: 18}},
}

var (
	// Event and activity words mark an utterance as a create request. The
	// place-like ones also anchor the location heuristic ("preschool laurel
	// hill"); verbs such as "call mom" or "run errands" take an object instead.
	eventKeywordRe = regexp.MustCompile(`(?i)\b(?:` + placeKeywords + `|run|call|chat)\b`)
	placeKeywordRe = regexp.MustCompile(`(?i)\b(?:` + placeKeywords + `)\b`)

	leadingVerbRe = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:add|create|schedule|set\s+up|book|make|put)\b\s*(?:(?:a|an)\s+)?`)
	deleteRe      = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:cancel|delete|remove|clear)\b`)
	queryRe       = regexp.MustCompile(`(?i)^\s*(?:what(?:'s|s)?|when(?:'s)?|show|list|do\s+(?:i|we)\s+have|am\s+i|is\s+there|are\s+there)\b|\?\s*$`)
	everyoneRe    = regexp.MustCompile(`(?i)\b(?:for\s+)?(?:the\s+)?(?:whole|entire)\s+family\b|\b(?:for\s+)?(?:everyone|all\s+of\s+us)\b`)

	atLocationRe   = regexp.MustCompile(`(?i)\s+(?:at|@)\s+(.+?)(?:\s+(?:with|for)\s+.*)?$`)
	withTailRe     = regexp.MustCompile(`(?i)(?:^|\s+)with\b`)
	withRe         = regexp.MustCompile(`(?i)\bwith\s+(.+)$`)
	attendeeStopRe = regexp.MustCompile(`(?i)\s+(?:at|in|on|for|to|about|re)\s+`)
	attendeeSepRe  = regexp.MustCompile(`(?i)\s*(?:,|&|\band\b)\s*`)
	determinerRe   = regexp.MustCompile(`(?i)^(?:my|the|our)\s+`)
)

const placeKeywords = `coffee|lunch|drinks|dinner|breakfast|brunch|movie|meeting|sync|standup|1:1|one-on-one|` +
	`workout|gym|dentist|doctor|appointment|workshop|training|preschool|school|daycare|camp|` +
	`practice|class|lessons?|party|game|recital|playdate|haircut|yoga|swim|soccer|piano`

var locationStopWords = map[string]bool{
	"with": true, "for": true, "and": true, "to": true, "then": true,
	"about": true, "re": true, "regarding": true, "of": true, "on": true,
}

type durationRule struct {
	re      *regexp.Regexp
	minutes int
}

type defaultStartRule struct {
	re    *regexp.Regexp
	clock datemath.Clock
}
