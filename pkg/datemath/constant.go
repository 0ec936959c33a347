package datemath

import "time"

// DateFormatISO is the date layout exchanged with the remote extractor.
const DateFormatISO = "2006-01-02"

// Default clock values for part-of-day words.
var (
	ClockNoon      = Clock{Hour: 12}
	ClockMorning   = Clock{Hour: 9}
	ClockAfternoon = Clock{Hour: 14}
	ClockEvening   = Clock{Hour: 18}
	ClockTonight   = Clock{Hour: 19}
)

// BarePMCutoff is the hour below which a number with no am/pm marker is read
// as afternoon ("at 3" means 3pm). This is a usability heuristic, not a rule
// of the domain.
const BarePMCutoff = 7

const weekdayNamePattern = `monday|tuesday|wednesday|thursday|friday|saturday|sunday`

// Longest forms first so alternation never settles on a prefix.
const weekdayAbbrPattern = `thurs|thur|thu|tues|tue|mon|wed|fri|sat|sun|th|tu|mo|we|fr|sa|su|m|t|w|f`

// Abbreviations of two letters or more, for slash-separated lists where a
// lone "w" would collide with "w/".
const weekdayAbbr2Pattern = `thurs|thur|thu|tues|tue|mon|wed|fri|sat|sun|th|tu|mo|we|fr|sa|su`

// weekdayListPattern matches chained day lists: "m-w-f", "mon/wed/fri",
// "tu/th". A hyphen pair ("m-f") is a range and is left to the range rules.
const weekdayListPattern = `\b(?:` + weekdayNamePattern + `|` + weekdayAbbr2Pattern + `)(?:\s*/\s*(?:` + weekdayNamePattern + `|` + weekdayAbbr2Pattern + `))+\b` +
	`|\b(?:` + weekdayNamePattern + `|` + weekdayAbbrPattern + `)(?:\s*-\s*(?:` + weekdayNamePattern + `|` + weekdayAbbrPattern + `)){2,}\b`

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var weekdayByAbbr = map[string]time.Weekday{
	"su": time.Sunday, "sun": time.Sunday,
	"m": time.Monday, "mo": time.Monday, "mon": time.Monday,
	"t": time.Tuesday, "tu": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"w": time.Wednesday, "we": time.Wednesday, "wed": time.Wednesday,
	"th": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"f": time.Friday, "fr": time.Friday, "fri": time.Friday,
	"sa": time.Saturday, "sat": time.Saturday,
}

var numberWords = map[string]int{
	"a": 1, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
	"seven": 7, "eight": 8, "nine": 9, "ten": 10, "eleven": 11, "twelve": 12,
}
