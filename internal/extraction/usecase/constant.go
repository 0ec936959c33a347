package usecase

import "time"

const (
	defaultRemoteTimeout = 8 * time.Second
	defaultWeekCount     = 8
	defaultMaxWeekCount  = 52

	maxDurationMinutes = 24 * 60

	recurrenceIDPrefix = "rec_"
	dayLayout          = "Mon 1/2"
)

const (
	hintMessage = `I can add events to the household calendar. Try "coffee with george tomorrow 3", ` +
		`"dentist thursday 2pm" or "ellie preschool m-f 9am-4pm for 8 weeks".`
	deleteMessage        = "I can't delete events from chat yet. Open the event on the calendar to remove it, or remove a repeating event together with all its future dates."
	deleteSubjectMessage = "I can't delete events from chat yet. Open %q on the calendar to remove it, or remove it together with all its future dates if it repeats."
	queryMessage         = "I can only add events from chat for now. The weekly view shows everything that's planned."
	queryDayMessage      = "I can only add events from chat for now. Open %s on the weekly view to see what's planned."
)
