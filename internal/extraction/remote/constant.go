package remote

const (
	temperature = 0.1
	maxTokens   = 1024

	maxDurationMinutes = 24 * 60
)

const timeContextTemplate = `[TIME CONTEXT]
- Now: %s (%s), UTC offset %s
- Today: %s
- Tomorrow: %s
- This week: %s to %s (Monday to Sunday)`

const systemPrompt = `You extract calendar events for a shared household calendar.
Reply with ONE JSON object and nothing else, using exactly these fields:

{
  "title": string, short and capitalised, without date or time words,
  "date": "YYYY-MM-DD", the first day of the event in the user's local time,
  "start_hour": integer 0-23,
  "start_minute": integer 0-59,
  "duration_minutes": integer 1-1440,
  "location": string or "",
  "attendees": [string], people mentioned who are not household members,
  "description": string or "",
  "recurring_days": [integer 0-6] (0=Sunday) or [] for a one-off event,
  "recurring_weeks": integer, 0 when the user gave no week count,
  "assigned_members": [string], household member names the event is for,
  "everyone": boolean, true only when the user said the event is for the whole family
}

Rules:
1. Resolve relative dates ("tomorrow", "next tuesday") against the time context.
2. A bare hour below 7 with no am/pm means afternoon ("at 3" is 15:00).
3. For a range like "9am-4pm" set start and duration from the range.
4. Ranges of days such as "m-f" or "monday to friday" are recurring_days, and "date" is the first of them on or after today.
5. Never invent attendees, locations or members.`

const householdTemplate = `

[HOUSEHOLD]
- Members: %s
- Person chatting: %s`
