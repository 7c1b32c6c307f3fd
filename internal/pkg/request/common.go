package request

import "time"

// DayFormat is the calendar-day layout used in query parameters.
const DayFormat = "2006-01-02"

// ParseDay parses a YYYY-MM-DD query value into a midnight-UTC day.
func ParseDay(v string) (time.Time, error) {
	return time.Parse(DayFormat, v)
}
