package schedule

import (
	"fmt"
	"time"
)

// ValidDays lists the canonical day names accepted everywhere a day is parsed.
// Case-sensitive, English, no abbreviations. Both time resolution and doctor
// availability validate against this single set.
var ValidDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

var weekdaysByName = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// IsValidDay reports whether day is one of the canonical names.
func IsValidDay(day string) bool {
	_, ok := weekdaysByName[day]
	return ok
}

// ParseDay resolves a canonical day name to its weekday.
func ParseDay(day string) (time.Weekday, error) {
	weekday, ok := weekdaysByName[day]
	if !ok {
		return 0, fmt.Errorf("invalid day %q", day)
	}
	return weekday, nil
}
