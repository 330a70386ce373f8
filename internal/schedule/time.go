package schedule

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// timezone abbreviations accepted in booking time literals.
var timezoneOffsets = []struct {
	abbrev string
	offset string
}{
	{"WAT", "+01:00"},
	{"CAT", "+02:00"},
	{"EAT", "+03:00"},
	{"GMT", "+00:00"},
}

// layouts accepted for the combined date-time literal. All carry an explicit
// offset; anything else fails strict parsing.
var resolveLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05 -07:00",
	"2006-01-02T15:04 -07:00",
	"2006-01-02T15:04-07:00",
}

// TimeResolver converts (day name, local time literal) pairs into absolute UTC
// instants. The clock is injectable so next-occurrence math is testable.
type TimeResolver struct {
	now func() time.Time
}

// NewTimeResolver builds a resolver on the real clock.
func NewTimeResolver() *TimeResolver {
	return &TimeResolver{now: time.Now}
}

// NewTimeResolverAt builds a resolver on a fixed clock.
func NewTimeResolverAt(now func() time.Time) *TimeResolver {
	return &TimeResolver{now: now}
}

// NormalizeTimezone replaces recognized zone abbreviations with explicit UTC
// offsets. Unrecognized abbreviations pass through unchanged and fail later at
// strict offset parsing.
func NormalizeTimezone(input string) string {
	normalized := strings.TrimSpace(input)
	for _, tz := range timezoneOffsets {
		normalized = strings.ReplaceAll(normalized, tz.abbrev, tz.offset)
	}
	return normalized
}

// NextOccurrence returns the nearest future calendar date falling on weekday.
// If today already is that weekday the result is seven days out, never today:
// day-name resolution always books a future occurrence.
func (r *TimeResolver) NextOccurrence(weekday time.Weekday) time.Time {
	today := r.now().UTC().Truncate(24 * time.Hour)
	daysUntil := (int(weekday) - int(today.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// Resolve parses the day name, computes its next occurrence, normalizes the
// timezone abbreviation in timeLiteral and strict-parses the combined literal
// as an offset date-time. The result is always in UTC.
func (r *TimeResolver) Resolve(day, timeLiteral string) (time.Time, error) {
	weekday, err := ParseDay(day)
	if err != nil {
		return time.Time{}, apperrors.NewUnprocessable("day", "Invalid day provided")
	}

	date := r.NextOccurrence(weekday)
	normalized := NormalizeTimezone(timeLiteral)
	full := fmt.Sprintf("%sT%s", date.Format("2006-01-02"), normalized)

	for _, layout := range resolveLayouts {
		if parsed, err := time.Parse(layout, full); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewUnprocessable("time",
		fmt.Sprintf("Could not parse time: %s", full))
}
