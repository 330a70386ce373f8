package schedule

import (
	"testing"
	"time"

	apperrors "github.com/spec-kit/hospital-portal/pkg/util"
)

// 2026-08-23 is a Sunday.
func fixedClock(t *testing.T, value string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad clock literal %q: %v", value, err)
	}
	return func() time.Time { return parsed }
}

func TestNormalizeTimezone(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"09:00 WAT", "09:00 +01:00"},
		{"09:00 CAT", "09:00 +02:00"},
		{"09:00 EAT", "09:00 +03:00"},
		{"09:00 GMT", "09:00 +00:00"},
		{"  09:00 WAT  ", "09:00 +01:00"},
		{"09:00 XYZ", "09:00 XYZ"},
		{"09:00+01:00", "09:00+01:00"},
	}
	for _, tc := range cases {
		if got := NormalizeTimezone(tc.input); got != tc.want {
			t.Errorf("NormalizeTimezone(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNextOccurrenceNeverReturnsToday(t *testing.T) {
	// Clock pinned to a Sunday; requesting Sunday must land seven days out.
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z"))

	got := resolver.NextOccurrence(time.Sunday)
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("NextOccurrence(Sunday) = %v, want %v", got, want)
	}
}

func TestNextOccurrenceNearestFutureDate(t *testing.T) {
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z")) // Sunday

	cases := []struct {
		weekday time.Weekday
		want    time.Time
	}{
		{time.Monday, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)},
		{time.Wednesday, time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)},
		{time.Saturday, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := resolver.NextOccurrence(tc.weekday); !got.Equal(tc.want) {
			t.Errorf("NextOccurrence(%v) = %v, want %v", tc.weekday, got, tc.want)
		}
	}
}

func TestResolveConvertsToUTC(t *testing.T) {
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z")) // Sunday

	// Next Wednesday is 2026-08-26; 10:00 WAT is 09:00 UTC.
	got, err := resolver.Resolve("Wednesday", "10:00 WAT")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
	if got.Location() != time.UTC {
		t.Errorf("Resolve returned non-UTC location %v", got.Location())
	}
}

func TestResolveAcceptsSecondsAndRFC3339(t *testing.T) {
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z"))

	got, err := resolver.Resolve("Monday", "08:30:00 EAT")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := time.Date(2026, 8, 24, 5, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
}

func TestResolveRejectsUnknownDay(t *testing.T) {
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z"))

	_, err := resolver.Resolve("Funday", "10:00 WAT")
	if err == nil {
		t.Fatal("Resolve succeeded for unknown day")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "UNPROCESSABLE_ENTITY" {
		t.Fatalf("code = %s, want UNPROCESSABLE_ENTITY", domainErr.Code)
	}
	if field := domainErr.Details["field"]; field != "day" {
		t.Errorf("field = %v, want day", field)
	}
}

func TestResolveRejectsUnknownTimezoneAbbreviation(t *testing.T) {
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z"))

	_, err := resolver.Resolve("Wednesday", "10:00 XYZ")
	if err == nil {
		t.Fatal("Resolve succeeded for unknown timezone abbreviation")
	}
	domainErr := apperrors.ToDomainError(err)
	if domainErr.Code != "UNPROCESSABLE_ENTITY" {
		t.Fatalf("code = %s, want UNPROCESSABLE_ENTITY", domainErr.Code)
	}
	if field := domainErr.Details["field"]; field != "time" {
		t.Errorf("field = %v, want time", field)
	}
}

func TestResolveRejectsMissingOffset(t *testing.T) {
	resolver := NewTimeResolverAt(fixedClock(t, "2026-08-23T12:00:00Z"))

	if _, err := resolver.Resolve("Wednesday", "10:00"); err == nil {
		t.Fatal("Resolve succeeded without an offset")
	}
}
