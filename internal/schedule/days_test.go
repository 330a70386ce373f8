package schedule

import (
	"testing"
	"time"
)

func TestParseDayCanonicalNames(t *testing.T) {
	expected := map[string]time.Weekday{
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
		"Sunday":    time.Sunday,
	}
	for name, weekday := range expected {
		got, err := ParseDay(name)
		if err != nil {
			t.Fatalf("ParseDay(%q) returned error: %v", name, err)
		}
		if got != weekday {
			t.Errorf("ParseDay(%q) = %v, want %v", name, got, weekday)
		}
	}
}

func TestParseDayRejectsNonCanonicalNames(t *testing.T) {
	for _, name := range []string{"Funday", "monday", "MONDAY", "Mon", "", " Monday"} {
		if _, err := ParseDay(name); err == nil {
			t.Errorf("ParseDay(%q) succeeded, want error", name)
		}
		if IsValidDay(name) {
			t.Errorf("IsValidDay(%q) = true, want false", name)
		}
	}
}

func TestValidDaysAgreesWithParser(t *testing.T) {
	if len(ValidDays) != 7 {
		t.Fatalf("ValidDays has %d entries, want 7", len(ValidDays))
	}
	for _, day := range ValidDays {
		if !IsValidDay(day) {
			t.Errorf("IsValidDay(%q) = false for canonical day", day)
		}
	}
}
