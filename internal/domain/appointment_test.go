package domain

import (
	"testing"
	"time"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"Scheduled", "Done", "Cancelled"} {
		status, err := ParseAppointmentStatus(valid)
		if err != nil {
			t.Errorf("ParseAppointmentStatus(%q) returned error: %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("ParseAppointmentStatus(%q) = %q", valid, status)
		}
	}
	for _, invalid := range []string{"scheduled", "DONE", "Pending", ""} {
		if _, err := ParseAppointmentStatus(invalid); err == nil {
			t.Errorf("ParseAppointmentStatus(%q) succeeded, want error", invalid)
		}
	}
}

func TestAppointmentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{AppointmentStatusScheduled, AppointmentStatusDone, true},
		{AppointmentStatusScheduled, AppointmentStatusCancelled, true},
		{AppointmentStatusScheduled, AppointmentStatusScheduled, false},
		{AppointmentStatusDone, AppointmentStatusCancelled, false},
		{AppointmentStatusDone, AppointmentStatusScheduled, false},
		{AppointmentStatusCancelled, AppointmentStatusDone, false},
		{AppointmentStatusCancelled, AppointmentStatusScheduled, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	if AppointmentStatusScheduled.Terminal() {
		t.Error("Scheduled reported terminal")
	}
	if !AppointmentStatusDone.Terminal() {
		t.Error("Done not reported terminal")
	}
	if !AppointmentStatusCancelled.Terminal() {
		t.Error("Cancelled not reported terminal")
	}
}

func TestNewAppointmentDefaults(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	at := time.Date(2026, 8, 26, 10, 0, 0, 0, lagos)

	appointment := NewAppointment("p1", "d1", "checkup", at, 10000.00)
	if appointment.Status != AppointmentStatusScheduled {
		t.Errorf("status = %s, want Scheduled", appointment.Status)
	}
	if appointment.ID == "" {
		t.Error("id not assigned")
	}
	if appointment.Time.Location() != time.UTC {
		t.Errorf("time stored in %v, want UTC", appointment.Time.Location())
	}
	if !appointment.Time.Equal(at) {
		t.Errorf("time = %v, want instant of %v", appointment.Time, at)
	}
}
