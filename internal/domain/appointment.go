package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus enumerates appointment lifecycle states.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusDone      AppointmentStatus = "Done"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// ParseAppointmentStatus validates a status string against the closed set.
func ParseAppointmentStatus(value string) (AppointmentStatus, error) {
	switch AppointmentStatus(value) {
	case AppointmentStatusScheduled, AppointmentStatusDone, AppointmentStatusCancelled:
		return AppointmentStatus(value), nil
	default:
		return "", fmt.Errorf("invalid status value: %s", value)
	}
}

// Terminal reports whether the status has no outgoing transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusDone || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether the state machine permits moving to next.
// Only Scheduled->Done and Scheduled->Cancelled are defined.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	return s == AppointmentStatusScheduled && next.Terminal()
}

// Appointment is a booking of a patient with a doctor at a UTC instant.
type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	Purpose   string
	Time      time.Time
	Status    AppointmentStatus
	Price     float64
}

// NewAppointment builds a Scheduled appointment with a fresh id.
func NewAppointment(patientID, doctorID, purpose string, at time.Time, price float64) *Appointment {
	return &Appointment{
		ID:        uuid.NewString(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Purpose:   purpose,
		Time:      at.UTC(),
		Status:    AppointmentStatusScheduled,
		Price:     price,
	}
}
