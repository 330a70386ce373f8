package events

import (
	"time"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventHospitalCreated           EventType = "hospital_created"
	EventAppointmentCreated        EventType = "appointment_created"
	EventAppointmentStatusChanged  EventType = "appointment_status_changed"
	EventBillIssued                EventType = "bill_issued"
	EventBillPaymentInitialized    EventType = "bill_payment_initialized"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID *string      `json:"user_id,omitempty"`
	Role   *domain.Role `json:"role,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AppointmentCreatedPayload payload.
type AppointmentCreatedPayload struct {
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Time      time.Time `json:"time"`
	Purpose   string    `json:"purpose"`
}

// AppointmentStatusChangedPayload payload.
type AppointmentStatusChangedPayload struct {
	OldStatus domain.AppointmentStatus `json:"old_status"`
	NewStatus domain.AppointmentStatus `json:"new_status"`
}

// BillIssuedPayload payload.
type BillIssuedPayload struct {
	AppointmentID string  `json:"appointment_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Reference     string  `json:"reference"`
}

// BillPaymentInitializedPayload payload.
type BillPaymentInitializedPayload struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

// HospitalCreatedPayload payload.
type HospitalCreatedPayload struct {
	Name       string `json:"name"`
	AdminEmail string `json:"admin_email"`
}
