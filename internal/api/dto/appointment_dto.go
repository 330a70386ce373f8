package dto

// CreateAppointmentRequest payload for booking. Day is a canonical English
// day name; Time is a local time literal, optionally with a zone abbreviation
// (e.g. "10:00 WAT").
type CreateAppointmentRequest struct {
	PatientID string `json:"patient_id"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Purpose   string `json:"purpose"`
}
