package dto

// CreatePatientRequest payload for registering a patient.
type CreatePatientRequest struct {
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Gender     string  `json:"gender"`
	HospitalID *string `json:"hospital_id"`
	UserID     *string `json:"user_id"`
}
