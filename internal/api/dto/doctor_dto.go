package dto

// CreateDoctorRequest payload for registering a doctor.
type CreateDoctorRequest struct {
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	VisitingHours  string   `json:"visiting_hours"`
	AvailableDays  []string `json:"available_days"`
}
