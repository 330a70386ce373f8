package domain

import "github.com/google/uuid"

// Doctor is a practitioner record owned by the directory. AvailableDays holds
// canonical English day names ("Monday".."Sunday") on which bookings are accepted.
type Doctor struct {
	ID             string
	Name           string
	Specialization string
	VisitingHours  string
	AvailableDays  []string
}

// NewDoctor builds a doctor with a fresh id.
func NewDoctor(name, specialization, visitingHours string, availableDays []string) *Doctor {
	return &Doctor{
		ID:             uuid.NewString(),
		Name:           name,
		Specialization: specialization,
		VisitingHours:  visitingHours,
		AvailableDays:  availableDays,
	}
}

// AvailableOn reports whether the doctor accepts bookings on the given day.
func (d *Doctor) AvailableOn(day string) bool {
	for _, available := range d.AvailableDays {
		if available == day {
			return true
		}
	}
	return false
}
