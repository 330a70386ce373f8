package domain

import "github.com/google/uuid"

// Patient is a registry entry; it may reference a hospital and a user account.
type Patient struct {
	ID         string
	Name       string
	Age        int
	CardID     string
	Gender     string
	HospitalID *string
	UserID     *string
}

// NewPatient builds a patient with a fresh id and card number.
func NewPatient(name string, age int, gender, cardID string, hospitalID, userID *string) *Patient {
	return &Patient{
		ID:         uuid.NewString(),
		Name:       name,
		Age:        age,
		CardID:     cardID,
		Gender:     gender,
		HospitalID: hospitalID,
		UserID:     userID,
	}
}
