package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is the tenant boundary: users, patients and doctors belong to one.
type Hospital struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	CreatedAt time.Time
}

// NewHospital builds a hospital with a fresh id.
func NewHospital(name, address, phone string) *Hospital {
	return &Hospital{
		ID:        uuid.NewString(),
		Name:      name,
		Address:   address,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
}
