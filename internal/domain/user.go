package domain

import (
	"fmt"
	"time"
)

// Role enumerates the account types a user can hold. Exactly one per user;
// it drives every authorization decision.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// ParseRole validates a role string against the closed set.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleDoctor, RolePatient:
		return Role(value), nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// User is an account scoped to exactly one hospital.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	HospitalID   string
	CreatedAt    time.Time
}
