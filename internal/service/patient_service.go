package service

import (
	"context"

	"github.com/spec-kit/hospital-portal/internal/auth"
	"github.com/spec-kit/hospital-portal/internal/domain"
	"github.com/spec-kit/hospital-portal/internal/repository"
	"github.com/spec-kit/hospital-portal/pkg/util"
)

const cardIDLength = 10

// PatientService manages the patient registry.
type PatientService struct {
	patients repository.PatientRepository
}

// NewPatientService builds the service.
func NewPatientService(patients repository.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

// CreatePatientInput carries the fields for a new patient.
type CreatePatientInput struct {
	Name       string
	Age        int
	Gender     string
	HospitalID *string
	UserID     *string
}

// CreatePatient registers a patient. Registering a patient into a hospital is
// an admin action scoped to that hospital.
func (s *PatientService) CreatePatient(ctx context.Context, claims *auth.Claims, input CreatePatientInput) (*domain.Patient, error) {
	if input.HospitalID != nil {
		if err := auth.Authorize(claims, domain.RoleAdmin, *input.HospitalID); err != nil {
			return nil, err
		}
	}

	patient := domain.NewPatient(input.Name, input.Age, input.Gender,
		util.RandomString(cardIDLength), input.HospitalID, input.UserID)
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, util.NewDatabaseError(err)
	}
	return patient, nil
}

// ListPatients returns all registered patients.
func (s *PatientService) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, util.NewDatabaseError(err)
	}
	return patients, nil
}
