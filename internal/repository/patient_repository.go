package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

// PatientRepository defines persistence access for the patient registry.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context) ([]domain.Patient, error)
}

type patientRepository struct {
	pool *pgxpool.Pool
}

// NewPatientRepository returns a Postgres-backed implementation.
func NewPatientRepository(pool *pgxpool.Pool) PatientRepository {
	return &patientRepository{pool: pool}
}

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	const query = `
        INSERT INTO patients (id, name, age, card_id, gender, hospital_id, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		patient.ID,
		patient.Name,
		patient.Age,
		patient.CardID,
		patient.Gender,
		patient.HospitalID,
		patient.UserID,
	)
	return err
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	const query = `
        SELECT id, name, age, card_id, gender, hospital_id, user_id
        FROM patients WHERE id=$1`

	var patient domain.Patient
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&patient.ID,
		&patient.Name,
		&patient.Age,
		&patient.CardID,
		&patient.Gender,
		&patient.HospitalID,
		&patient.UserID,
	); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	const query = `
        SELECT id, name, age, card_id, gender, hospital_id, user_id
        FROM patients ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]domain.Patient, 0)
	for rows.Next() {
		var patient domain.Patient
		if err := rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.Age,
			&patient.CardID,
			&patient.Gender,
			&patient.HospitalID,
			&patient.UserID,
		); err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}
	return patients, rows.Err()
}
