package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

// DoctorRepository is the practitioner directory: read access for scheduling,
// create for provisioning.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) error
	GetByID(ctx context.Context, id string) (*domain.Doctor, error)
	List(ctx context.Context) ([]domain.Doctor, error)
	ListAvailableOn(ctx context.Context, day string) ([]domain.Doctor, error)
}

type doctorRepository struct {
	pool *pgxpool.Pool
}

// NewDoctorRepository returns a Postgres-backed implementation.
func NewDoctorRepository(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepository{pool: pool}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *domain.Doctor) error {
	const query = `
        INSERT INTO doctors (id, name, specialization, visiting_hours, available_days)
        VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		doctor.ID,
		doctor.Name,
		doctor.Specialization,
		doctor.VisitingHours,
		doctor.AvailableDays,
	)
	return err
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*domain.Doctor, error) {
	const query = `
        SELECT id, name, specialization, visiting_hours, available_days
        FROM doctors WHERE id=$1`

	var doctor domain.Doctor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&doctor.ID,
		&doctor.Name,
		&doctor.Specialization,
		&doctor.VisitingHours,
		&doctor.AvailableDays,
	); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]domain.Doctor, error) {
	const query = `
        SELECT id, name, specialization, visiting_hours, available_days
        FROM doctors ORDER BY name`

	return r.queryDoctors(ctx, query)
}

func (r *doctorRepository) ListAvailableOn(ctx context.Context, day string) ([]domain.Doctor, error) {
	const query = `
        SELECT id, name, specialization, visiting_hours, available_days
        FROM doctors WHERE $1 = ANY(available_days)`

	return r.queryDoctors(ctx, query, day)
}

func (r *doctorRepository) queryDoctors(ctx context.Context, query string, args ...any) ([]domain.Doctor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	doctors := make([]domain.Doctor, 0)
	for rows.Next() {
		var doctor domain.Doctor
		if err := rows.Scan(
			&doctor.ID,
			&doctor.Name,
			&doctor.Specialization,
			&doctor.VisitingHours,
			&doctor.AvailableDays,
		); err != nil {
			return nil, err
		}
		doctors = append(doctors, doctor)
	}
	return doctors, rows.Err()
}
