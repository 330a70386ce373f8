package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	PatientID *string
	DoctorID  *string
}

// AppointmentRepository defines persistence access for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository returns a Postgres-backed implementation.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (id, patient_id, doctor_id, purpose, time, status, price)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		appointment.ID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Purpose,
		appointment.Time,
		appointment.Status,
		appointment.Price,
	)
	return err
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	const query = `
        SELECT id, patient_id, doctor_id, purpose, time, status, price
        FROM appointments WHERE id=$1`

	var appointment domain.Appointment
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&appointment.ID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.Purpose,
		&appointment.Time,
		&appointment.Status,
		&appointment.Price,
	); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error) {
	query := `
        SELECT id, patient_id, doctor_id, purpose, time, status, price
        FROM appointments`
	args := make([]any, 0, 2)

	if filter.PatientID != nil {
		args = append(args, *filter.PatientID)
		query += ` WHERE patient_id = $1`
	}
	if filter.DoctorID != nil {
		args = append(args, *filter.DoctorID)
		if filter.PatientID != nil {
			query += ` AND doctor_id = $2`
		} else {
			query += ` WHERE doctor_id = $1`
		}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		if err := rows.Scan(
			&appointment.ID,
			&appointment.PatientID,
			&appointment.DoctorID,
			&appointment.Purpose,
			&appointment.Time,
			&appointment.Status,
			&appointment.Price,
		); err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}
	return appointments, rows.Err()
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	const query = `UPDATE appointments SET status = $1 WHERE id = $2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
