package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

// HospitalUpdate carries optional fields for a partial hospital update.
type HospitalUpdate struct {
	Name    *string
	Address *string
	Phone   *string
}

// HospitalRepository defines persistence access for hospitals.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *domain.Hospital) error
	GetByID(ctx context.Context, id string) (*domain.Hospital, error)
	Update(ctx context.Context, id string, update HospitalUpdate) (*domain.Hospital, error)
}

type hospitalRepository struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository returns a Postgres-backed implementation.
func NewHospitalRepository(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepository{pool: pool}
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *domain.Hospital) error {
	const query = `
        INSERT INTO hospitals (id, name, address, phone)
        VALUES ($1, $2, $3, $4)
        RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		hospital.ID,
		hospital.Name,
		hospital.Address,
		hospital.Phone,
	).Scan(&hospital.CreatedAt)
}

func (r *hospitalRepository) GetByID(ctx context.Context, id string) (*domain.Hospital, error) {
	const query = `
        SELECT id, name, address, phone, created_at
        FROM hospitals WHERE id=$1`

	var hospital domain.Hospital
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospital.Phone,
		&hospital.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) Update(ctx context.Context, id string, update HospitalUpdate) (*domain.Hospital, error) {
	const query = `
        UPDATE hospitals
        SET name = COALESCE($1, name), address = COALESCE($2, address), phone = COALESCE($3, phone)
        WHERE id = $4
        RETURNING id, name, address, phone, created_at`

	var hospital domain.Hospital
	if err := r.pool.QueryRow(ctx, query,
		update.Name,
		update.Address,
		update.Phone,
		id,
	).Scan(
		&hospital.ID,
		&hospital.Name,
		&hospital.Address,
		&hospital.Phone,
		&hospital.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &hospital, nil
}
