package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/hospital-portal/internal/domain"
)

// BillRepository defines persistence access for bills.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	UpdateStatus(ctx context.Context, id string, status domain.BillStatus) error
}

type billRepository struct {
	pool *pgxpool.Pool
}

// NewBillRepository returns a Postgres-backed implementation.
func NewBillRepository(pool *pgxpool.Pool) BillRepository {
	return &billRepository{pool: pool}
}

func (r *billRepository) Create(ctx context.Context, bill *domain.Bill) error {
	const query = `
        INSERT INTO bills (id, reference, appointment_id, amount, currency, status)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.Reference,
		bill.AppointmentID,
		bill.Amount,
		bill.Currency,
		bill.Status,
	)
	return err
}

func (r *billRepository) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	const query = `
        SELECT id, reference, appointment_id, amount, currency, status
        FROM bills WHERE id=$1`

	var bill domain.Bill
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&bill.ID,
		&bill.Reference,
		&bill.AppointmentID,
		&bill.Amount,
		&bill.Currency,
		&bill.Status,
	); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) UpdateStatus(ctx context.Context, id string, status domain.BillStatus) error {
	const query = `UPDATE bills SET status = $1 WHERE id = $2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
