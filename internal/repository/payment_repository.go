package repository

import (
	"context"
	"database/sql"

	"github.com/josemtz/hotel-reservation/internal/model"
)

// PaymentRepo reads and writes the PAYMENTS table. Room-booking
// settlements go through the BookingGateway so the link step stays
// with the insert; this repo serves direct settlements (service
// requests) and lookups.
type PaymentRepo struct {
	db *sql.DB
}

// NewPaymentRepo returns a PaymentRepo bound to the given database.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// Create inserts a payment row and writes the generated id back onto
// the model. Rows are never updated afterwards.
func (r *PaymentRepo) Create(ctx context.Context, m *model.Payment) (uint64, error) {
	const q = `INSERT INTO PAYMENTS (amount, payment_method, payment_date) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Amount, m.Method, m.Date)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	m.ID = uint64(id)
	return m.ID, nil
}

// GetByID fetches a single payment.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (*model.Payment, error) {
	const q = `SELECT payment_id, amount, payment_method, payment_date FROM PAYMENTS WHERE payment_id = ?`
	var m model.Payment
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Amount, &m.Method, &m.Date); err != nil {
		return nil, err
	}
	return &m, nil
}
