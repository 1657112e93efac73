package repository

import (
	"context"
	"database/sql"

	"github.com/josemtz/hotel-reservation/internal/model"
)

// ServiceReservationRepo provides CRUD operations for the
// SERVICE_RESERVATIONS table. Rows carry no exclusivity: any number of
// guests may hold requests against the same service.
type ServiceReservationRepo struct {
	db *sql.DB
}

// NewServiceReservationRepo returns a repo bound to the given database.
func NewServiceReservationRepo(db *sql.DB) *ServiceReservationRepo {
	return &ServiceReservationRepo{db: db}
}

// Create inserts a service request and writes the generated id back
// onto the model.
func (r *ServiceReservationRepo) Create(ctx context.Context, m *model.ServiceReservation) (uint64, error) {
	const q = `INSERT INTO SERVICE_RESERVATIONS (customer_id, service_id, requested_at) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.CustomerID, m.ServiceID, m.RequestedAt)
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

// ServiceReservationDetail joins a request with its service columns for
// display. The customer is identified by id only; listings are already
// scoped per guest. A nil PaymentID marks an unpaid request.
type ServiceReservationDetail struct {
	ID          uint64  `json:"id"`
	CustomerID  uint64  `json:"customer_id"`
	RequestedAt string  `json:"requested_at"`
	ServiceID   uint64  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	CostCents   uint32  `json:"cost_cents"`
	PaymentID   *uint64 `json:"payment_id,omitempty"`
}

// ListByCustomer returns a guest's service requests in insertion order.
func (r *ServiceReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]ServiceReservationDetail, error) {
	const q = `SELECT sr.service_reservation_id, sr.customer_id, sr.requested_at, sr.payment_id, s.service_id, s.name, s.cost
	           FROM SERVICE_RESERVATIONS sr
	           JOIN SERVICES s ON s.service_id = sr.service_id
	           WHERE sr.customer_id = ?
	           ORDER BY sr.service_reservation_id`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ServiceReservationDetail, 0)
	for rows.Next() {
		d, err := scanServiceDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func scanServiceDetail(row interface {
	Scan(dest ...interface{}) error
}) (*ServiceReservationDetail, error) {
	var d ServiceReservationDetail
	var paymentID sql.NullInt64
	err := row.Scan(&d.ID, &d.CustomerID, &d.RequestedAt, &paymentID, &d.ServiceID, &d.ServiceName, &d.CostCents)
	if err != nil {
		return nil, err
	}
	if paymentID.Valid {
		pid := uint64(paymentID.Int64)
		d.PaymentID = &pid
	}
	return &d, nil
}

// GetByID fetches a single request with its service columns.
func (r *ServiceReservationRepo) GetByID(ctx context.Context, id uint64) (*ServiceReservationDetail, error) {
	const q = `SELECT sr.service_reservation_id, sr.customer_id, sr.requested_at, sr.payment_id, s.service_id, s.name, s.cost
	           FROM SERVICE_RESERVATIONS sr
	           JOIN SERVICES s ON s.service_id = sr.service_id
	           WHERE sr.service_reservation_id = ?`
	return scanServiceDetail(r.db.QueryRowContext(ctx, q, id))
}

// Delete removes a request by id. A false return means the id was
// absent, which is a normal not-found outcome for the caller.
func (r *ServiceReservationRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM SERVICE_RESERVATIONS WHERE service_reservation_id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
