package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/josemtz/hotel-reservation/internal/model"
)

// ReservationRepo provides read and lifecycle operations for the
// RESERVATIONS table. Creation goes through the BookingGateway so the
// room claim and the insert share one transaction; this repository
// covers everything after that: listing, cancellation, rescheduling
// and the unpaid-reservation reconciliation view.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle for handler-scoped transactions.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// ReservationDetail is a reservation row joined with its customer and
// room. Each load rebuilds the referenced entities from the joined
// columns as fresh values; identity with objects already in memory is
// not preserved.
type ReservationDetail struct {
	ID        uint64         `json:"id"`
	CheckIn   string         `json:"check_in"`
	CheckOut  string         `json:"check_out"`
	Status    string         `json:"status"`
	TotalCost uint32         `json:"total_cost_cents"`
	PaymentID *uint64        `json:"payment_id,omitempty"`
	Customer  model.Customer `json:"customer"`
	Room      model.Room     `json:"room"`
}

const detailQuery = `SELECT r.reservation_id, r.check_in_date, r.check_out_date, r.status, r.total_cost, r.payment_id,
	       c.customer_id, c.first_name, c.second_name, c.last_name, c.second_last_name, c.phone, c.email, c.state, c.curp,
	       rm.room_id, rm.room_number, rm.room_type, rm.status, rm.cost_per_night, rm.description
	FROM RESERVATIONS r
	JOIN CUSTOMERS c ON c.customer_id = r.customer_id
	JOIN ROOMS rm ON rm.room_id = r.room_id`

func scanDetail(row interface {
	Scan(dest ...interface{}) error
}) (*ReservationDetail, error) {
	var d ReservationDetail
	var checkIn, checkOut time.Time
	var paymentID sql.NullInt64
	err := row.Scan(
		&d.ID, &checkIn, &checkOut, &d.Status, &d.TotalCost, &paymentID,
		&d.Customer.ID, &d.Customer.FirstName, &d.Customer.SecondName, &d.Customer.LastName,
		&d.Customer.SecondLastName, &d.Customer.Phone, &d.Customer.Email, &d.Customer.State, &d.Customer.CURP,
		&d.Room.ID, &d.Room.Number, &d.Room.Type, &d.Room.Status, &d.Room.CostPerNight, &d.Room.Description,
	)
	if err != nil {
		return nil, err
	}
	d.CheckIn = checkIn.Format("2006-01-02")
	d.CheckOut = checkOut.Format("2006-01-02")
	if paymentID.Valid {
		pid := uint64(paymentID.Int64)
		d.PaymentID = &pid
	}
	return &d, nil
}

// GetByID returns a single reservation with its customer and room
// rehydrated from the join. sql.ErrNoRows when the id does not exist.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*ReservationDetail, error) {
	return scanDetail(r.db.QueryRowContext(ctx, detailQuery+` WHERE r.reservation_id = ?`, id))
}

func (r *ReservationRepo) list(ctx context.Context, where string, args ...interface{}) ([]ReservationDetail, error) {
	rows, err := r.db.QueryContext(ctx, detailQuery+where+` ORDER BY r.reservation_id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ReservationDetail, 0)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

// GetAll returns every reservation, newest first.
func (r *ReservationRepo) GetAll(ctx context.Context) ([]ReservationDetail, error) {
	return r.list(ctx, ``)
}

// ListByCustomer returns a guest's reservations, newest first. An
// empty slice is returned when the guest has none.
func (r *ReservationRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]ReservationDetail, error) {
	return r.list(ctx, ` WHERE r.customer_id = ?`, customerID)
}

// ListUnpaid returns Active reservations with no linked payment. These
// are the rows a crash between the payment insert and the link step
// leaves behind; surfacing them makes the inconsistency reconcilable.
func (r *ReservationRepo) ListUnpaid(ctx context.Context) ([]ReservationDetail, error) {
	return r.list(ctx, ` WHERE r.status = 'Active' AND r.payment_id IS NULL`)
}

// CancelTx marks a reservation Cancelled inside the given transaction
// and reports the owning customer and held room so the caller can check
// authorization and release the room in the same transaction. It
// returns sql.ErrNoRows when the reservation does not exist and
// ErrConflict when it is not Active (already cancelled).
func (r *ReservationRepo) CancelTx(ctx context.Context, tx *sql.Tx, id uint64) (customerID, roomID uint64, err error) {
	const sel = `SELECT customer_id, room_id FROM RESERVATIONS WHERE reservation_id = ? FOR UPDATE`
	if err = tx.QueryRowContext(ctx, sel, id).Scan(&customerID, &roomID); err != nil {
		return 0, 0, err
	}
	const upd = `UPDATE RESERVATIONS SET status = 'Cancelled' WHERE reservation_id = ? AND status = 'Active'`
	res, err := tx.ExecContext(ctx, upd, id)
	if err != nil {
		return 0, 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return customerID, roomID, ErrConflict
	}
	return customerID, roomID, nil
}

// UpdateDates rewrites either or both date columns. Nil leaves a
// column unchanged. No availability re-validation happens here: the
// room stays claimed by this reservation whatever the new range.
func (r *ReservationRepo) UpdateDates(ctx context.Context, id uint64, checkIn, checkOut *string) error {
	if checkIn == nil && checkOut == nil {
		return nil
	}
	q := `UPDATE RESERVATIONS SET `
	args := []interface{}{}
	if checkIn != nil {
		q += `check_in_date = ?`
		args = append(args, *checkIn)
	}
	if checkOut != nil {
		if checkIn != nil {
			q += `, `
		}
		q += `check_out_date = ?`
		args = append(args, *checkOut)
	}
	q += ` WHERE reservation_id = ?`
	args = append(args, id)
	// RowsAffected is not checked: MySQL reports zero when the new
	// values equal the old ones. Existence is the caller's concern.
	_, err := r.db.ExecContext(ctx, q, args...)
	return err
}
