package repository

import (
	"context"
	"database/sql"

	"github.com/josemtz/hotel-reservation/internal/booking"
)

// BookingGateway implements the persistence gateways the front desk
// books through (booking.ReservationGateway, booking.PaymentGateway
// and booking.ServiceRequestGateway). It is the one place where the
// room claim and the reservation insert share a transaction, and where
// the payment link steps write back onto already-created rows.
type BookingGateway struct {
	db    *sql.DB
	rooms *RoomRepo
}

// NewBookingGateway wires the gateway to the database and the room
// repository used for the conditional claim.
func NewBookingGateway(db *sql.DB, rooms *RoomRepo) *BookingGateway {
	if db == nil || rooms == nil {
		panic("nil dependency passed to NewBookingGateway")
	}
	return &BookingGateway{db: db, rooms: rooms}
}

// CreateReservation claims the room row and inserts the reservation in
// one transaction, returning the generated identifier. When the
// conditional claim affects no row the room is taken (or under
// maintenance) and booking.ErrRoomUnavailable is returned, leaving
// storage untouched. The caller owns writing the id back onto its
// aggregate.
func (g *BookingGateway) CreateReservation(ctx context.Context, res *booking.Reservation) (uint64, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	claimed, err := g.rooms.ClaimTx(ctx, tx, res.Room().ID())
	if err != nil {
		return 0, err
	}
	if !claimed {
		return 0, booking.ErrRoomUnavailable
	}

	const q = `INSERT INTO RESERVATIONS (customer_id, room_id, check_in_date, check_out_date, status, total_cost)
	           VALUES (?, ?, ?, ?, 'Active', ?)`
	result, err := tx.ExecContext(ctx, q,
		res.Guest().ID(), res.Room().ID(),
		res.CheckIn().Format("2006-01-02"), res.CheckOut().Format("2006-01-02"),
		res.TotalCents())
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

// LinkPayment is the second write of the booking protocol: it stamps a
// previously created payment's id onto the reservation row. A false
// return means the reservation row was not found and the link did not
// happen; the caller must surface that rather than assume success.
func (g *BookingGateway) LinkPayment(ctx context.Context, reservationID, paymentID uint64) (bool, error) {
	const q = `UPDATE RESERVATIONS SET payment_id = ? WHERE reservation_id = ?`
	res, err := g.db.ExecContext(ctx, q, paymentID, reservationID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// LinkServicePayment stamps a payment id onto an unpaid service
// request. The condition keeps a request paid at most once: a row that
// is missing or already linked is left alone and false is returned.
func (g *BookingGateway) LinkServicePayment(ctx context.Context, requestID, paymentID uint64) (bool, error) {
	const q = `UPDATE SERVICE_RESERVATIONS SET payment_id = ? WHERE service_reservation_id = ? AND payment_id IS NULL`
	res, err := g.db.ExecContext(ctx, q, paymentID, requestID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreatePayment inserts a payment row and returns the generated
// identifier. The date comes from the domain object, which stamped it
// at construction; it is stored as given and never updated.
func (g *BookingGateway) CreatePayment(ctx context.Context, p *booking.Payment) (uint64, error) {
	const q = `INSERT INTO PAYMENTS (amount, payment_method, payment_date) VALUES (?, ?, ?)`
	res, err := g.db.ExecContext(ctx, q, p.AmountCents(), p.Method(), p.Date())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
