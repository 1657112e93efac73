package repository

import (
	"context"
	"database/sql"

	"github.com/josemtz/hotel-reservation/internal/model"
)

// RoomRepo encapsulates database operations for the ROOMS table.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions
// that span several repositories.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// Create inserts a room and writes the generated id back onto the
// model. New rooms start Available unless the caller says otherwise.
func (r *RoomRepo) Create(ctx context.Context, m *model.Room) (uint64, error) {
	if m.Status == "" {
		m.Status = "Available"
	}
	const q = `INSERT INTO ROOMS (room_number, room_type, status, cost_per_night, description) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Number, m.Type, m.Status, m.CostPerNight, m.Description)
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

// GetByID fetches a single room. sql.ErrNoRows is returned when the id
// does not exist.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT room_id, room_number, room_type, status, cost_per_night, description FROM ROOMS WHERE room_id = ?`
	var m model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Number, &m.Type, &m.Status, &m.CostPerNight, &m.Description)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll returns every room, optionally filtered by status. An empty
// status returns the whole catalog, ordered by room number.
func (r *RoomRepo) GetAll(ctx context.Context, status string) ([]model.Room, error) {
	q := `SELECT room_id, room_number, room_type, status, cost_per_night, description FROM ROOMS`
	args := []interface{}{}
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY room_number`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Room, 0)
	for rows.Next() {
		var m model.Room
		if err := rows.Scan(&m.ID, &m.Number, &m.Type, &m.Status, &m.CostPerNight, &m.Description); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update rewrites the administrative columns of a room. The status
// column is owned by the booking flow and deliberately not touched
// here; use Claim/Release/SetStatus for transitions.
func (r *RoomRepo) Update(ctx context.Context, m *model.Room) error {
	const q = `UPDATE ROOMS SET room_number = ?, room_type = ?, cost_per_night = ?, description = ? WHERE room_id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Number, m.Type, m.CostPerNight, m.Description, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SetStatus moves a room into an explicit state, used for maintenance
// transitions. Booking paths use ClaimTx/ReleaseTx instead.
func (r *RoomRepo) SetStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE ROOMS SET status = ? WHERE room_id = ?`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a room. A room referenced by any reservation,
// historical or active, must not disappear, so the delete is refused
// with ErrConflict while references exist.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM RESERVATIONS WHERE room_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM ROOMS WHERE room_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ClaimTx flips a room from Available to Occupied as a single
// conditional update inside the given transaction. The WHERE clause
// makes the check-then-act atomic: a false return means some other
// booking already holds the room (or it is under maintenance) and
// nothing changed.
func (r *RoomRepo) ClaimTx(ctx context.Context, tx *sql.Tx, id uint64) (bool, error) {
	const q = `UPDATE ROOMS SET status = 'Occupied' WHERE room_id = ? AND status = 'Available'`
	res, err := tx.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ReleaseTx unconditionally returns a room to Available inside the
// given transaction. Releasing an already-available room affects zero
// rows and is not an error.
func (r *RoomRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, `UPDATE ROOMS SET status = 'Available' WHERE room_id = ?`, id)
	return err
}
