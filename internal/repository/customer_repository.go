package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/utils"
)

// CustomerRepo provides CRUD operations for the CUSTOMERS table.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo returns a CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerColumns = `customer_id, first_name, second_name, last_name, second_last_name, phone, email, state, curp, password_hash`

// Create registers a customer, hashing the plaintext password with
// bcrypt before it touches the database, and writes the generated id
// back onto the model. A duplicate email yields ErrEmailExists.
func (r *CustomerRepo) Create(ctx context.Context, m *model.Customer, password string, cost int) (uint64, error) {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	m.PasswordHash = hash
	const q = `INSERT INTO CUSTOMERS (first_name, second_name, last_name, second_last_name, phone, email, state, curp, password_hash)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.FirstName, m.SecondName, m.LastName, m.SecondLastName, m.Phone, m.Email, m.State, m.CURP, m.PasswordHash)
	if err != nil {
		// 1062 is the MySQL duplicate-key error for the unique email index.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	m.ID = uint64(id)
	return m.ID, nil
}

// GetByEmail fetches a customer by normalized email. sql.ErrNoRows is
// returned when no such account exists.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var m model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM CUSTOMERS WHERE email = ? LIMIT 1`, email).
		Scan(&m.ID, &m.FirstName, &m.SecondName, &m.LastName, &m.SecondLastName, &m.Phone, &m.Email, &m.State, &m.CURP, &m.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID fetches a customer by id.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	var m model.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM CUSTOMERS WHERE customer_id = ? LIMIT 1`, id).
		Scan(&m.ID, &m.FirstName, &m.SecondName, &m.LastName, &m.SecondLastName, &m.Phone, &m.Email, &m.State, &m.CURP, &m.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll returns every registered customer ordered by surname.
func (r *CustomerRepo) GetAll(ctx context.Context) ([]model.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM CUSTOMERS ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Customer, 0)
	for rows.Next() {
		var m model.Customer
		if err := rows.Scan(&m.ID, &m.FirstName, &m.SecondName, &m.LastName, &m.SecondLastName, &m.Phone, &m.Email, &m.State, &m.CURP, &m.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
