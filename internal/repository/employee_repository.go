package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/josemtz/hotel-reservation/internal/model"
	"github.com/josemtz/hotel-reservation/internal/utils"
)

// EmployeeRepo provides CRUD operations for the EMPLOYEES table.
type EmployeeRepo struct {
	db *sql.DB
}

// NewEmployeeRepo returns an EmployeeRepo bound to the given database.
func NewEmployeeRepo(db *sql.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

const employeeColumns = `employee_id, first_name, last_name, email, role, password_hash`

// Create inserts a staff record with a bcrypt-hashed password and
// writes the generated id back onto the model. A duplicate email
// yields ErrEmailExists.
func (r *EmployeeRepo) Create(ctx context.Context, m *model.Employee, password string, cost int) (uint64, error) {
	m.Email = strings.ToLower(strings.TrimSpace(m.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	m.PasswordHash = hash
	const q = `INSERT INTO EMPLOYEES (first_name, last_name, email, role, password_hash) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.FirstName, m.LastName, m.Email, m.Role, m.PasswordHash)
	if err != nil {
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

// GetByEmail fetches an employee by normalized email.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var m model.Employee
	err := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM EMPLOYEES WHERE email = ? LIMIT 1`, email).
		Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Role, &m.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByID fetches an employee by id.
func (r *EmployeeRepo) GetByID(ctx context.Context, id uint64) (*model.Employee, error) {
	var m model.Employee
	err := r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM EMPLOYEES WHERE employee_id = ? LIMIT 1`, id).
		Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Role, &m.PasswordHash)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll returns every staff record ordered by surname.
func (r *EmployeeRepo) GetAll(ctx context.Context) ([]model.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM EMPLOYEES ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Employee, 0)
	for rows.Next() {
		var m model.Employee
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Role, &m.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
