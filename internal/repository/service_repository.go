package repository

import (
	"context"
	"database/sql"

	"github.com/josemtz/hotel-reservation/internal/model"
)

// ServiceRepo encapsulates database operations for the SERVICES table.
type ServiceRepo struct {
	db *sql.DB
}

// NewServiceRepo returns a ServiceRepo bound to the given database.
func NewServiceRepo(db *sql.DB) *ServiceRepo { return &ServiceRepo{db: db} }

// Create inserts a catalog service and writes the generated id back
// onto the model.
func (r *ServiceRepo) Create(ctx context.Context, m *model.Service) (uint64, error) {
	const q = `INSERT INTO SERVICES (name, cost, description) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Cost, m.Description)
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

// GetByID fetches a single service.
func (r *ServiceRepo) GetByID(ctx context.Context, id uint64) (*model.Service, error) {
	const q = `SELECT service_id, name, cost, description FROM SERVICES WHERE service_id = ?`
	var m model.Service
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&m.ID, &m.Name, &m.Cost, &m.Description); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAll returns the whole service catalog ordered by name.
func (r *ServiceRepo) GetAll(ctx context.Context) ([]model.Service, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT service_id, name, cost, description FROM SERVICES ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Service, 0)
	for rows.Next() {
		var m model.Service
		if err := rows.Scan(&m.ID, &m.Name, &m.Cost, &m.Description); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update rewrites a service's administrative columns.
func (r *ServiceRepo) Update(ctx context.Context, m *model.Service) error {
	const q = `UPDATE SERVICES SET name = ?, cost = ?, description = ? WHERE service_id = ?`
	res, err := r.db.ExecContext(ctx, q, m.Name, m.Cost, m.Description, m.ID)
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

// Delete removes a service unless service reservations still reference
// it, in which case ErrConflict is returned and nothing changes.
func (r *ServiceRepo) Delete(ctx context.Context, id uint64) error {
	var refs int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM SERVICE_RESERVATIONS WHERE service_id = ?`, id).Scan(&refs); err != nil {
		return err
	}
	if refs > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM SERVICES WHERE service_id = ?`, id)
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
