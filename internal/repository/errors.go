// Package repository implements the persistence gateway over MySQL.
// Each entity gets a small repository holding a *sql.DB; multi-step
// mutations expose Tx variants so handlers can scope them to one
// transaction. The sentinel errors below let handlers translate
// failure shapes into status codes without string matching.
package repository

import "errors"

// ErrConflict is returned when a delete cannot proceed because
// dependent rows still reference the target, such as removing a room
// with historical reservations or a service with open requests.
// Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned when registration collides with an
// existing customer or employee email.
var ErrEmailExists = errors.New("email already exists")
