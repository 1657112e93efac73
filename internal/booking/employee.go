package booking

import "strings"

// Role discriminates staff behaviour. There is one Employee record
// shape; role-specific behaviour hangs off the enum rather than off
// subclasses. The strings double as the JWT role claim for staff
// sessions.
type Role string

const (
	RoleFrontDesk Role = "FRONT_DESK"
	RolePorter    Role = "PORTER"
	RoleStaff     Role = "STAFF"
)

// duties maps each role to the actions it may perform. Capability
// checks go through Role.Can so the set stays in one place.
var duties = map[Role][]string{
	RoleFrontDesk: {"manage_rooms", "manage_services", "book_for_guest", "cancel_reservation", "settle_payment", "view_reservations"},
	RolePorter:    {"view_reservations", "carry_luggage"},
	RoleStaff:     {"view_reservations"},
}

// ParseRole normalizes a stored discriminator string into a Role. The
// second return is false for unknown roles.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := duties[r]; !ok {
		return "", false
	}
	return r, true
}

// Can reports whether the role is allowed to perform the named action.
func (r Role) Can(action string) bool {
	for _, d := range duties[r] {
		if d == action {
			return true
		}
	}
	return false
}

// Duties returns the role's allowed actions, as a copy.
func (r Role) Duties() []string {
	out := make([]string, len(duties[r]))
	copy(out, duties[r])
	return out
}

// Employee is a staff record. Unlike guests, employees own no
// reservation collections; they act on other people's bookings.
type Employee struct {
	id           uint64
	firstName    string
	lastName     string
	email        string
	passwordHash string
	role         Role
}

// NewEmployee returns a staff record with no identifier; the id is
// assigned by the persistence gateway on insert.
func NewEmployee(firstName, lastName, email string, role Role) *Employee {
	return &Employee{firstName: firstName, lastName: lastName, email: email, role: role}
}

// RestoreEmployee rebuilds an employee from a persisted row.
func RestoreEmployee(id uint64, firstName, lastName, email string, role Role) *Employee {
	e := NewEmployee(firstName, lastName, email, role)
	e.id = id
	return e
}

func (e *Employee) ID() uint64 { return e.id }
func (e *Employee) SetID(id uint64) { e.id = id }
func (e *Employee) FirstName() string { return e.firstName }
func (e *Employee) LastName() string { return e.lastName }
func (e *Employee) Email() string { return e.email }
func (e *Employee) Role() Role { return e.role }
func (e *Employee) SetPasswordHash(hash string) { e.passwordHash = hash }
func (e *Employee) PasswordHash() string { return e.passwordHash }
