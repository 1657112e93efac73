package booking

// Guest holds a customer's identity and contact attributes together with
// the two owned reservation collections. The collections are append-only
// in insertion order; removal is always keyed by identifier, never by
// object identity. Every reservation held here references this guest
// back as its customer.
type Guest struct {
	id            uint64
	firstName     string
	middleName    string
	lastName      string
	secondSurname string
	phone         string
	email         string
	state         string
	curp          string
	passwordHash  string

	roomReservations    []*Reservation
	serviceReservations []*ServiceReservation
}

// NewGuest returns an unregistered guest with no identifier. The id is
// assigned by the persistence gateway after the first insert.
func NewGuest(firstName, middleName, lastName, secondSurname, phone, email, state, curp string) *Guest {
	return &Guest{
		firstName:     firstName,
		middleName:    middleName,
		lastName:      lastName,
		secondSurname: secondSurname,
		phone:         phone,
		email:         email,
		state:         state,
		curp:          curp,
	}
}

// RestoreGuest rebuilds a guest from a persisted row. The reservation
// collections start empty: loads produce fresh object graphs.
func RestoreGuest(id uint64, firstName, middleName, lastName, secondSurname, phone, email, state, curp string) *Guest {
	g := NewGuest(firstName, middleName, lastName, secondSurname, phone, email, state, curp)
	g.id = id
	return g
}

func (g *Guest) ID() uint64 { return g.id }
func (g *Guest) SetID(id uint64) { g.id = id }
func (g *Guest) FirstName() string { return g.firstName }
func (g *Guest) LastName() string { return g.lastName }
func (g *Guest) Phone() string { return g.phone }
func (g *Guest) Email() string { return g.email }
func (g *Guest) State() string { return g.state }
func (g *Guest) CURP() string { return g.curp }

// FullName joins the populated name parts with single spaces.
func (g *Guest) FullName() string {
	name := g.firstName
	for _, part := range []string{g.middleName, g.lastName, g.secondSurname} {
		if part != "" {
			name += " " + part
		}
	}
	return name
}

// SetPasswordHash attaches a hashed credential to the account. The
// domain never sees the plaintext password.
func (g *Guest) SetPasswordHash(hash string) { g.passwordHash = hash }
func (g *Guest) PasswordHash() string { return g.passwordHash }

// RoomReservations returns the guest's room reservations in insertion
// order. The returned slice is a copy; mutating it does not affect the
// guest's history.
func (g *Guest) RoomReservations() []*Reservation {
	out := make([]*Reservation, len(g.roomReservations))
	copy(out, g.roomReservations)
	return out
}

// ServiceReservations returns the guest's service requests in insertion
// order, as a copy.
func (g *Guest) ServiceReservations() []*ServiceReservation {
	out := make([]*ServiceReservation, len(g.serviceReservations))
	copy(out, g.serviceReservations)
	return out
}

func (g *Guest) addRoomReservation(res *Reservation) {
	g.roomReservations = append(g.roomReservations, res)
}

func (g *Guest) addServiceReservation(sr *ServiceReservation) {
	g.serviceReservations = append(g.serviceReservations, sr)
}

// removeRoomReservation drops the first entry whose id matches. It is a
// total function: an absent id is a normal not-found outcome reported as
// false, and repeating the call with the same id never double-removes.
func (g *Guest) removeRoomReservation(id uint64) bool {
	for i, res := range g.roomReservations {
		if res.ID() == id {
			g.roomReservations = append(g.roomReservations[:i], g.roomReservations[i+1:]...)
			return true
		}
	}
	return false
}

// CancelServiceReservation removes the service request with the given
// id from the guest's collection. Service requests hold no exclusive
// resource, so dropping the entry is the whole cancellation.
func (g *Guest) CancelServiceReservation(id uint64) bool {
	for i, sr := range g.serviceReservations {
		if sr.ID() == id {
			g.serviceReservations = append(g.serviceReservations[:i], g.serviceReservations[i+1:]...)
			return true
		}
	}
	return false
}
