package booking

import "time"

// ReservationStatus tracks the lifecycle of a room booking.
type ReservationStatus string

const (
	// StatusProposed marks a constructed reservation that has not yet
	// claimed its room.
	StatusProposed ReservationStatus = "Proposed"
	// StatusActive marks a reservation whose room is assigned and which
	// is registered in the guest's history.
	StatusActive ReservationStatus = "Active"
	// StatusCancelled is terminal; the room has been released.
	StatusCancelled ReservationStatus = "Cancelled"
)

// Reservation is the room-booking aggregate. It links a guest, a room
// and a date range, optionally carries a payment, and owns the state
// transition of the room together with the guest's history entry. The
// two effects of Book are a single unit: either the room flips to
// Occupied and the guest's collection gains this reservation, or
// neither happens.
type Reservation struct {
	id       uint64
	checkIn  time.Time
	checkOut time.Time
	guest    *Guest
	room     *Room
	payment  *Payment
	services []*Service
	status   ReservationStatus

	// storedTotal carries the persisted stay total of a restored
	// reservation. Zero means the total is computed from the room rate
	// and the attached services.
	storedTotal uint32
}

// NewReservation validates the stay and returns a Proposed reservation.
// The identifier stays zero until the persistence gateway assigns one.
func NewReservation(checkIn, checkOut time.Time, guest *Guest, room *Room) (*Reservation, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidStay
	}
	return &Reservation{
		checkIn:  checkIn,
		checkOut: checkOut,
		guest:    guest,
		room:     room,
		status:   StatusProposed,
	}, nil
}

// RestoreReservation rebuilds an Active reservation from its stored
// row. The persisted total is authoritative: it was fixed when the
// booking was placed and already includes the cost of any services
// attached at that point, so TotalCents reports it as is.
func RestoreReservation(id uint64, checkIn, checkOut time.Time, guest *Guest, room *Room, totalCents uint32) *Reservation {
	return &Reservation{
		id:          id,
		checkIn:     checkIn,
		checkOut:    checkOut,
		guest:       guest,
		room:        room,
		status:      StatusActive,
		storedTotal: totalCents,
	}
}

// Book attempts the booking: claim the room, then register with the
// guest. The room claim is the only step that can fail, so performing
// it first keeps the pair all-or-nothing. A false return means the room
// was not Available (or the reservation already left Proposed) and
// nothing changed; that is normal control flow for the caller to branch
// on, not an error.
func (res *Reservation) Book() bool {
	if res.status != StatusProposed {
		return false
	}
	if !res.room.Assign(res.guest) {
		return false
	}
	res.guest.addRoomReservation(res)
	res.status = StatusActive
	return true
}

// Cancel releases the room and removes the reservation from the guest's
// history in one step. It is the single authoritative cancellation: a
// second call returns false and leaves both the room and the history
// untouched.
func (res *Reservation) Cancel() bool {
	if res.status != StatusActive {
		return false
	}
	res.room.Release()
	res.guest.removeRoomReservation(res.id)
	res.status = StatusCancelled
	return true
}

// Reschedule updates either or both date fields. Nil leaves a field
// unchanged. The room's availability is not re-validated against the
// new range; the binary room flag remains the only exclusivity check.
func (res *Reservation) Reschedule(newCheckIn, newCheckOut *time.Time) {
	if newCheckIn != nil {
		res.checkIn = *newCheckIn
	}
	if newCheckOut != nil {
		res.checkOut = *newCheckOut
	}
}

// AttachService adds a catalog service to the stay. Attached services
// contribute their flat cost to the reservation total.
func (res *Reservation) AttachService(s *Service) {
	res.services = append(res.services, s)
}

// Nights returns the length of the stay in whole nights.
func (res *Reservation) Nights() uint32 {
	return uint32(res.checkOut.Sub(res.checkIn) / (24 * time.Hour))
}

// TotalCents is nights times the room's nightly rate plus the flat cost
// of every attached service. A restored reservation reports its
// persisted total instead; the price does not move after booking.
func (res *Reservation) TotalCents() uint32 {
	if res.storedTotal != 0 {
		return res.storedTotal
	}
	total := res.Nights() * res.room.RateCents()
	for _, s := range res.services {
		total += s.CostCents()
	}
	return total
}

func (res *Reservation) ID() uint64 { return res.id }
func (res *Reservation) SetID(id uint64) { res.id = id }
func (res *Reservation) CheckIn() time.Time { return res.checkIn }
func (res *Reservation) CheckOut() time.Time { return res.checkOut }
func (res *Reservation) Guest() *Guest { return res.guest }
func (res *Reservation) Room() *Room { return res.room }
func (res *Reservation) Status() ReservationStatus { return res.status }
func (res *Reservation) Payment() *Payment { return res.payment }
func (res *Reservation) SetPayment(p *Payment) { res.payment = p }

// Services returns the attached services in insertion order, as a copy.
func (res *Reservation) Services() []*Service {
	out := make([]*Service, len(res.services))
	copy(out, res.services)
	return out
}
